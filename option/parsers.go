package option

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parser turns the raw text of an entry into a value.
type Parser[T any] func(string) (T, error)

func String(s string) (string, error) {
	return s, nil
}

func Int(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Bool accepts true/yes/on and false/no/off in any case.
func Bool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on":
		return true, nil
	case "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean (true/yes/on, false/no/off)", s)
}

func Duration(s string) (time.Duration, error) {
	return time.ParseDuration(strings.TrimSpace(s))
}

// Enum accepts one of values, ignoring case, and yields it as listed.
func Enum(values ...string) Parser[string] {
	return func(s string) (string, error) {
		for _, v := range values {
			if strings.EqualFold(v, strings.TrimSpace(s)) {
				return v, nil
			}
		}
		return "", fmt.Errorf("%q is not one of %s", s, strings.Join(values, ", "))
	}
}
