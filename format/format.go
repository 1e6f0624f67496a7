package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output format for flattened documents.
type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

type formatInfo struct {
	name     string
	short    string
	suffixes []string
}

// infos is indexed by Format. The first suffix is the one Suffix returns.
var infos = []formatInfo{
	TextFormat: {name: "text", short: "t", suffixes: []string{".txt", ".properties"}},
	YAMLFormat: {name: "yaml", short: "y", suffixes: []string{".yaml", ".yml"}},
	JSONFormat: {name: "json", short: "j", suffixes: []string{".json"}},
}

func (f Format) info() (formatInfo, bool) {
	if f < 0 || int(f) >= len(infos) {
		return formatInfo{}, false
	}
	return infos[f], true
}

// ParseFormat accepts a format name or its one letter short name.
func ParseFormat(v string) (Format, error) {
	v = strings.ToLower(v)
	for _, f := range AllFormats() {
		if in := infos[f]; v == in.name || v == in.short {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath picks the format matching the extension of path.
func FromPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return 0, false
	}
	for _, f := range AllFormats() {
		for _, s := range infos[f].suffixes {
			if s == ext {
				return f, true
			}
		}
	}
	return 0, false
}

func (f Format) String() string {
	in, ok := f.info()
	if !ok {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return in.name
}

func (f Format) MarshalText() ([]byte, error) {
	in, ok := f.info()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(in.name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsText() bool { return f == TextFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the preferred file extension, dot included.
func (f Format) Suffix() string {
	in, ok := f.info()
	if !ok {
		return ""
	}
	return in.suffixes[0]
}

func AllFormats() []Format {
	return []Format{TextFormat, YAMLFormat, JSONFormat}
}
