package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Merge bool
	Save  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SECTCFG_DEBUG_PARSE")
	d.Merge = boolEnv("SECTCFG_DEBUG_MERGE")
	d.Save = boolEnv("SECTCFG_DEBUG_SAVE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
func Save() bool {
	return d.Save
}
