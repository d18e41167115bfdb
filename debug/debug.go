package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Load   bool
	Merge  bool
	Save   bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("DD_DEBUG_LOAD")
	d.Merge = boolEnv("DD_DEBUG_MERGE")
	d.Save = boolEnv("DD_DEBUG_SAVE")
	d.Encode = boolEnv("DD_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Merge() bool {
	return d.Merge
}
func Save() bool {
	return d.Save
}
func Encode() bool {
	return d.Encode
}

// Set overrides a flag by its environment name suffix ("load", "merge",
// "save", "encode"), for use by command line front ends.
func Set(name string, v bool) error {
	switch name {
	case "load":
		d.Load = v
	case "merge":
		d.Merge = v
	case "save":
		d.Save = v
	case "encode":
		d.Encode = v
	default:
		return fmt.Errorf("unknown debug flag %q", name)
	}
	return nil
}
