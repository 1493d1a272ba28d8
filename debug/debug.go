// Package debug gates diagnostic logging behind OTML_DEBUG_*
// environment variables.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Discover bool
	Resolve  bool
	Watch    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Discover = boolEnv("OTML_DEBUG_DISCOVER")
	d.Resolve = boolEnv("OTML_DEBUG_RESOLVE")
	d.Watch = boolEnv("OTML_DEBUG_WATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Discover() bool {
	return d.Discover
}
func Resolve() bool {
	return d.Resolve
}
func Watch() bool {
	return d.Watch
}
