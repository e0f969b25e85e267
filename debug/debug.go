package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Insert  bool
	CLI     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("JSONTK_DEBUG_RESOLVE")
	d.Insert = boolEnv("JSONTK_DEBUG_INSERT")
	d.CLI = boolEnv("JSONTK_DEBUG_CLI")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Insert() bool {
	return d.Insert
}
func CLI() bool {
	return d.CLI
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
