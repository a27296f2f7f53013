package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Extract bool
	IO      bool
	Eval    bool
	Diff    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Extract = boolEnv("OL_DEBUG_EXTRACT")
	d.IO = boolEnv("OL_DEBUG_IO")
	d.Eval = boolEnv("OL_DEBUG_EVAL")
	d.Diff = boolEnv("OL_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Extract() bool {
	return d.Extract
}
func IO() bool {
	return d.IO
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
