package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex      bool
	Parse    bool
	Schema   bool
	Validate bool
	Eval     bool
	Patch    bool
	Match    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("QMLON_DEBUG_LEX")
	d.Parse = boolEnv("QMLON_DEBUG_PARSE")
	d.Schema = boolEnv("QMLON_DEBUG_SCHEMA")
	d.Validate = boolEnv("QMLON_DEBUG_VALIDATE")
	d.Eval = boolEnv("QMLON_DEBUG_EVAL")
	d.Patch = boolEnv("QMLON_DEBUG_PATCH")
	d.Match = boolEnv("QMLON_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Schema() bool {
	return d.Schema
}
func Validate() bool {
	return d.Validate
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}
