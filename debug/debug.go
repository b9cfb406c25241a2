package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Parse    bool
	Encode   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("SX_DEBUG_TOKENIZE")
	d.Parse = boolEnv("SX_DEBUG_PARSE")
	d.Encode = boolEnv("SX_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
