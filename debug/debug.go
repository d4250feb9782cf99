package debug

import (
	"os"
	"strconv"
)

type debug struct {
	DSF    bool
	Encode bool
	Import bool
}

var d *debug

func init() {
	d = &debug{}
	d.DSF = boolEnv("HJSON_DEBUG_DSF")
	d.Encode = boolEnv("HJSON_DEBUG_ENCODE")
	d.Import = boolEnv("HJSON_DEBUG_IMPORT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func DSF() bool {
	return d.DSF
}
func Encode() bool {
	return d.Encode
}
func Import() bool {
	return d.Import
}
