// Command tmprobe parses STRING with the C library strptime using FORMAT
// and prints which calendar fields the parse filled in.
//
//	tmprobe '%Y-%m-%d' 2024-03-15
//	2024-03-15T99:99:99 (day of year 75, Friday), maybe DST
package main

import (
	"os"

	"tmprobe/internal/probe"
	"tmprobe/internal/strptime"
)

func main() {
	os.Exit(probe.Run(os.Args, os.Stdout, strptime.Libc{}))
}
