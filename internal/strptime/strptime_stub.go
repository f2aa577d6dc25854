//go:build !(cgo && unix)

// Fallback for builds without cgo or without a Unix C library. The
// package still compiles, but every parse fails and the fields are left
// as they were.

package strptime

import (
	appLog "tmprobe/internal/log"
	"tmprobe/internal/model"
)

// Available reports whether Libc is backed by the C library.
const Available = false

// Libc is a placeholder that never parses on this platform.
type Libc struct{}

// Parse always reports failure without touching f.
func (Libc) Parse(input, format string, f *model.Fields) (rest string, ok bool) {
	appLog.Debug("strptime unavailable: built without cgo on a unix target", "format", format, "input", input)
	return "", false
}
