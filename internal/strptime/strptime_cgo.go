//go:build cgo && unix

// cgo binding to the C library strptime(3).
//
// The directive grammar (and its locale handling) belongs to the C
// library; this file only marshals the calendar record in and out of a
// struct tm and reports how much of the input was consumed.

package strptime

/*
#define _XOPEN_SOURCE 700
#include <stdlib.h>
#include <time.h>
*/
import "C"

import (
	"unsafe"

	appLog "tmprobe/internal/log"
	"tmprobe/internal/model"
)

// Available reports whether Libc is backed by the C library.
const Available = true

// Libc parses through the C library strptime.
type Libc struct{}

// Parse runs strptime(input, format, f). f is copied into a struct tm
// before the call and every field is copied back afterwards, also when the
// call fails, so fields written before the mismatch stay visible.
//
// rest is the unconsumed suffix of input; ok is false when strptime
// returned NULL.
func (Libc) Parse(input, format string, f *model.Fields) (rest string, ok bool) {
	cInput := C.CString(input)
	defer C.free(unsafe.Pointer(cInput))
	cFormat := C.CString(format)
	defer C.free(unsafe.Pointer(cFormat))

	var ctm C.struct_tm
	toC(f, &ctm)

	r := C.strptime(cInput, cFormat, &ctm)
	fromC(&ctm, f)

	if r == nil {
		appLog.Debug("strptime returned NULL", "format", format, "input", input)
		return "", false
	}
	rest = C.GoString(r)
	appLog.Debug("strptime done", "format", format, "input", input, "rest", rest)
	return rest, true
}

func toC(f *model.Fields, tm *C.struct_tm) {
	tm.tm_sec = C.int(f.Sec)
	tm.tm_min = C.int(f.Min)
	tm.tm_hour = C.int(f.Hour)
	tm.tm_mday = C.int(f.MDay)
	tm.tm_mon = C.int(f.Mon)
	tm.tm_year = C.int(f.Year)
	tm.tm_wday = C.int(f.WDay)
	tm.tm_yday = C.int(f.YDay)
	tm.tm_isdst = C.int(f.IsDST)
}

func fromC(tm *C.struct_tm, f *model.Fields) {
	f.Sec = int(tm.tm_sec)
	f.Min = int(tm.tm_min)
	f.Hour = int(tm.tm_hour)
	f.MDay = int(tm.tm_mday)
	f.Mon = int(tm.tm_mon)
	f.Year = int(tm.tm_year)
	f.WDay = int(tm.tm_wday)
	f.YDay = int(tm.tm_yday)
	f.IsDST = int(tm.tm_isdst)
}
