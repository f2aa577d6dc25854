package model

import (
	"errors"
	"fmt"
)

// ErrWeekdayOutOfRange is returned when WDay holds a value that neither a
// parser nor the sentinel can produce.
var ErrWeekdayOutOfRange = errors.New("weekday out of range")

// Fields is the broken-down calendar record filled in by strptime.
// Layout and encodings follow C's struct tm.
type Fields struct {
	Sec  int
	Min  int
	Hour int
	MDay int
	Mon  int // 0-based
	Year int // years since 1900

	WDay  int // 0=Sunday..6=Saturday, -1 unknown
	YDay  int // 0-based
	IsDST int // >0 active, 0 inactive, <0 unknown
}

// Sentinel values. Each is outside the range strptime writes, so a field
// still holding one after a parse was not touched by the format.
const (
	SentinelSec   = 99
	SentinelMin   = 99
	SentinelHour  = 99
	SentinelMDay  = 99
	SentinelMon   = 99 - 1
	SentinelYear  = 9999 - 1900
	SentinelWDay  = -1
	SentinelYDay  = 999 - 1
	SentinelIsDST = -1
)

// Sentinel returns a fresh record with every field set to its sentinel.
func Sentinel() Fields {
	return Fields{
		Sec:   SentinelSec,
		Min:   SentinelMin,
		Hour:  SentinelHour,
		MDay:  SentinelMDay,
		Mon:   SentinelMon,
		Year:  SentinelYear,
		WDay:  SentinelWDay,
		YDay:  SentinelYDay,
		IsDST: SentinelIsDST,
	}
}

var weekdayNames = [...]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// WeekdayName maps WDay to its English name.
func (f Fields) WeekdayName() (string, error) {
	switch {
	case f.WDay == SentinelWDay:
		return "Unknown day of the week", nil
	case f.WDay >= 0 && f.WDay < len(weekdayNames):
		return weekdayNames[f.WDay], nil
	default:
		return "", fmt.Errorf("%w: %d", ErrWeekdayOutOfRange, f.WDay)
	}
}

// DSTString describes the tri-state daylight-saving flag.
func (f Fields) DSTString() string {
	switch {
	case f.IsDST > 0:
		return "DST"
	case f.IsDST == 0:
		return "no DST"
	default:
		return "maybe DST"
	}
}

// Report renders the one-line summary, e.g.
//
//	2024-03-15T99:99:99 (day of year 999, Unknown day of the week), maybe DST
func (f Fields) Report() (string, error) {
	wday, err := f.WeekdayName()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d (day of year %d, %s), %s",
		f.Year+1900,
		f.Mon+1,
		f.MDay,
		f.Hour,
		f.Min,
		f.Sec,
		f.YDay+1,
		wday,
		f.DSTString(),
	), nil
}

// Untouched lists the fields that still hold their sentinel value.
func (f Fields) Untouched() []string {
	s := Sentinel()
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"year", f.Year, s.Year},
		{"month", f.Mon, s.Mon},
		{"day", f.MDay, s.MDay},
		{"hour", f.Hour, s.Hour},
		{"minute", f.Min, s.Min},
		{"second", f.Sec, s.Sec},
		{"yday", f.YDay, s.YDay},
		{"wday", f.WDay, s.WDay},
		{"isdst", f.IsDST, s.IsDST},
	}

	out := make([]string, 0, len(checks))
	for _, c := range checks {
		if c.got == c.want {
			out = append(out, c.name)
		}
	}
	return out
}
