package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelReport(t *testing.T) {
	got, err := Sentinel().Report()
	require.NoError(t, err)
	require.Equal(t, "9999-99-99T99:99:99 (day of year 999, Unknown day of the week), maybe DST", got)
}

func TestWeekdayName(t *testing.T) {
	tests := []struct {
		wday    int
		want    string
		wantErr bool
	}{
		{-1, "Unknown day of the week", false},
		{0, "Sunday", false},
		{1, "Monday", false},
		{2, "Tuesday", false},
		{3, "Wednesday", false},
		{4, "Thursday", false},
		{5, "Friday", false},
		{6, "Saturday", false},
		{7, "", true},
		{-2, "", true},
		{99, "", true},
	}
	for _, tt := range tests {
		f := Sentinel()
		f.WDay = tt.wday
		got, err := f.WeekdayName()
		if tt.wantErr {
			require.Error(t, err, "wday=%d", tt.wday)
			require.True(t, errors.Is(err, ErrWeekdayOutOfRange))
			continue
		}
		require.NoError(t, err, "wday=%d", tt.wday)
		require.Equal(t, tt.want, got)
	}
}

func TestDSTString(t *testing.T) {
	tests := []struct {
		name  string
		isdst int
		want  string
	}{
		{"active", 1, "DST"},
		{"active large", 7, "DST"},
		{"inactive", 0, "no DST"},
		{"unknown", -1, "maybe DST"},
		{"negative", -5, "maybe DST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Sentinel()
			f.IsDST = tt.isdst
			require.Equal(t, tt.want, f.DSTString())
		})
	}
}

func TestReport_FullDate(t *testing.T) {
	f := Fields{Sec: 5, Min: 4, Hour: 3, MDay: 17, Mon: 2, Year: 124, WDay: 0, YDay: 76, IsDST: 0}
	got, err := f.Report()
	require.NoError(t, err)
	require.Equal(t, "2024-03-17T03:04:05 (day of year 77, Sunday), no DST", got)
}

func TestReport_BadWeekday(t *testing.T) {
	f := Sentinel()
	f.WDay = 12
	_, err := f.Report()
	require.ErrorIs(t, err, ErrWeekdayOutOfRange)
}

func TestUntouched(t *testing.T) {
	require.Equal(t,
		[]string{"year", "month", "day", "hour", "minute", "second", "yday", "wday", "isdst"},
		Sentinel().Untouched())

	f := Sentinel()
	f.Year, f.Mon, f.MDay = 124, 2, 15
	require.Equal(t, []string{"hour", "minute", "second", "yday", "wday", "isdst"}, f.Untouched())

	full := Fields{Sec: 0, Min: 0, Hour: 0, MDay: 1, Mon: 0, Year: 100, WDay: 6, YDay: 0, IsDST: 0}
	require.Empty(t, full.Untouched())
}
