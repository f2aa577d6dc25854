package log

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(level)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelInfo)
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, LevelInfo)
	Debug("hidden")
	Info("shown", "k", 1)
	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "[INFO] shown k=1")

	buf = capture(t, LevelError)
	Info("quiet")
	Error("broke", errors.New("boom"), "case", "iso")
	out = buf.String()
	require.NotContains(t, out, "quiet")
	require.Contains(t, out, "[ERROR] broke err=boom case=iso")
}

func TestDebugEnabled(t *testing.T) {
	buf := capture(t, LevelDebug)
	Debug("strptime done", "format", "%Y %m", "rest", "")
	require.Contains(t, buf.String(), `[DEBUG] strptime done format="%Y %m" rest=""`)
}

func TestOddKVIgnored(t *testing.T) {
	buf := capture(t, LevelInfo)
	Info("msg", "a", 1, "dangling")
	require.Contains(t, buf.String(), "msg a=1\n")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" error ", LevelError, false},
		{"trace", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			require.Error(t, err, "ParseLevel(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseLevel(%q)", tt.in)
		require.Equal(t, tt.want, got)
	}
}
