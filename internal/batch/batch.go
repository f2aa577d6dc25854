// Package batch runs the probe over every case of a case file.
package batch

import (
	"fmt"
	"io"
	"strings"

	"tmprobe/internal/cases"
	appLog "tmprobe/internal/log"
	"tmprobe/internal/probe"
)

// Options controls the batch output.
type Options struct {
	// Verbose adds an "untouched:" line listing fields the parse left at
	// their sentinel.
	Verbose bool
}

// Summary counts the outcomes of a batch.
type Summary struct {
	Total      int
	Failed     int // parser reported failure
	Partial    int // trailing input left unconsumed
	Violations int // weekday outside -1..6
	Mismatches int // report differs from Case.Expect
}

func (s Summary) String() string {
	return fmt.Sprintf("%d cases: %d not parsed, %d partial, %d contract violations, %d mismatches",
		s.Total, s.Failed, s.Partial, s.Violations, s.Mismatches)
}

// Run probes each case in order and writes a block per case to out:
//
//	== name
//	<lines tmprobe would print>
//	MISMATCH: want <expect>
func Run(f *cases.File, out io.Writer, p probe.Parser, opts Options) Summary {
	var sum Summary
	for _, c := range f.Cases {
		sum.Total++
		fmt.Fprintf(out, "== %s\n", c.Name)

		res, err := probe.Probe(c.Format, c.Input, p)
		for _, line := range res.Lines() {
			fmt.Fprintln(out, line)
		}
		switch {
		case !res.Parsed:
			sum.Failed++
		case res.Rest != "":
			sum.Partial++
		}

		if err != nil {
			appLog.Error("probe aborted", err, "case", c.Name)
			sum.Violations++
			fmt.Fprintln(out, "contract violation")
		}

		if opts.Verbose {
			fmt.Fprintf(out, "untouched: %s\n", strings.Join(res.Fields.Untouched(), ","))
		}

		if c.Expect != "" && c.Expect != res.Report {
			sum.Mismatches++
			fmt.Fprintf(out, "MISMATCH: want %s\n", c.Expect)
			appLog.Debug("expectation mismatch", "case", c.Name, "want", c.Expect, "got", res.Report)
		}
	}
	return sum
}
