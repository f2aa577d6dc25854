// Package probe runs a single strptime call against sentinel-filled
// calendar fields and reports what the parse wrote.
package probe

import (
	"errors"
	"fmt"
	"io"

	appLog "tmprobe/internal/log"
	"tmprobe/internal/model"
)

// Exit codes of Run.
const (
	ExitOK                = 0
	ExitUsage             = 1
	ExitContractViolation = 254 // what exit(-2) looks like to the shell
)

// ErrContractViolation means the parser left a weekday outside -1..6.
var ErrContractViolation = errors.New("parser contract violated")

// Parser is the strptime collaborator. It consumes a prefix of input
// according to format, writing into f. rest is the unconsumed suffix;
// ok is false when no match was possible.
type Parser interface {
	Parse(input, format string, f *model.Fields) (rest string, ok bool)
}

// Result is the outcome of one probe.
type Result struct {
	Format string
	Input  string

	Parsed bool   // false: parser reported failure
	Rest   string // unconsumed input when Parsed
	Fields model.Fields

	Report string
}

// Probe seeds fresh sentinel fields, parses input with format and builds
// the report line. When the weekday is out of range the partial Result is
// returned together with ErrContractViolation.
func Probe(format, input string, p Parser) (Result, error) {
	res := Result{
		Format: format,
		Input:  input,
		Fields: model.Sentinel(),
	}
	res.Rest, res.Parsed = p.Parse(input, format, &res.Fields)
	if !res.Parsed {
		res.Rest = ""
	}

	report, err := res.Fields.Report()
	if err != nil {
		appLog.Debug("weekday outside contract", "format", format, "input", input, "wday", res.Fields.WDay)
		return res, fmt.Errorf("%w: %w", ErrContractViolation, err)
	}
	res.Report = report
	return res, nil
}

// Notice is the status line printed before the report, or "" when the
// whole input was consumed.
func (r Result) Notice() string {
	switch {
	case !r.Parsed:
		return "Could not parse the string"
	case r.Rest != "":
		return fmt.Sprintf("Not the whole string was consumed: '%s'", r.Rest)
	default:
		return ""
	}
}

// Lines returns exactly what Run prints for this result.
func (r Result) Lines() []string {
	var lines []string
	if n := r.Notice(); n != "" {
		lines = append(lines, n)
	}
	if r.Report != "" {
		lines = append(lines, r.Report)
	}
	return lines
}

// Run is the whole command: args is os.Args, output goes to out.
func Run(args []string, out io.Writer, p Parser) int {
	if len(args) != 3 {
		prog := "tmprobe"
		if len(args) > 0 {
			prog = args[0]
		}
		fmt.Fprintf(out, "Usage: %s FORMAT STRING\n", prog)
		return ExitUsage
	}

	res, err := Probe(args[1], args[2], p)
	if n := res.Notice(); n != "" {
		fmt.Fprintln(out, n)
	}
	if err != nil {
		return ExitContractViolation
	}
	fmt.Fprintln(out, res.Report)
	return ExitOK
}
