package installer

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// reporter prints colored status, warning, error, and success lines. Status
// and success go to out; errors go to err, matching shell conventions.
type reporter struct {
	out io.Writer
	err io.Writer

	status  *color.Color
	warn    *color.Color
	failure *color.Color
	success *color.Color
}

func newReporter(out io.Writer, err io.Writer) *reporter {
	return &reporter{
		out:     out,
		err:     err,
		status:  color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
		failure: color.New(color.FgRed),
		success: color.New(color.FgGreen),
	}
}

func (r *reporter) statusf(format string, args ...any) {
	_, _ = r.status.Fprintf(r.out, format+"\n", args...)
}

func (r *reporter) warnf(format string, args ...any) {
	_, _ = r.warn.Fprintf(r.out, format+"\n", args...)
}

func (r *reporter) failf(format string, args ...any) {
	_, _ = r.failure.Fprintf(r.err, format+"\n", args...)
}

func (r *reporter) successf(format string, args ...any) {
	_, _ = r.success.Fprintf(r.out, format+"\n", args...)
}

func (r *reporter) plainf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format+"\n", args...)
}
