package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type palette struct {
	heading func(a ...interface{}) string
	label   func(a ...interface{}) string
	dim     func(a ...interface{}) string
}

func plainPalette() palette {
	id := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return palette{heading: id, label: id, dim: id}
}

func colorPalette() palette {
	return palette{
		heading: color.New(color.FgRed, color.Bold).SprintFunc(),
		label:   color.New(color.FgYellow).SprintFunc(),
		dim:     color.New(color.Faint).SprintFunc(),
	}
}

// FormatError renders err with colors. Returns "" for nil.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	return render(err, colorPalette())
}

// FormatErrorPlain renders err without ANSI escape codes. Returns "" for nil.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return render(err, plainPalette())
}

func render(err *CLIError, p palette) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", p.heading(err.Category.String()), err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\n%s\n  %s\n", p.label("Usage:"), err.Usage)
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", p.label("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&b, "  %s %s\n", p.dim("-"), step)
		}
	}
	return b.String()
}

// FprintError writes err to w, colored only when w is a terminal.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	if isTerminal(w) && !color.NoColor {
		fmt.Fprint(w, FormatError(err))
		return
	}
	fmt.Fprint(w, FormatErrorPlain(err))
}

// FormatSimpleError renders a plain error under the given category heading
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	return FormatErrorPlain(&CLIError{Category: category, Message: err.Error()})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
