package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders err with colors. Non-CLI errors are shown as Runtime errors.
func FormatError(err error) string {
	return format(err, true)
}

// FormatErrorPlain renders err without ANSI escape codes.
func FormatErrorPlain(err error) string {
	return format(err, false)
}

// FprintError writes the formatted error to w, with colors when colored is set.
func FprintError(w io.Writer, err error, colored bool) {
	if err == nil {
		return
	}
	if colored {
		fmt.Fprint(w, FormatError(err))
		return
	}
	fmt.Fprint(w, FormatErrorPlain(err))
}

func format(err error, colored bool) string {
	if err == nil {
		return ""
	}
	cliErr := AsCLIError(err)
	if cliErr == nil {
		cliErr = &CLIError{Category: Runtime, Message: err.Error()}
	}

	red := fmt.Sprint
	bold := fmt.Sprint
	if colored {
		red = color.New(color.FgRed, color.Bold).SprintFunc()
		bold = color.New(color.Bold).SprintFunc()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", red(cliErr.Category.String()+":"), cliErr.Message)
	if cliErr.Usage != "" {
		fmt.Fprintf(&b, "\n%s %s\n", bold("Usage:"), cliErr.Usage)
	}
	if len(cliErr.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", bold("To fix this:"))
		for i, step := range cliErr.Remediation {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
	}
	return b.String()
}
