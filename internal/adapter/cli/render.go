package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/api-sage/retail-bank-cli/internal/commons"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	detailColor  = color.New(color.Faint)
)

func printTitle(out io.Writer, title string) {
	titleColor.Fprintf(out, "\n%s\n", title)
}

func printSuccess(out io.Writer, format string, args ...any) {
	successColor.Fprintf(out, format+"\n", args...)
}

func printError(out io.Writer, format string, args ...any) {
	errorColor.Fprintf(out, format+"\n", args...)
}

// printFailure renders an error envelope: the message, then any detail lines.
func printFailure[T any](out io.Writer, resp commons.Response[T]) {
	errorColor.Fprintf(out, "%s\n", resp.Message)
	for _, detail := range resp.Errors {
		detailColor.Fprintf(out, "  %s\n", detail)
	}
}

func printLine(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, format+"\n", args...)
}
