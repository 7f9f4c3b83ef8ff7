package progress

import (
	"fmt"

	"github.com/fatih/color"
)

// formatCounter returns "done/total noun", or "done noun" when the total
// is unknown.
func formatCounter(done, total int, noun string) string {
	if total > 0 {
		return fmt.Sprintf("%d/%d %s", done, total, noun)
	}
	return fmt.Sprintf("%d %s", done, noun)
}

// buildMessage constructs the spinner suffix, truncated to width.
func buildMessage(task Task, done, width int) string {
	msg := fmt.Sprintf("%s %s", task.Action, formatCounter(done, task.Total, task.Noun))
	// leave room for the spinner frame and a space
	if width > 4 && len([]rune(msg)) > width-3 {
		msg = string([]rune(msg)[:width-3])
	}
	return msg
}

// checkmark returns the appropriate checkmark symbol
func checkmark(symbols ProgressSymbols, supportsColor bool) string {
	if supportsColor && symbols.Checkmark == "✓" {
		return color.New(color.FgGreen).Sprint(symbols.Checkmark)
	}
	return symbols.Checkmark
}

// failureMark returns the appropriate failure symbol
func failureMark(symbols ProgressSymbols, supportsColor bool) string {
	if supportsColor && symbols.Failure == "✗" {
		return color.New(color.FgRed).Sprint(symbols.Failure)
	}
	return symbols.Failure
}
