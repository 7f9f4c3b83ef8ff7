// Package progress shows a spinner with a running count while content
// files are processed, and prints the final ✓/✗ line.
package progress

import apperrors "github.com/cudacourse/coursekit/internal/errors"

// Task describes the work being tracked.
type Task struct {
	// Action is the verb shown next to the spinner (e.g., "Validating")
	Action string
	// Noun names what is counted (e.g., "files")
	Noun string
	// Total is the number of items, 0 if not yet known
	Total int
}

// Validate checks that the Task can be displayed.
func (t Task) Validate() error {
	if t.Action == "" {
		return apperrors.NewArgumentError("progress action cannot be empty")
	}
	if t.Total < 0 {
		return apperrors.NewArgumentError("progress total cannot be negative")
	}
	return nil
}

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether stderr is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
	// Width is the terminal width in columns (0 if unknown/pipe)
	Width int
}

// ProgressSymbols defines the character set for visual indicators
type ProgressSymbols struct {
	// Checkmark is the success indicator ("✓" or "[OK]")
	Checkmark string
	// Failure is the failure indicator ("✗" or "[FAIL]")
	Failure string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
