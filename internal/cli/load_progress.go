package cli

import (
	"fmt"
	"io"

	"github.com/cudacourse/coursekit/internal/catalog"
	"github.com/cudacourse/coursekit/internal/progress"
)

// startLoadProgress attaches a spinner to opts when progress is enabled
// and caps describe a terminal. Returns nil when nothing is shown.
func startLoadProgress(enabled bool, caps progress.TerminalCapabilities, errOut io.Writer, opts *catalog.Options) *progress.ProgressDisplay {
	if !enabled || !caps.IsTTY {
		return nil
	}
	display := progress.NewProgressDisplay(caps, errOut)
	if err := display.Start(progress.Task{Action: "Validating", Noun: "files"}); err != nil {
		return nil
	}
	opts.Progress = display.Update
	return display
}

// finishLoadProgress replaces the spinner with a one-line summary of the
// load. A failed load clears the spinner and leaves reporting to the caller.
func finishLoadProgress(display *progress.ProgressDisplay, report *catalog.Report, err error) {
	if display == nil {
		return
	}
	switch {
	case err != nil:
		display.Stop()
	case report.Invalid() > 0:
		display.Fail(fmt.Sprintf("checked %d files, %d invalid", display.Done(), report.Invalid()))
	default:
		display.Complete(fmt.Sprintf("checked %d files", display.Done()))
	}
}
