package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressDisplay draws a spinner with a running count on a terminal.
// Update is safe to call from several goroutines.
type ProgressDisplay struct {
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	out          io.Writer

	mu      sync.Mutex
	task    *Task
	done    int
	spinner *spinner.Spinner
}

// NewProgressDisplay creates a display that writes to out.
func NewProgressDisplay(caps TerminalCapabilities, out io.Writer) *ProgressDisplay {
	return &ProgressDisplay{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		out:          out,
	}
}

// Start begins tracking task. Without a TTY nothing is drawn until the
// task finishes.
func (p *ProgressDisplay) Start(task Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopSpinner()
	p.task = &task
	p.done = 0

	if p.capabilities.IsTTY {
		p.spinner = spinner.New(
			spinner.CharSets[p.symbols.SpinnerSet],
			100*time.Millisecond,
			spinner.WithWriter(p.out),
		)
		p.spinner.Suffix = " " + buildMessage(task, 0, p.capabilities.Width)
		p.spinner.Start()
	}
	return nil
}

// Update records that done items are finished out of total.
func (p *ProgressDisplay) Update(done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.task == nil || done < p.done {
		return
	}
	p.done = done
	if total > 0 {
		p.task.Total = total
	}
	if p.spinner != nil {
		p.spinner.Lock()
		p.spinner.Suffix = " " + buildMessage(*p.task, done, p.capabilities.Width)
		p.spinner.Unlock()
	}
}

// Done returns the last count passed to Update.
func (p *ProgressDisplay) Done() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// Complete stops the spinner and prints a success line.
func (p *ProgressDisplay) Complete(summary string) {
	p.finish(checkmark(p.symbols, p.capabilities.SupportsColor), summary)
}

// Fail stops the spinner and prints a failure line.
func (p *ProgressDisplay) Fail(summary string) {
	p.finish(failureMark(p.symbols, p.capabilities.SupportsColor), summary)
}

// Stop stops the spinner without printing anything.
func (p *ProgressDisplay) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopSpinner()
	p.task = nil
}

func (p *ProgressDisplay) finish(mark, summary string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopSpinner()
	p.task = nil
	fmt.Fprintf(p.out, "%s %s\n", mark, summary)
}

func (p *ProgressDisplay) stopSpinner() {
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}
