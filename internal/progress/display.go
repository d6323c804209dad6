package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// Display animates a spinner while files are being checked. On a non-TTY
// stream it stays silent: the report streams carry all useful output.
type Display struct {
	mu           sync.Mutex
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	writer       io.Writer
	spinner      *spinner.Spinner
	message      string
}

// NewDisplay creates a display writing to w with the given terminal capabilities
func NewDisplay(caps TerminalCapabilities, w io.Writer) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		writer:       w,
	}
}

// Start begins animating with msg as the suffix
func (d *Display) Start(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.message = msg
	if !d.capabilities.IsTTY || d.spinner != nil {
		return
	}
	d.startLocked()
}

// Update replaces the spinner message
func (d *Display) Update(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.message = msg
	if d.spinner != nil {
		d.spinner.Lock()
		d.spinner.Suffix = " " + msg
		d.spinner.Unlock()
	}
}

// Stop stops the spinner and clears its line
func (d *Display) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.message = ""
}

// Suspend stops the spinner while fn runs and restarts it afterwards, so
// diagnostics never interleave with spinner frames.
func (d *Display) Suspend(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.spinner == nil {
		fn()
		return
	}
	d.stopLocked()
	fn()
	d.startLocked()
}

func (d *Display) startLocked() {
	opt := spinner.WithWriter(d.writer)
	if f, ok := d.writer.(*os.File); ok {
		opt = spinner.WithWriterFile(f)
	}
	d.spinner = spinner.New(spinner.CharSets[d.symbols.SpinnerSet], 100*time.Millisecond, opt)
	d.spinner.Suffix = " " + d.message
	d.spinner.Start()
}

func (d *Display) stopLocked() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
