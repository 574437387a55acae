package display

import (
	"fmt"
	"io"
)

// ProgressIndicator prints the scan progress line.
// Start and Complete write to the same logical line.
type ProgressIndicator struct {
	writer  io.Writer
	started bool
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer) *ProgressIndicator {
	return &ProgressIndicator{writer: w}
}

// Start announces the scan before any work is done
func (p *ProgressIndicator) Start() {
	p.started = true
	fmt.Fprint(p.writer, "\nChecking for un-preprocessed files... ")
}

// Complete finishes the progress line.
// Calling Complete without Start still prints the full line.
func (p *ProgressIndicator) Complete() {
	if !p.started {
		p.Start()
	}
	fmt.Fprint(p.writer, "Done!\n")
	p.started = false
}
