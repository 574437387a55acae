package display

import (
	"fmt"
	"io"

	"github.com/harrison/ppcheck/internal/models"
)

// ReportOptions configures the Reporter
type ReportOptions struct {
	// ShowLines prints the first offending line beneath each path
	ShowLines bool
}

// Reporter writes the progress line and the final scan report
type Reporter struct {
	writer   io.Writer
	progress *ProgressIndicator
	opts     ReportOptions
	colored  bool
}

// NewReporter creates a Reporter writing to w
func NewReporter(w io.Writer, opts ReportOptions) *Reporter {
	return &Reporter{
		writer:   w,
		progress: NewProgressIndicator(w),
		opts:     opts,
		colored:  IsTerminal(w),
	}
}

// Start prints the progress announcement
func (r *Reporter) Start() {
	r.progress.Start()
}

// Complete finishes the progress line and prints the warning block, if any
func (r *Reporter) Complete(report *models.ScanReport) {
	r.progress.Complete()
	if report == nil || !report.HasViolations() {
		return
	}

	warning := Warning{
		Root:       report.Root,
		Violations: report.Violations,
		ShowLines:  r.opts.ShowLines,
	}
	warning.Display(r.writer, r.colored)
}

// Usage prints the message shown when no valid scan root was supplied
func Usage(w io.Writer) {
	fmt.Fprint(w, "\nYou did not supply a valid path to check.\n")
}
