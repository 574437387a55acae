// Package display renders the scan report to the terminal.
//
// The report format is a contract consumed by release tooling, so the
// Reporter writes it byte-for-byte:
//
//	                                         <- blank line
//	Checking for un-preprocessed files... Done!
//	                                         <- blank line
//	WARNING: The following 2 file(s) in dist/bin may require preprocessing:
//	                                         <- blank line
//	chrome/browser.manifest
//	modules/Foo.jsm
//
// The warning block is omitted entirely when the scan is clean.
//
// # Usage
//
//	reporter := display.NewReporter(os.Stdout, display.ReportOptions{})
//	reporter.Start()
//	report, err := preprocess.Run(ctx, root, opts, logger)
//	...
//	reporter.Complete(report)
//
// The warning header is colored yellow only when the writer is a terminal,
// so piped or captured output is plain text.
//
// All functions accept io.Writer interfaces for testability.
package display
