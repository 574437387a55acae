package models

import (
	"time"

	"github.com/google/uuid"
)

// SkippedFile records a candidate that could not be read during a scan
type SkippedFile struct {
	Path string // Root-relative path
	Err  error  // Error that caused the skip
}

// ScanReport is the terminal output of a single scan
type ScanReport struct {
	ID         string        // Unique identifier for this scan run
	Root       string        // Scan root exactly as supplied by the caller
	StartedAt  time.Time     // When the scan started
	Duration   time.Duration // Time taken by the scan
	Candidates int           // Number of candidate files inspected
	Violations []Violation   // Deduplicated violations in first-seen order
	Skipped    []SkippedFile // Candidates skipped because they could not be read
}

// NewScanReport creates an empty report for root with a fresh ID
func NewScanReport(root string) *ScanReport {
	return &ScanReport{
		ID:         uuid.New().String(),
		Root:       root,
		StartedAt:  time.Now(),
		Violations: make([]Violation, 0),
		Skipped:    make([]SkippedFile, 0),
	}
}

// Count returns the number of violating files
func (r *ScanReport) Count() int {
	return len(r.Violations)
}

// HasViolations returns true if at least one file violates
func (r *ScanReport) HasViolations() bool {
	return len(r.Violations) > 0
}

// Paths returns the violating root-relative paths in report order
func (r *ScanReport) Paths() []string {
	paths := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		paths[i] = v.Path
	}
	return paths
}
