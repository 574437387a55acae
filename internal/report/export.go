// Package report exports a scan report as a YAML document for downstream
// release tooling. Export is opt-in; a default scan writes no files.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/harrison/ppcheck/internal/filelock"
	"github.com/harrison/ppcheck/internal/models"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a ScanReport
type Document struct {
	ID         string           `yaml:"id"`
	Root       string           `yaml:"root"`
	ScannedAt  string           `yaml:"scanned_at"`
	Duration   string           `yaml:"duration"`
	Candidates int              `yaml:"candidates"`
	Count      int              `yaml:"count"`
	Violations []ViolationEntry `yaml:"violations"`
	Skipped    []SkippedEntry   `yaml:"skipped"`
}

// ViolationEntry is one violating file with its first offending line
type ViolationEntry struct {
	Path      string `yaml:"path"`
	Line      int    `yaml:"line"`
	Directive string `yaml:"directive"`
	Text      string `yaml:"text"`
}

// SkippedEntry is one candidate that could not be read
type SkippedEntry struct {
	Path  string `yaml:"path"`
	Error string `yaml:"error"`
}

// NewDocument converts a ScanReport, preserving violation order
func NewDocument(r *models.ScanReport) Document {
	doc := Document{
		ID:         r.ID,
		Root:       r.Root,
		ScannedAt:  r.StartedAt.UTC().Format(time.RFC3339),
		Duration:   r.Duration.String(),
		Candidates: r.Candidates,
		Count:      r.Count(),
		Violations: make([]ViolationEntry, 0, len(r.Violations)),
		Skipped:    make([]SkippedEntry, 0, len(r.Skipped)),
	}

	for _, v := range r.Violations {
		doc.Violations = append(doc.Violations, ViolationEntry{
			Path:      v.Path,
			Line:      v.Line,
			Directive: v.Directive,
			Text:      v.Text,
		})
	}
	for _, s := range r.Skipped {
		entry := SkippedEntry{Path: s.Path}
		if s.Err != nil {
			entry.Error = s.Err.Error()
		}
		doc.Skipped = append(doc.Skipped, entry)
	}

	return doc
}

// Marshal renders the report as YAML
func Marshal(r *models.ScanReport) ([]byte, error) {
	data, err := yaml.Marshal(NewDocument(r))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// Write atomically replaces path with the YAML report while holding path+".lock"
func Write(ctx context.Context, path string, r *models.ScanReport) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	if err := filelock.LockAndWrite(ctx, path, data); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
