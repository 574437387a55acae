package preprocess

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/harrison/ppcheck/internal/models"
)

const (
	// readerSize bounds the bytes held per line fragment; longer lines are
	// read in pieces and only their first piece is tested.
	readerSize = 64 * 1024
	// maxTextLen truncates the offending line kept for diagnostics
	maxTextLen = 200
)

// Logger receives diagnostic messages from a scan.
// *logger.ConsoleLogger satisfies it.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// Scanner reads candidate files and detects unresolved directive lines
type Scanner struct {
	logger Logger
}

// NewScanner creates a Scanner. A nil logger discards diagnostics.
func NewScanner(logger Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan inspects each candidate in order and returns the deduplicated report.
// Unreadable files are logged, recorded in the report's Skipped list and
// otherwise ignored. ctx is checked between files; a cancelled scan returns
// ctx.Err() and no report.
func (s *Scanner) Scan(ctx context.Context, root string, candidates iter.Seq[models.CandidateFile]) (*models.ScanReport, error) {
	report := models.NewScanReport(root)
	violations := models.NewViolationSet()

	for candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		report.Candidates++
		s.debug(fmt.Sprintf("Scanning %s (%s)", candidate.RelPath, candidate.Style))

		violation, err := s.ScanFile(candidate)
		if err != nil {
			s.warn(fmt.Sprintf("Skipping %v", err))
			report.Skipped = append(report.Skipped, models.SkippedFile{Path: candidate.RelPath, Err: err})
			continue
		}
		if violation == nil {
			continue
		}

		if violations.Add(*violation) {
			s.debug(fmt.Sprintf("%s:%d: unresolved %q directive", violation.Path, violation.Line, violation.Directive))
		}
	}

	report.Violations = violations.Items()
	report.Duration = time.Since(report.StartedAt)
	return report, nil
}

// ScanFile opens one candidate and returns its first offending line, or nil
// if the file is clean. The file handle is released before returning.
// Errors wrap models.ErrUnreadableFile.
func (s *Scanner) ScanFile(candidate models.CandidateFile) (*models.Violation, error) {
	f, err := os.Open(filepath.FromSlash(candidate.Path))
	if err != nil {
		return nil, models.NewFileError(candidate.RelPath, err)
	}
	defer f.Close()

	return scanLines(f, candidate)
}

// scanLines tests the start of every line of r against the candidate's
// disallowed prefixes and stops at the first match.
func scanLines(r io.Reader, candidate models.CandidateFile) (*models.Violation, error) {
	prefixes := stylePrefixes[candidate.Style]
	reader := bufio.NewReaderSize(r, readerSize)

	lineNo := 0
	atLineStart := true
	for {
		fragment, more, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, models.NewFileError(candidate.RelPath, err)
		}

		if atLineStart {
			lineNo++
			if keyword, ok := matchDirective(fragment, prefixes); ok {
				return &models.Violation{
					Path:      candidate.RelPath,
					Line:      lineNo,
					Directive: keyword,
					Text:      truncate(fragment),
				}, nil
			}
		}
		atLineStart = !more
	}
}

// truncate shortens line to at most maxTextLen bytes without splitting a rune
func truncate(line []byte) string {
	if len(line) <= maxTextLen {
		return string(line)
	}
	n := maxTextLen
	for n > 0 && !utf8.RuneStart(line[n]) {
		n--
	}
	return string(line[:n]) + "..."
}

func (s *Scanner) debug(message string) {
	if s.logger != nil {
		s.logger.LogDebug(message)
	}
}

func (s *Scanner) warn(message string) {
	if s.logger != nil {
		s.logger.LogWarn(message)
	}
}
