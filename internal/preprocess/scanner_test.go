package preprocess

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/harrison/ppcheck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures scanner diagnostics
type recordingLogger struct {
	debug []string
	warn  []string
}

func (l *recordingLogger) LogDebug(message string) { l.debug = append(l.debug, message) }
func (l *recordingLogger) LogWarn(message string)  { l.warn = append(l.warn, message) }

// writeFiles creates files under dir from a map of slash-separated relative paths to content
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func candidateFor(t *testing.T, dir, rel string) models.CandidateFile {
	t.Helper()
	ext, style, ok := Classify(rel)
	require.True(t, ok, "%s is not a candidate", rel)
	return models.CandidateFile{
		Path:    filepath.ToSlash(filepath.Join(dir, filepath.FromSlash(rel))),
		RelPath: rel,
		Ext:     ext,
		Style:   style,
	}
}

func TestScanLines(t *testing.T) {
	hash := models.CandidateFile{RelPath: "a.js", Style: models.HashStyle}
	percent := models.CandidateFile{RelPath: "a.css", Style: models.PercentStyle}

	tests := []struct {
		name          string
		candidate     models.CandidateFile
		content       string
		wantViolation bool
		wantLine      int
		wantDirective string
	}{
		{"hash directive first line", hash, "#ifdef X\nfoo\n#endif\n", true, 1, "ifdef"},
		{"hash directive later line", hash, "var a;\n\n#include foo.js\n", true, 3, "include"},
		{"percent directive in css", percent, "body {}\n%include foo.css\n", true, 2, "include"},
		{"hash directive in css ignored", percent, "#ifdef X\n#endif\n", false, 0, ""},
		{"percent directive in js ignored", hash, "%ifdef X\n", false, 0, ""},
		{"indented directive ignored", hash, "  #ifdef X\n\t#endif\n", false, 0, ""},
		{"interior keyword ignored", hash, "var s = '#ifdef X';\n", false, 0, ""},
		{"css id selector ignored", percent, "#main { color: red; }\n", false, 0, ""},
		{"crlf endings", hash, "a\r\n#endif\r\n", true, 2, "endif"},
		{"no trailing newline", hash, "a\n#define X 1", true, 2, "define"},
		{"empty file", hash, "", false, 0, ""},
		{"clean file", hash, "function f() {}\n", false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := scanLines(strings.NewReader(tt.content), tt.candidate)
			require.NoError(t, err)
			if !tt.wantViolation {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.candidate.RelPath, v.Path)
			assert.Equal(t, tt.wantLine, v.Line)
			assert.Equal(t, tt.wantDirective, v.Directive)
			assert.False(t, strings.HasSuffix(v.Text, "\r"))
		})
	}
}

func TestScanLines_LongLines(t *testing.T) {
	c := models.CandidateFile{RelPath: "min.js", Style: models.HashStyle}

	// A directive keyword sitting exactly where a long line is split must not
	// be mistaken for a line start.
	long := strings.Repeat("x", readerSize) + "#ifdef X"
	v, err := scanLines(strings.NewReader(long+"\nclean\n"), c)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = scanLines(strings.NewReader(long+"\n#endif\n"), c)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 2, v.Line)
	assert.Equal(t, "endif", v.Directive)

	v, err = scanLines(strings.NewReader("#expand "+strings.Repeat("y", 3*readerSize)), c)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 1, v.Line)
	assert.LessOrEqual(t, len(v.Text), maxTextLen+3)
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	// "#define XY " is 11 bytes, so byte 200 falls inside a two-byte rune
	line := []byte("#define XY " + strings.Repeat("é", 100))

	text := truncate(line)
	assert.True(t, utf8.ValidString(text), "truncated text is not valid UTF-8: %q", text)
	assert.True(t, strings.HasSuffix(text, "..."))
	assert.LessOrEqual(t, len(text), maxTextLen+3)
	assert.Equal(t, "#define XY "+strings.Repeat("é", 94)+"...", text)

	assert.Equal(t, "#define XY", truncate([]byte("#define XY")))
}

func TestScanLines_MultiByteLongLine(t *testing.T) {
	c := models.CandidateFile{RelPath: "locale.dtd", Style: models.HashStyle}
	line := "#define XY " + strings.Repeat("é", 100)

	v, err := scanLines(strings.NewReader(line+"\n"), c)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.True(t, utf8.ValidString(v.Text))
}

func TestScanFile_Unreadable(t *testing.T) {
	tmpDir := t.TempDir()
	c := models.CandidateFile{
		Path:    filepath.ToSlash(filepath.Join(tmpDir, "gone.js")),
		RelPath: "gone.js",
		Ext:     ".js",
		Style:   models.HashStyle,
	}

	v, err := NewScanner(nil).ScanFile(c)
	assert.Nil(t, v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrUnreadableFile))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestScan_DeduplicatesAndOrders(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"b.js":      "#ifdef A\n#ifdef B\n#endif\n#endif\n",
		"a.html":    "<p>\n#include foo\n",
		"clean.xml": "<x/>\n",
	})

	// The same file offered twice still yields one violation
	candidates := []models.CandidateFile{
		candidateFor(t, tmpDir, "b.js"),
		candidateFor(t, tmpDir, "a.html"),
		candidateFor(t, tmpDir, "clean.xml"),
		candidateFor(t, tmpDir, "b.js"),
	}

	report, err := NewScanner(nil).Scan(context.Background(), tmpDir, seq(candidates))
	require.NoError(t, err)

	assert.Equal(t, []string{"b.js", "a.html"}, report.Paths())
	assert.Equal(t, 2, report.Count())
	assert.Equal(t, 4, report.Candidates)
	assert.Equal(t, 1, report.Violations[0].Line)
}

func TestScan_SkipsUnreadableFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"a.js": "#ifdef X\n",
		"c.js": "#endif\n",
	})

	candidates := []models.CandidateFile{
		candidateFor(t, tmpDir, "a.js"),
		candidateFor(t, tmpDir, "b.js"), // never created
		candidateFor(t, tmpDir, "c.js"),
	}

	logger := &recordingLogger{}
	report, err := NewScanner(logger).Scan(context.Background(), tmpDir, seq(candidates))
	require.NoError(t, err)

	assert.Equal(t, []string{"a.js", "c.js"}, report.Paths())
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "b.js", report.Skipped[0].Path)
	assert.True(t, errors.Is(report.Skipped[0].Err, models.ErrUnreadableFile))
	require.Len(t, logger.warn, 1)
	assert.Contains(t, logger.warn[0], "b.js")
}

func TestScan_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"locked.js": "#ifdef X\n"})
	locked := filepath.Join(tmpDir, "locked.js")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { os.Chmod(locked, 0644) })

	report, err := NewScanner(nil).Scan(context.Background(), tmpDir, seq([]models.CandidateFile{candidateFor(t, tmpDir, "locked.js")}))
	require.NoError(t, err)

	assert.False(t, report.HasViolations())
	require.Len(t, report.Skipped, 1)
	assert.True(t, errors.Is(report.Skipped[0].Err, os.ErrPermission))
}

func TestScan_Cancelled(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"a.js": "#ifdef X\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewScanner(nil).Scan(ctx, tmpDir, seq([]models.CandidateFile{candidateFor(t, tmpDir, "a.js")}))
	assert.Nil(t, report)
	assert.ErrorIs(t, err, context.Canceled)
}

func seq(candidates []models.CandidateFile) func(func(models.CandidateFile) bool) {
	return func(yield func(models.CandidateFile) bool) {
		for _, c := range candidates {
			if !yield(c) {
				return
			}
		}
	}
}
