package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/ppcheck/internal/models"
)

// Warning is the block listing files that may require preprocessing
type Warning struct {
	Root       string             // Scan root as supplied by the caller
	Violations []models.Violation // Violations in report order
	ShowLines  bool               // Append the first offending line under each path
}

// Header returns the warning header line without trailing newline
func (w Warning) Header() string {
	return fmt.Sprintf("WARNING: The following %d file(s) in %s may require preprocessing:", len(w.Violations), w.Root)
}

// Display writes the warning block. colored wraps the header in yellow.
// Nothing is written when there are no violations.
func (w Warning) Display(out io.Writer, colored bool) {
	if len(w.Violations) == 0 {
		return
	}

	var b strings.Builder

	header := w.Header()
	if colored {
		c := color.New(color.FgYellow)
		c.EnableColor()
		header = c.Sprint(header)
	}

	b.WriteString("\n")
	b.WriteString(header)
	b.WriteString("\n\n")

	for _, v := range w.Violations {
		b.WriteString(v.Path)
		b.WriteString("\n")
		if w.ShowLines && v.Line > 0 {
			b.WriteString(fmt.Sprintf("    line %d: %s\n", v.Line, v.Text))
		}
	}

	fmt.Fprint(out, b.String())
}
