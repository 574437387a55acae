package preprocess

import (
	"iter"

	"github.com/harrison/ppcheck/internal/fileutil"
	"github.com/harrison/ppcheck/internal/models"
)

// Filter keeps only preprocessable files from a walk, preserving walk order.
// The marker style of each file is resolved here, once, so the scanner
// never inspects the file type per line.
func Filter(files iter.Seq[fileutil.WalkedFile]) iter.Seq[models.CandidateFile] {
	return func(yield func(models.CandidateFile) bool) {
		for f := range files {
			ext, style, ok := Classify(f.RelPath)
			if !ok {
				continue
			}
			candidate := models.CandidateFile{
				Path:    f.Path,
				RelPath: f.RelPath,
				Ext:     ext,
				Style:   style,
			}
			if !yield(candidate) {
				return
			}
		}
	}
}
