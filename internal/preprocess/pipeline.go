package preprocess

import (
	"context"
	"fmt"

	"github.com/harrison/ppcheck/internal/fileutil"
	"github.com/harrison/ppcheck/internal/models"
)

// Options configures a full scan run
type Options struct {
	// ExcludeDirs lists directory base names the walker prunes
	ExcludeDirs []string
}

// Run validates root, then walks, filters and scans it in a single pass.
// It fails with an error wrapping models.ErrInvalidRoot before any file is
// read if root is unusable. Walk errors are reported to logger and the scan
// continues.
func Run(ctx context.Context, root string, opts Options, logger Logger) (*models.ScanReport, error) {
	walker, err := fileutil.NewWalker(root, fileutil.WalkOptions{ExcludeDirs: opts.ExcludeDirs})
	if err != nil {
		return nil, err
	}

	scanner := NewScanner(logger)
	report, err := scanner.Scan(ctx, walker.Root(), Filter(walker.Files()))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	for _, walkErr := range walker.Errors() {
		scanner.warn(walkErr.Error())
	}

	return report, nil
}
