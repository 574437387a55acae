package fileutil

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/harrison/ppcheck/internal/models"
)

// WalkOptions configures the tree walk
type WalkOptions struct {
	// ExcludeDirs is a list of directory base names to prune (e.g., "CVS")
	ExcludeDirs []string
}

// WalkedFile is a file yielded by the Walker
type WalkedFile struct {
	// Path is the absolute path of the file, forward-slash separated
	Path string
	// RelPath is the path relative to the walk root, forward-slash separated
	RelPath string
}

// Walker enumerates every file beneath a root directory in lexical order
type Walker struct {
	root       string
	absRoot    string
	excludeMap map[string]bool
	errors     []error
}

// ValidateRoot checks that root exists and is a directory and returns the
// absolute path to walk. A symlinked root is resolved to its target so the
// walk descends into it. Errors wrap models.ErrInvalidRoot.
func ValidateRoot(root string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("%w: empty path", models.ErrInvalidRoot)
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", models.ErrInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: path is not a directory: %s", models.ErrInvalidRoot, root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: failed to resolve %s: %w", models.ErrInvalidRoot, root, err)
	}
	walkRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", fmt.Errorf("%w: failed to resolve %s: %w", models.ErrInvalidRoot, root, err)
	}
	return walkRoot, nil
}

// NewWalker validates root and returns a Walker for it.
// Returns an error wrapping models.ErrInvalidRoot if root is missing or not a directory.
func NewWalker(root string, opts WalkOptions) (*Walker, error) {
	absRoot, err := ValidateRoot(root)
	if err != nil {
		return nil, err
	}

	excludeMap := make(map[string]bool)
	for _, dir := range opts.ExcludeDirs {
		excludeMap[dir] = true
	}

	return &Walker{
		root:       root,
		absRoot:    absRoot,
		excludeMap: excludeMap,
	}, nil
}

// Root returns the root path as supplied to NewWalker
func (w *Walker) Root() string {
	return w.root
}

// Files returns a lazy sequence of every file beneath the root.
// Directories are visited in lexical order, so the sequence is deterministic
// for an unchanged tree. Symlinks to directories are not followed.
// Non-fatal errors are collected and available from Errors after iteration.
func (w *Walker) Files() iter.Seq[WalkedFile] {
	return func(yield func(WalkedFile) bool) {
		w.errors = nil

		_ = filepath.WalkDir(w.absRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				w.errors = append(w.errors, fmt.Errorf("error accessing %s: %w", path, err))
				return nil // Continue walking
			}

			if d.IsDir() {
				if path != w.absRoot && w.excludeMap[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}

			if !w.isFile(path, d) {
				return nil
			}

			relPath, err := filepath.Rel(w.absRoot, path)
			if err != nil {
				w.errors = append(w.errors, fmt.Errorf("failed to resolve path %s: %w", path, err))
				return nil
			}

			file := WalkedFile{
				Path:    filepath.ToSlash(path),
				RelPath: filepath.ToSlash(relPath),
			}
			if !yield(file) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

// isFile reports whether an entry should be yielded as a file.
// Regular files qualify, as do symlinks that do not resolve to a directory;
// a dangling symlink is yielded so the read failure surfaces downstream.
func (w *Walker) isFile(path string, d fs.DirEntry) bool {
	mode := d.Type()
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return !info.IsDir()
}

// Errors returns the non-fatal errors collected by the most recent walk
func (w *Walker) Errors() []error {
	out := make([]error, len(w.errors))
	copy(out, w.errors)
	return out
}
