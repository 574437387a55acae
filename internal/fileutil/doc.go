// Package fileutil provides the tree walker used to enumerate a distribution tree.
//
// # Purpose
//
// The walker visits every file beneath a root directory and yields it lazily
// as a WalkedFile carrying both its absolute path and its root-relative path.
// Both forms are normalized to forward slashes, so downstream path handling
// is identical on every platform.
//
// # Key Features
//
//   - Root validation up front (missing root or non-directory wraps models.ErrInvalidRoot)
//   - Lexical traversal order, deterministic for an unchanged tree
//   - Hidden directories are walked; a shipped tree ships its dot-directories too
//   - Optional pruning of directories by base name
//   - Error tolerance: unreadable subdirectories are recorded and the walk continues
//
// # Usage
//
//	walker, err := fileutil.NewWalker("dist/bin", fileutil.WalkOptions{})
//	if err != nil {
//	    return err // errors.Is(err, models.ErrInvalidRoot)
//	}
//	for file := range walker.Files() {
//	    fmt.Println(file.RelPath)
//	}
//	for _, err := range walker.Errors() {
//	    log.Printf("walk: %v", err)
//	}
//
// Breaking out of the range loop stops the underlying directory walk.
package fileutil
