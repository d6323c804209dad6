// Package walk visits the files of a project tree in depth-first lexical order,
// pruning excluded directories before descending into them.
package walk

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
)

// Options selects which files are visited.
type Options struct {
	// Extensions lists accepted file extensions including the dot (".go").
	// Empty accepts every file.
	Extensions []string
	// ExcludeDirs lists directory base names that are never entered.
	ExcludeDirs []string
	// ExcludeFiles lists file base names that are never visited.
	ExcludeFiles []string
	Logger       *zap.Logger
}

// Walk calls fn for every selected regular file under root. Excluded
// directories are skipped without being read. An error from fn stops the walk.
func Walk(root string, opts Options, fn func(path string) error) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && slices.Contains(opts.ExcludeDirs, name) {
				logger.Debug("skipping excluded directory", zap.String("path", path))
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if slices.Contains(opts.ExcludeFiles, name) {
			logger.Debug("skipping excluded file", zap.String("path", path))
			return nil
		}
		if len(opts.Extensions) > 0 && !slices.Contains(opts.Extensions, filepath.Ext(name)) {
			return nil
		}
		return fn(path)
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}
	return nil
}
