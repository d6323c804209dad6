// Package git locates the project root a check runs against.
package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// RepositoryRoot returns the worktree root of the git repository that
// contains dir, searching parent directories like `git rev-parse --show-toplevel`.
func RepositoryRoot(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("reading worktree of %s: %w", dir, err)
	}
	return wt.Filesystem.Root(), nil
}

// ResolveRoot picks the directory to check. An explicit root always wins;
// otherwise the enclosing repository of cwd is used, falling back to cwd
// itself when cwd is not inside a repository.
func ResolveRoot(explicit, cwd string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	root, err := RepositoryRoot(cwd)
	if err == nil {
		return root, nil
	}
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return filepath.Abs(cwd)
	}
	return "", err
}
