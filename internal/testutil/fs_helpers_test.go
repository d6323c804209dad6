package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteTree(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		files map[string]string
	}{
		"flat": {
			files: map[string]string{"a.go": "package a"},
		},
		"nested": {
			files: map[string]string{
				"service/config/config.go": "package config",
				"charts/values.yaml":       "replicaCount: 1",
			},
		},
		"empty": {
			files: map[string]string{},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			root := WriteTree(t, tc.files)
			for rel, want := range tc.files {
				path := filepath.Join(root, filepath.FromSlash(rel))
				if !FileExists(path) {
					t.Fatalf("file was not created: %s", path)
				}
				if got := ReadFile(t, path); got != want {
					t.Errorf("content of %s = %q, want %q", rel, got, want)
				}
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Errorf("expected %s to exist", path)
	}
	if FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("expected absent.txt not to exist")
	}
}
