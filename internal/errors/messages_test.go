// Package errors_test tests the CLI errors raised when a check cannot run.
// Related: internal/errors/messages.go
// Tags: errors, cli-errors, messages, remediation, error-categories
package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestRootNotFound(t *testing.T) {
	err := RootNotFound("/path/to/root")

	if err.Category != Prerequisite {
		t.Errorf("Expected Prerequisite category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, "/path/to/root") {
		t.Error("Expected message to contain path")
	}
	if len(err.Remediation) == 0 {
		t.Error("Expected remediation steps")
	}
}

func TestRootNotDirectory(t *testing.T) {
	err := RootNotDirectory("/path/to/file.go")

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if err.Usage == "" {
		t.Error("Expected non-empty usage")
	}
}

func TestConfigLoadFailed(t *testing.T) {
	cause := stderrors.New("unexpected end of JSON input")
	err := ConfigLoadFailed(".tagcheck.json", cause)

	if err.Category != Configuration {
		t.Errorf("Expected Configuration category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, ".tagcheck.json") || !strings.Contains(err.Message, "unexpected end") {
		t.Errorf("Expected message to contain path and cause, got %q", err.Message)
	}
	if !stderrors.Is(err, cause) {
		t.Error("Expected the cause to stay in the chain")
	}
}

func TestConfigInvalid(t *testing.T) {
	err := ConfigInvalid(stderrors.New("tagKey: oneof"))

	if err.Category != Configuration {
		t.Errorf("Expected Configuration category, got %v", err.Category)
	}
	if !strings.HasPrefix(err.Message, "invalid configuration: ") {
		t.Errorf("Unexpected message %q", err.Message)
	}
}

func TestWalkFailed(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := WalkFailed("/repo", cause)

	if err.Category != Runtime {
		t.Errorf("Expected Runtime category, got %v", err.Category)
	}
	if !stderrors.Is(err, cause) {
		t.Error("Expected the cause to stay in the chain")
	}
}
