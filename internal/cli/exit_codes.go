package cli

import (
	"github.com/ariel-frischer/tagcheck/internal/cli/shared"
)

// Exit codes for the tagcheck CLI (re-exported from shared)
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates every checked name is valid
	ExitSuccess = shared.ExitSuccess

	// ExitValidationFailed indicates an invalid name, an unparsable file or an I/O failure
	ExitValidationFailed = shared.ExitValidationFailed

	// ExitInvalidArguments indicates invalid arguments, configuration or project root
	ExitInvalidArguments = shared.ExitInvalidArguments
)
