package errors

import "fmt"

// RootNotFound is returned when the tree to check does not exist.
func RootNotFound(root string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("project root %s does not exist", root),
		"Pass an existing directory with --root",
		"Run the command from inside the repository to check",
	)
}

// RootNotDirectory is returned when --root points at a file.
func RootNotDirectory(root string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("project root %s is not a directory", root),
		"tagcheck <tags|keys> --root <dir>",
	)
}

// ConfigLoadFailed wraps a failure to read or decode the configuration file.
func ConfigLoadFailed(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to load config %s", path),
		fmt.Sprintf("Check that %s is valid JSON", path),
		"Run with --config to point at another file",
	)
}

// ConfigInvalid wraps a configuration that decoded but failed validation.
func ConfigInvalid(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid configuration",
		"tagKey must be json or yaml",
		"extension lists must not be empty",
	)
}

// WalkFailed wraps an I/O failure that aborted a run.
func WalkFailed(root string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("checking %s failed", root),
		"Make sure every file under the root is readable",
	)
}
