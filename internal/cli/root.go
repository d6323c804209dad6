// Package cli provides the Cobra-based commands of tagcheck: `tags` checks the
// struct tags of Go sources and `keys` checks the keys of YAML configuration.
package cli

import (
	"io"
	"os"

	"github.com/ariel-frischer/tagcheck/internal/cli/shared"
	apperrors "github.com/ariel-frischer/tagcheck/internal/errors"
	"github.com/ariel-frischer/tagcheck/internal/progress"
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupChecks        = shared.GroupChecks
	GroupConfiguration = shared.GroupConfiguration
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tagcheck",
		Short: "Check naming conventions of struct tags and configuration keys",
		Long: `tagcheck enforces lower-camel-case naming across a project tree.

The tags command scans Go sources for protobuf and json struct tags and checks
each tag name. The keys command parses YAML files and checks every mapping key.`,
		Example: `  # Check struct tags and report fields whose name drifted from the tag
  tagcheck tags --fields

  # Check the keys of every YAML file, listing files as they are visited
  tagcheck keys --verbose

  # Check another tree
  tagcheck tags --root ../service`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddGroup(&cobra.Group{ID: GroupChecks, Title: "Checks:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})
	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
	})

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default <root>/.tagcheck.json)")
	rootCmd.PersistentFlags().String("root", "", "Project root to check (default: enclosing git worktree)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print a line for every name checked")
	rootCmd.PersistentFlags().Bool("fields", false, "Warn when a field name differs from its tag")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(newTagsCmd(), newKeysCmd(), newConfigCmd(), newVersionCmd())
	return rootCmd
}

// Execute runs the root command against the process arguments and streams
// and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes tagcheck with args, writing to out and errOut, and returns
// the exit code.
func Run(args []string, out, errOut io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.Execute()
	if err != nil && !shared.IsExitError(err) {
		apperrors.FprintError(errOut, err, writerCapabilities(errOut).SupportsColor)
	}
	return shared.ExitCode(err)
}

// writerCapabilities detects terminal features of w. Anything other than a
// file is treated as a pipe.
func writerCapabilities(w io.Writer) progress.TerminalCapabilities {
	if f, ok := w.(*os.File); ok {
		return progress.DetectTerminalCapabilities(f)
	}
	return progress.TerminalCapabilities{}
}
