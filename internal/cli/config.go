package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ariel-frischer/tagcheck/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect tagcheck configuration",
		Long: `Inspect tagcheck configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (TAGCHECK_*, nesting separated by __)
  3. Project config (<root>/.tagcheck.json or --config)
  4. Built-in defaults`,
		Example: `  # Show the effective configuration
  tagcheck config show

  # Show it as JSON, ready to save as .tagcheck.json
  tagcheck config show --json

  # List every configuration key
  tagcheck config keys`,
		GroupID: GroupConfiguration,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current effective configuration",
		Long: `Display the current effective configuration values.

Shows the merged result of defaults, the project config file, environment
variables and flags. Use --json to control output format.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}
	showCmd.Flags().Bool("json", false, "Output in JSON format")
	addTagKeyFlag(showCmd)

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "List all configuration keys",
		Args:  cobra.NoArgs,
		RunE:  runConfigKeys,
	}

	configCmd.AddCommand(showCmd, keysCmd)
	return configCmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	useJSON, _ := cmd.Flags().GetBool("json")

	root, cfgPath, cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if useJSON {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize config: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	source := cfgPath
	if _, err := os.Stat(cfgPath); err != nil {
		source += " (not found)"
	}
	fmt.Fprintf(out, "# Configuration Sources\n")
	fmt.Fprintf(out, "# Project root:   %s\n", root)
	fmt.Fprintf(out, "# Project config: %s\n", source)
	fmt.Fprintf(out, "# Environment:    %s*\n", config.EnvPrefix)
	fmt.Fprintf(out, "\n")

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	fmt.Fprint(out, string(data))
	return nil
}

// runConfigKeys lists every key with its default value.
func runConfigKeys(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	defaults := config.GetDefaults()

	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(out, "%-18s %v\n", k, defaults[k])
	}
	return nil
}
