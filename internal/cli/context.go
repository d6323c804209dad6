package cli

import (
	"os"
	"path/filepath"

	"github.com/ariel-frischer/tagcheck/internal/config"
	apperrors "github.com/ariel-frischer/tagcheck/internal/errors"
	"github.com/ariel-frischer/tagcheck/internal/git"
	"github.com/ariel-frischer/tagcheck/internal/logging"
	"github.com/ariel-frischer/tagcheck/internal/progress"
	"github.com/ariel-frischer/tagcheck/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runContext is everything a check needs, resolved once per invocation.
type runContext struct {
	cfg     *config.Configuration
	root    string
	rep     *report.Reporter
	display *progress.Display
	symbols progress.ProgressSymbols
	logger  *zap.Logger
}

// newRunContext resolves the project root, loads the configuration, applies
// command-line overrides and builds the output stack for cmd.
func newRunContext(cmd *cobra.Command) (*runContext, error) {
	root, cfgPath, cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	errOut := cmd.ErrOrStderr()
	caps := writerCapabilities(errOut)
	spinnerCaps := caps
	// Verbose and debug output scroll; a spinner would only garble it.
	if cfg.Verbose || cfg.Debug {
		spinnerCaps.IsTTY = false
	}
	display := progress.NewDisplay(spinnerCaps, errOut)

	logger := logging.New(cfg.Debug, errOut)
	logger.Debug("configuration loaded",
		zap.String("root", root),
		zap.String("config", cfgPath),
		zap.Bool("verbose", cfg.Verbose),
		zap.Bool("checkFields", cfg.CheckFields),
		zap.String("tagKey", cfg.TagKey),
	)

	rep := report.New(cmd.OutOrStdout(), errOut,
		report.WithVerbose(cfg.Verbose),
		report.WithColor(caps.SupportsColor && !cfg.NoColor),
		report.WithSuspender(display),
	)

	return &runContext{
		cfg:     cfg,
		root:    root,
		rep:     rep,
		display: display,
		symbols: progress.SelectSymbols(writerCapabilities(cmd.OutOrStdout())),
		logger:  logger,
	}, nil
}

// loadConfig resolves the project root and returns the effective
// configuration with command-line overrides applied.
func loadConfig(cmd *cobra.Command) (root, cfgPath string, cfg *config.Configuration, err error) {
	root, err = resolveRoot(cmd)
	if err != nil {
		return "", "", nil, err
	}

	cfgPath, _ = cmd.Flags().GetString("config")
	mustExist := cmd.Flags().Changed("config")
	if cfgPath == "" {
		cfgPath = filepath.Join(root, config.DefaultFileName)
	}
	cfg, err = config.Load(cfgPath, mustExist)
	if err != nil {
		return "", "", nil, err
	}
	applyFlagOverrides(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return "", "", nil, err
	}
	return root, cfgPath, cfg, nil
}

func resolveRoot(cmd *cobra.Command) (string, error) {
	explicit, _ := cmd.Flags().GetString("root")
	cwd, err := os.Getwd()
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.Runtime)
	}

	root, err := git.ResolveRoot(explicit, cwd)
	if err != nil {
		return "", apperrors.WrapWithMessage(err, apperrors.Prerequisite,
			"cannot determine the project root", "Pass the directory to check with --root")
	}

	info, err := os.Stat(root)
	switch {
	case os.IsNotExist(err):
		return "", apperrors.RootNotFound(root)
	case err != nil:
		return "", apperrors.Wrap(err, apperrors.Runtime)
	case !info.IsDir():
		return "", apperrors.RootNotDirectory(root)
	}
	return root, nil
}

// applyFlagOverrides copies explicitly set flags over the loaded configuration.
// If a flag is not set, the config file (or environment) value is kept.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Configuration) {
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("fields") {
		cfg.CheckFields, _ = flags.GetBool("fields")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}
	if flags.Changed("tag-key") {
		cfg.TagKey, _ = flags.GetString("tag-key")
	}
}

// relative names path for diagnostics, relative to the project root.
func (rc *runContext) relative(path string) string {
	rel, err := filepath.Rel(rc.root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// summary prints the closing line of a verbose run.
func (rc *runContext) summary(valid bool, format string, args ...any) {
	mark := rc.symbols.Checkmark
	if !valid {
		mark = rc.symbols.Failure
	}
	rc.rep.Verbosef(mark+" "+format, args...)
}
