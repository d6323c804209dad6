package cli

import (
	"os"

	"github.com/ariel-frischer/tagcheck/internal/cli/shared"
	apperrors "github.com/ariel-frischer/tagcheck/internal/errors"
	"github.com/ariel-frischer/tagcheck/internal/walk"
	"github.com/ariel-frischer/tagcheck/internal/yaml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Check the keys of YAML configuration files",
		Long: `Parse every YAML file under the project root and check its mapping keys.

Keys are checked at every depth, including mappings inside lists. A key must
start with a lower-case letter or a digit and contain only letters, digits and
hyphens. A file that fails to parse fails the check.

Directories named dependency, templates and .github and files named
swagger.yaml are skipped by default.`,
		Example: `  tagcheck keys
  tagcheck keys --verbose --root deploy`,
		GroupID: GroupChecks,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := newRunContext(cmd)
			if err != nil {
				return err
			}
			return runKeys(rc)
		},
	}
}

func runKeys(rc *runContext) error {
	validator := yaml.NewKeyValidator(rc.rep, rc.logger)

	files := 0
	valid := true
	rc.display.Start("checking " + rc.root)
	err := walk.Walk(rc.root, walk.Options{
		Extensions:   rc.cfg.Keys.Extensions,
		ExcludeDirs:  rc.cfg.Keys.ExcludeDirs,
		ExcludeFiles: rc.cfg.Keys.ExcludeFiles,
		Logger:       rc.logger,
	}, func(path string) error {
		name := rc.relative(path)
		rc.display.Update(name)
		rc.rep.Verbosef("%s", name)

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		files++
		if !validator.ValidateReader(name, f) {
			valid = false
		}
		return nil
	})
	rc.display.Stop()
	if err != nil {
		return apperrors.WalkFailed(rc.root, err)
	}

	rc.logger.Debug("keys checked", zap.Int("files", files), zap.Bool("valid", valid))
	rc.summary(valid, "checked %d files: %d errors", files, rc.rep.Errors())

	if !valid {
		return shared.NewExitError(shared.ExitValidationFailed)
	}
	return nil
}
