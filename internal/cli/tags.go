package cli

import (
	"os"

	"github.com/ariel-frischer/tagcheck/internal/cli/shared"
	apperrors "github.com/ariel-frischer/tagcheck/internal/errors"
	"github.com/ariel-frischer/tagcheck/internal/naming"
	"github.com/ariel-frischer/tagcheck/internal/tags"
	"github.com/ariel-frischer/tagcheck/internal/walk"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Check the names of protobuf and json struct tags",
		Long: `Scan every Go source under the project root and check struct tag names.

A line carrying a protobuf annotation contributes the json= override, or the
name= field when there is none. Any other line contributes its json tag. Every
collected name must be lower camel case.

With --fields, a field whose name differs from its tag (ignoring case and
underscores) is reported as a warning. Warnings never fail the check.`,
		Example: `  tagcheck tags
  tagcheck tags --fields --verbose
  tagcheck tags --tag-key yaml`,
		GroupID: GroupChecks,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := newRunContext(cmd)
			if err != nil {
				return err
			}
			return runTags(rc)
		},
	}
	addTagKeyFlag(cmd)
	return cmd
}

func addTagKeyFlag(cmd *cobra.Command) {
	cmd.Flags().String("tag-key", "json", "Struct tag key checked on lines without a protobuf annotation (json or yaml)")
}

func runTags(rc *runContext) error {
	scanner := tags.NewScanner(tags.Options{
		CheckFieldNames: rc.cfg.CheckFields,
		TagKey:          rc.cfg.TagKey,
	}, rc.rep, rc.logger)

	files := 0
	rc.display.Start("scanning " + rc.root)
	err := walk.Walk(rc.root, walk.Options{
		Extensions:  rc.cfg.Tags.Extensions,
		ExcludeDirs: rc.cfg.Tags.ExcludeDirs,
		Logger:      rc.logger,
	}, func(path string) error {
		name := rc.relative(path)
		rc.display.Update(name)

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		files++
		return scanner.Scan(name, f)
	})
	rc.display.Stop()
	if err != nil {
		return apperrors.WalkFailed(rc.root, err)
	}

	valid := tags.NewValidator(naming.TagContract(tags.SourceWire.String()), rc.rep).Validate(scanner.Wire)
	if !tags.NewValidator(naming.TagContract(rc.cfg.TagKey), rc.rep).Validate(scanner.Serialization) {
		valid = false
	}

	rc.logger.Debug("tags checked",
		zap.Int("files", files),
		zap.Int("wire", scanner.Wire.Len()),
		zap.Int("serialization", scanner.Serialization.Len()),
		zap.Bool("valid", valid),
	)
	rc.summary(valid, "checked %d protobuf and %d %s tags in %d files: %d errors, %d warnings",
		scanner.Wire.Len(), scanner.Serialization.Len(), rc.cfg.TagKey, files,
		rc.rep.Errors(), rc.rep.Warnings())

	if !valid {
		return shared.NewExitError(shared.ExitValidationFailed)
	}
	return nil
}
