package shared

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/ariel-frischer/tagcheck/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":                {err: nil, want: ExitSuccess},
		"exit error":         {err: NewExitError(ExitValidationFailed), want: ExitValidationFailed},
		"wrapped exit error": {err: fmt.Errorf("run: %w", NewExitError(ExitInvalidArguments)), want: ExitInvalidArguments},
		"argument error":     {err: apperrors.NewArgumentErrorWithUsage("bad flag", "tagcheck tags"), want: ExitInvalidArguments},
		"config error":       {err: apperrors.ConfigInvalid(errors.New("bad config")), want: ExitInvalidArguments},
		"prerequisite error": {err: apperrors.RootNotFound("/missing"), want: ExitInvalidArguments},
		"runtime error":      {err: apperrors.WalkFailed("/repo", errors.New("read failed")), want: ExitValidationFailed},
		"plain error":        {err: errors.New("boom"), want: ExitValidationFailed},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestIsExitError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsExitError(NewExitError(1)))
	assert.False(t, IsExitError(errors.New("exit code 1")))
	assert.False(t, IsExitError(nil))
	assert.Equal(t, "exit code 3", NewExitError(3).Error())
}
