package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		debug    bool
		wantLogs bool
	}{
		"debug off is silent": {debug: false, wantLogs: false},
		"debug on writes":     {debug: true, wantLogs: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := New(tt.debug, &buf)
			logger.Debug("scanned file", zap.String("path", "service/config.go"))
			_ = logger.Sync()

			if tt.wantLogs {
				assert.Contains(t, buf.String(), "scanned file")
				assert.Contains(t, buf.String(), "service/config.go")
				assert.Contains(t, buf.String(), "DEBUG")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
