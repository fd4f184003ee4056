package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name        string
		development bool
	}{
		{"development mode", true},
		{"production mode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.development)
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestLoggingBeforeInit(t *testing.T) {
	// The package starts with a nop logger, so logging before Init must not panic.
	logger = zap.NewNop()

	assert.NotPanics(t, func() {
		Debug("debug message")
		Info("info message", zap.Int64("task_id", 1))
		Warn("warn message")
		Error("error message", assert.AnError)
		Error("error without cause", nil)
		Sync()
	})
}
