package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level, format string
		debug         bool
	}{
		{"debug", "console", true},
		{"info", "json", false},
		{"bogus", "console", false},
	}
	for _, tt := range tests {
		log, err := New(tt.level, tt.format)
		require.NoError(t, err)
		assert.Equal(t, tt.debug, log.Core().Enabled(zapcore.DebugLevel), tt.level)
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	}
}
