package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level  string
		format string
		want   zap.AtomicLevel
	}{
		{level: "debug", format: "console", want: zap.NewAtomicLevelAt(zap.DebugLevel)},
		{level: "warn", format: "json", want: zap.NewAtomicLevelAt(zap.WarnLevel)},
		{level: "error", format: "console", want: zap.NewAtomicLevelAt(zap.ErrorLevel)},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			logger, err := New(tt.level, tt.format)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want.Level()))
			assert.False(t, logger.Core().Enabled(tt.want.Level()-1))
		})
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("loud", "console")
	assert.Error(t, err)
}
