package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		lvl, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, lvl, name)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestConfigure(t *testing.T) {
	defer func(l *zap.Logger) { Log = l }(Log)

	require.NoError(t, Configure("warn", true))
	assert.False(t, Log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Log.Core().Enabled(zapcore.WarnLevel))

	before := Log
	assert.Error(t, Configure("loud", false))
	assert.Same(t, before, Log)
}
