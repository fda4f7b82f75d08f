package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("INFO"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("chatty"))
}

func TestInit(t *testing.T) {
	prev := S
	defer func() { S = prev }()

	log := Init("debug")
	assert.Same(t, log, S)
	assert.True(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))

	Init("error")
	assert.False(t, S.Desugar().Core().Enabled(zapcore.WarnLevel))
}
