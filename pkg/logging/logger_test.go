package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus", ""} {
		logger := New(level)
		require.NotNil(t, logger, "level %q", level)
		require.NotNil(t, logger.Logger)
	}
}

func TestComponent(t *testing.T) {
	logger := New("info")
	child := logger.Component("translation")
	require.NotNil(t, child)
	assert.NotSame(t, logger.Logger, child.Logger)

	var nilLogger *Logger
	assert.NotNil(t, nilLogger.Component("ranker"))
}
