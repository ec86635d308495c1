package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xcpack/xcpack/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Info("building target")
	l.Warn("staging directory not removed")
	l.Error(errors.New("archive failed"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="building target"`)
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `error="archive failed"`)
}

func TestLogger_NilOutputFallsBack(t *testing.T) {
	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	// Must not panic; output reverts to stderr.
	l.SetOutput(nil)
	l.Info("still alive")
}
