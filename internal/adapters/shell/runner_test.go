package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xcpack/xcpack/internal/adapters/logger"
	"github.com/xcpack/xcpack/internal/adapters/shell"
	"github.com/xcpack/xcpack/internal/core/domain"
)

func TestRun_CapturesStdout(t *testing.T) {
	r := shell.NewRunner(logger.New())

	result, err := r.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err >&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "out\n", result.Stdout)
	assert.Equal(t, "err\n", result.Stderr)
	assert.Equal(t, 0, result.ExitCode)
}

func TestRun_NonzeroExit(t *testing.T) {
	r := shell.NewRunner(logger.New())

	result, err := r.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo partial; exit 3"},
	})
	require.Error(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "partial\n", result.Stdout, "output is captured even on failure")
	assert.Contains(t, err.Error(), "command failed")
}

func TestRun_MissingBinary(t *testing.T) {
	r := shell.NewRunner(logger.New())

	result, err := r.Run(context.Background(), domain.Command{Name: "definitely-not-a-binary"})
	require.Error(t, err)
	assert.Equal(t, -1, result.ExitCode)
}

func TestRun_WorkingDirectory(t *testing.T) {
	r := shell.NewRunner(logger.New())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0o644))

	result, err := r.Run(context.Background(), domain.Command{
		Name: "ls",
		Dir:  dir,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "marker.txt")
}

func TestRun_Cancellation(t *testing.T) {
	r := shell.NewRunner(logger.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, domain.Command{Name: "sleep", Args: []string{"10"}})
	require.Error(t, err)
}
