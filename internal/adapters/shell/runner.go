// Package shell provides the subprocess runner adapter.
package shell

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/xcpack/xcpack/internal/core/domain"
	"github.com/xcpack/xcpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the command, capturing stdout and stderr. Stderr lines are
// additionally streamed to the logger so long toolchain invocations stay
// observable while they run.
func (r *Runner) Run(ctx context.Context, command domain.Command) (domain.CommandResult, error) {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...) //nolint:gosec // toolchain invocation built from resolved settings
	if command.Dir != "" {
		cmd.Dir = command.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &teeWriter{buf: &stderr, logger: r.logger}

	err := cmd.Run()

	result := domain.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1 // failed to start or killed by signal
		}
		return result, zerr.With(zerr.Wrap(err, "command failed"), "exit_code", result.ExitCode)
	}

	return result, nil
}

// teeWriter captures output while forwarding complete lines to the logger.
type teeWriter struct {
	buf     *bytes.Buffer
	logger  ports.Logger
	pending strings.Builder
}

func (w *teeWriter) Write(p []byte) (int, error) {
	n, err := w.buf.Write(p)
	if err != nil {
		return n, err
	}

	w.pending.Write(p)
	for {
		s := w.pending.String()
		idx := strings.IndexByte(s, '\n')
		if idx < 0 {
			break
		}
		line := s[:idx]
		w.pending.Reset()
		w.pending.WriteString(s[idx+1:])
		if line != "" && w.logger != nil {
			w.logger.Info(line)
		}
	}
	return n, nil
}
