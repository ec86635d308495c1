// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/xcpack/xcpack/internal/core/domain"
)

// Runner executes external subprocesses.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Runner interface {
	// Run starts the command and waits for it to finish. The result carries
	// captured stdout/stderr and the exit code even when err is non-nil;
	// err is non-nil for a nonzero exit or a failure to start.
	Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}
