package ports

import (
	"context"

	"github.com/xcpack/xcpack/internal/core/domain"
)

// Analyzer produces the package descriptor for a Swift package checkout.
// It wraps the external introspection collaborator (manifest dump) and the
// scheme listing collaborator.
//
//go:generate go run go.uber.org/mock/mockgen -source=analyzer.go -destination=mocks/mock_analyzer.go -package=mocks
type Analyzer interface {
	// Describe runs the introspection report and the scheme listing for the
	// package rooted at dir. The returned descriptor is immutable for the
	// remainder of the run.
	Describe(ctx context.Context, dir string) (*domain.PackageDescriptor, error)
}
