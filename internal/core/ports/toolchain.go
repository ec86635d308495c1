package ports

import (
	"context"

	"github.com/xcpack/xcpack/internal/core/domain"
)

// ArchiveSpec describes one single-slice toolchain build.
type ArchiveSpec struct {
	PackageRoot   string
	Scheme        string
	Configuration domain.Configuration
	Slice         domain.BuildSlice
	// ArchivePath is the per-slice isolated output location. Concurrent
	// slice builds of one run must use disjoint paths.
	ArchivePath string
}

// Toolchain drives the external build toolchain.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Archive builds one slice and returns the path of the produced
	// single-architecture framework. It returns domain.ErrToolchainInvocation
	// on a nonzero exit and domain.ErrArtifactNotFound when no candidate
	// output path exists.
	Archive(ctx context.Context, spec ArchiveSpec) (string, error)

	// CreateXCFramework merges per-slice frameworks into one bundle at
	// output, removing any prior bundle first.
	CreateXCFramework(ctx context.Context, frameworks []string, output string) error
}
