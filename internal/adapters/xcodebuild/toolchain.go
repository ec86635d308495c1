// Package xcodebuild drives the external build toolchain: one archive
// invocation per build slice and one -create-xcframework invocation per
// target to merge the slices into a bundle.
package xcodebuild

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xcpack/xcpack/internal/core/domain"
	"github.com/xcpack/xcpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// outputTailLimit bounds how much toolchain output is attached to errors.
const outputTailLimit = 4096

// Toolchain implements ports.Toolchain by shelling out to xcodebuild.
type Toolchain struct {
	runner ports.Runner
	logger ports.Logger
}

// NewToolchain creates a new Toolchain.
func NewToolchain(runner ports.Runner, logger ports.Logger) *Toolchain {
	return &Toolchain{runner: runner, logger: logger}
}

// Archive builds one slice into spec.ArchivePath and returns the path of
// the produced framework. SKIP_INSTALL=NO keeps the framework inside the
// archive; BUILD_LIBRARY_FOR_DISTRIBUTION=YES makes it distributable.
func (t *Toolchain) Archive(ctx context.Context, spec ports.ArchiveSpec) (string, error) {
	t.logger.Info(fmt.Sprintf("building %s for %s", spec.Scheme, spec.Slice.Name))

	result, err := t.runner.Run(ctx, domain.Command{
		Name: "xcodebuild",
		Args: []string{
			"archive",
			"-scheme", spec.Scheme,
			"-configuration", spec.Configuration.ToolchainName(),
			"-sdk", spec.Slice.SDK,
			"-destination", spec.Slice.Destination,
			"-archivePath", spec.ArchivePath,
			"SKIP_INSTALL=NO",
			"BUILD_LIBRARY_FOR_DISTRIBUTION=YES",
		},
		Dir: spec.PackageRoot,
	})
	if err != nil {
		ierr := zerr.With(domain.ErrToolchainInvocation, "target", spec.Scheme)
		ierr = zerr.With(ierr, "slice", spec.Slice.Name)
		ierr = zerr.With(ierr, "exit_code", result.ExitCode)
		ierr = zerr.With(ierr, "output", tail(result.Stderr+result.Stdout, outputTailLimit))
		return "", ierr
	}

	return t.locateFramework(spec)
}

// locateFramework checks the ordered candidate locations inside the archive
// and returns the first that exists. Library products land under
// Products/Library/Frameworks; package-style layouts fall back to
// Products/usr/local/lib.
func (t *Toolchain) locateFramework(spec ports.ArchiveSpec) (string, error) {
	archive := spec.ArchivePath + ".xcarchive"
	candidates := []string{
		filepath.Join(archive, "Products", "Library", "Frameworks", spec.Scheme+".framework"),
		filepath.Join(archive, "Products", "usr", "local", "lib", spec.Scheme+".framework"),
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}

	err := zerr.With(domain.ErrArtifactNotFound, "target", spec.Scheme)
	return "", zerr.With(err, "slice", spec.Slice.Name)
}

// CreateXCFramework merges the per-slice frameworks into a single bundle.
// Any prior bundle at output is removed first; a missing one is not an
// error.
func (t *Toolchain) CreateXCFramework(ctx context.Context, frameworks []string, output string) error {
	if err := os.RemoveAll(output); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, domain.ErrBundleAssembly.Error()), "output", output)
	}
	if err := os.MkdirAll(filepath.Dir(output), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBundleAssembly.Error()), "output", output)
	}

	args := []string{"-create-xcframework"}
	for _, fw := range frameworks {
		args = append(args, "-framework", fw)
	}
	args = append(args, "-output", output)

	result, err := t.runner.Run(ctx, domain.Command{Name: "xcodebuild", Args: args})
	if err != nil {
		aerr := zerr.With(domain.ErrBundleAssembly, "output", output)
		aerr = zerr.With(aerr, "exit_code", result.ExitCode)
		return zerr.With(aerr, "toolchain_output", tail(result.Stderr+result.Stdout, outputTailLimit))
	}
	return nil
}

func tail(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[len(s)-limit:]
}
