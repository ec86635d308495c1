// Package staging owns the filesystem surface of a run: the shared package
// manifest, the per-run staging directory, and the prebuilt-dependency
// staging layout.
package staging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/xcpack/xcpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// ManifestName is the file the pipeline mutates and restores.
const ManifestName = "Package.swift"

// Workspace implements ports.Workspace.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// ReadManifest returns the manifest bytes for the package at root.
func (w *Workspace) ReadManifest(root string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(root, ManifestName))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestIO.Error()), "root", root)
	}
	return data, nil
}

// WriteManifest replaces the manifest for the package at root.
func (w *Workspace) WriteManifest(root string, data []byte) error {
	path := filepath.Join(root, ManifestName)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestIO.Error()), "root", root)
	}
	return nil
}

// RunDir creates the staging directory for one run. The name mixes the
// package name with a hash of its absolute root, so concurrent runs on
// different checkouts never share a directory.
func (w *Workspace) RunDir(root, name string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve package root")
	}

	dir := filepath.Join(root, ".xcpack", "build",
		fmt.Sprintf("%s-%016x", name, xxhash.Sum64String(abs)))
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create staging directory"), "dir", dir)
	}
	return dir, nil
}

// Cleanup removes a run's staging directory. Stale artifacts must never
// leak into a future run.
func (w *Workspace) Cleanup(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove staging directory"), "dir", dir)
	}
	return nil
}

// PrebuiltPath reports where a prebuilt checkout for the dependency is
// expected and whether it exists right now. The check is re-evaluated per
// call; availability is a runtime predicate, never a cached decision.
func (w *Workspace) PrebuiltPath(stagingRoot, identity string) (string, bool) {
	path := filepath.Join(stagingRoot, identity)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return path, false
	}
	return path, true
}
