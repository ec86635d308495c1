package ports

// Workspace owns the filesystem surface of one run: the shared package
// manifest and the per-run staging directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// ReadManifest returns the manifest bytes for the package at root.
	ReadManifest(root string) ([]byte, error)

	// WriteManifest replaces the manifest for the package at root.
	WriteManifest(root string, data []byte) error

	// RunDir creates and returns the staging directory for one run. The
	// directory is exclusively owned by that run.
	RunDir(root, name string) (string, error)

	// Cleanup removes a run's staging directory. A missing directory is not
	// an error.
	Cleanup(dir string) error

	// PrebuiltPath returns the staging location where a prebuilt dependency
	// artifact is expected, and whether it exists right now.
	PrebuiltPath(stagingRoot, identity string) (string, bool)
}
