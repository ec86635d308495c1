package domain

import "go.trai.ch/zerr"

var (
	// ErrAnalysisFailed is returned when the package introspection report
	// cannot be produced or decoded. It aborts before any manifest mutation.
	ErrAnalysisFailed = zerr.New("package analysis failed")

	// ErrNoSchemes is returned when the scheme listing is empty.
	ErrNoSchemes = zerr.New("no build schemes available")

	// ErrNoBuildTargets is returned when no product target matches an
	// available scheme.
	ErrNoBuildTargets = zerr.New("no build targets derived")

	// ErrToolchainInvocation is recorded when a toolchain subprocess exits
	// nonzero. It degrades a single target, never the batch.
	ErrToolchainInvocation = zerr.New("toolchain invocation failed")

	// ErrArtifactNotFound is recorded when no candidate output path contains
	// the built framework. It degrades a single target, never the batch.
	ErrArtifactNotFound = zerr.New("built artifact not found")

	// ErrBundleAssembly is recorded when the bundling subprocess fails for
	// one target.
	ErrBundleAssembly = zerr.New("bundle assembly failed")

	// ErrManifestIO is returned when the package manifest cannot be read or
	// rewritten before the build phase starts.
	ErrManifestIO = zerr.New("manifest read/write failed")

	// ErrManifestRestore is returned when writing the original manifest back
	// fails. It is fatal and unrecoverable: the manifest is shared state for
	// every future run and no retry is attempted.
	ErrManifestRestore = zerr.New("manifest restore failed")

	// ErrMissingChecksum is returned by remote-mode manifest generation when
	// a built target has no corresponding zipped artifact digest.
	ErrMissingChecksum = zerr.New("missing checksum for built target")

	// ErrNoTargetsBuilt is returned when a run produces zero bundles.
	ErrNoTargetsBuilt = zerr.New("no targets built")

	// ErrPartialFailure is returned in release mode when some targets built
	// and some failed: a release must be complete to be publishable.
	ErrPartialFailure = zerr.New("some targets failed")

	// ErrInvalidConfiguration is returned for an unknown build configuration
	// or platform name in the config file or flags.
	ErrInvalidConfiguration = zerr.New("invalid configuration")
)
