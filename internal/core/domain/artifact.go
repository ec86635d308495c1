package domain

import "io/fs"

// File and directory permissions used for everything the pipeline writes.
const (
	FilePerm fs.FileMode = 0o644
	DirPerm  fs.FileMode = 0o755
)

// BundleExt is the extension of a multi-architecture bundle directory.
const BundleExt = ".xcframework"

// BuiltBundle pairs a successfully built target with the file name of the
// bundle that wraps it (the bundle is named after the owning product).
type BuiltBundle struct {
	Target string
	Bundle string
}

// ZippedArtifact is one archived bundle with its content digest. It is
// produced by the archive stage and consumed only by remote-mode manifest
// generation.
type ZippedArtifact struct {
	Target   string
	Path     string
	Checksum string
}

// Configuration is the toolchain build configuration.
type Configuration string

const (
	// ConfigurationDebug builds without optimizations.
	ConfigurationDebug Configuration = "debug"
	// ConfigurationRelease is the default for distributable bundles.
	ConfigurationRelease Configuration = "release"
)

// ParseConfiguration normalizes a user-supplied configuration name.
func ParseConfiguration(name string) (Configuration, bool) {
	switch name {
	case "debug", "Debug":
		return ConfigurationDebug, true
	case "release", "Release":
		return ConfigurationRelease, true
	default:
		return "", false
	}
}

// ToolchainName returns the spelling xcodebuild expects.
func (c Configuration) ToolchainName() string {
	switch c {
	case ConfigurationDebug:
		return "Debug"
	default:
		return "Release"
	}
}
