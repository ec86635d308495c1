package domain

import "strings"

// PlatformKind identifies one Apple platform family. The set is closed.
type PlatformKind string

const (
	// PlatformIOS is the iOS family (device + simulator).
	PlatformIOS PlatformKind = "ios"
	// PlatformMacOS is the desktop platform (single slice).
	PlatformMacOS PlatformKind = "macos"
	// PlatformTVOS is the tvOS family (device + simulator).
	PlatformTVOS PlatformKind = "tvos"
	// PlatformWatchOS is the watchOS family (device + simulator).
	PlatformWatchOS PlatformKind = "watchos"
	// PlatformVisionOS is the visionOS family (device + simulator).
	PlatformVisionOS PlatformKind = "visionos"
)

// AllPlatformKinds lists every supported platform kind in a stable order.
var AllPlatformKinds = []PlatformKind{
	PlatformIOS,
	PlatformMacOS,
	PlatformTVOS,
	PlatformWatchOS,
	PlatformVisionOS,
}

// ParsePlatformKind normalizes a user- or manifest-supplied platform name.
func ParsePlatformKind(name string) (PlatformKind, bool) {
	switch strings.ToLower(name) {
	case "ios":
		return PlatformIOS, true
	case "macos":
		return PlatformMacOS, true
	case "tvos":
		return PlatformTVOS, true
	case "watchos":
		return PlatformWatchOS, true
	case "visionos":
		return PlatformVisionOS, true
	default:
		return "", false
	}
}

// SwiftName returns the PackageDescription platform identifier, e.g. ".iOS".
func (k PlatformKind) SwiftName() string {
	switch k {
	case PlatformIOS:
		return "iOS"
	case PlatformMacOS:
		return "macOS"
	case PlatformTVOS:
		return "tvOS"
	case PlatformWatchOS:
		return "watchOS"
	case PlatformVisionOS:
		return "visionOS"
	default:
		return string(k)
	}
}

// PlatformRequirement is a minimum deployment version for one platform.
type PlatformRequirement struct {
	Kind    PlatformKind
	Version string
}

// DefaultPlatforms are assumed when the manifest declares no platform
// requirements: the desktop platform plus the primary mobile platform at
// conservative minimum versions.
var DefaultPlatforms = []PlatformRequirement{
	{Kind: PlatformMacOS, Version: "10.15"},
	{Kind: PlatformIOS, Version: "13.0"},
}

// EffectivePlatforms returns the declared requirements, or the defaults when
// the manifest declares none.
func EffectivePlatforms(declared []PlatformRequirement) []PlatformRequirement {
	if len(declared) == 0 {
		return DefaultPlatforms
	}
	return declared
}

// BuildSlice is one single-SDK build variant of a platform, carrying the
// identifiers xcodebuild needs plus a human-readable name.
type BuildSlice struct {
	SDK         string
	Destination string
	Name        string
}

// SlicesFor maps a platform kind to its build slices. Desktop platforms have
// a single slice; every other kind builds a device and a simulator variant.
// The mapping is fixed domain knowledge and has no failure mode.
func SlicesFor(kind PlatformKind) []BuildSlice {
	switch kind {
	case PlatformMacOS:
		return []BuildSlice{
			{SDK: "macosx", Destination: "generic/platform=macOS", Name: "macOS"},
		}
	case PlatformIOS:
		return []BuildSlice{
			{SDK: "iphoneos", Destination: "generic/platform=iOS", Name: "iOS"},
			{SDK: "iphonesimulator", Destination: "generic/platform=iOS Simulator", Name: "iOS Simulator"},
		}
	case PlatformTVOS:
		return []BuildSlice{
			{SDK: "appletvos", Destination: "generic/platform=tvOS", Name: "tvOS"},
			{SDK: "appletvsimulator", Destination: "generic/platform=tvOS Simulator", Name: "tvOS Simulator"},
		}
	case PlatformWatchOS:
		return []BuildSlice{
			{SDK: "watchos", Destination: "generic/platform=watchOS", Name: "watchOS"},
			{SDK: "watchsimulator", Destination: "generic/platform=watchOS Simulator", Name: "watchOS Simulator"},
		}
	case PlatformVisionOS:
		return []BuildSlice{
			{SDK: "xros", Destination: "generic/platform=visionOS", Name: "visionOS"},
			{SDK: "xrsimulator", Destination: "generic/platform=visionOS Simulator", Name: "visionOS Simulator"},
		}
	default:
		return nil
	}
}
