package domain

import "strings"

// VersionIdentifier converts a minimum deployment version string into the
// PackageDescription enum case spelling. A zero minor component collapses to
// the bare major form:
//
//	"12.0"  -> "v12"
//	"13.4"  -> "v13_4"
//	"10.15" -> "v10_15"
//
// The decision depends solely on whether the second component is the literal
// "0"; patch components are never emitted.
func VersionIdentifier(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) < 2 || parts[1] == "0" {
		return "v" + parts[0]
	}
	return "v" + parts[0] + "_" + parts[1]
}
