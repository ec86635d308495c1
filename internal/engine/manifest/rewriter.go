// Package manifest implements the pure-text transforms over Package.swift:
// retargeting dependency declarations at local prebuilt checkouts, forcing
// dynamic library linkage, and generating the output manifest for built
// bundles. The manifest is treated as opaque text matched by anchored
// patterns; unrelated formatting and comments are preserved untouched.
package manifest

import (
	"fmt"
	"regexp"
	"strings"
)

// Substitution maps a dependency identity to the local staging checkout that
// replaces its remote declaration.
type Substitution struct {
	Identity  string
	LocalPath string
}

// Rewrite replaces every .package(url: ...) declaration whose URL ends in a
// substituted identity (optionally with a .git suffix, under any scheme or
// host) with a .package(path: ...) declaration pointing at the local
// checkout. The version-requirement clause of a rewritten declaration is
// discarded. Declarations for identities without a substitution are left
// completely untouched. Unmatched input is returned unchanged.
func Rewrite(text string, subs []Substitution) string {
	for _, sub := range subs {
		re := packagePattern(sub.Identity)
		text = re.ReplaceAllString(text, fmt.Sprintf(".package(path: %q)", sub.LocalPath))
	}
	return text
}

// packagePattern anchors on the .package keyword followed by a url: field.
// The requirement tail admits one level of nested parentheses (e.g.
// .upToNextMajor(from: "1.0.0")) but never crosses the declaration's own
// closing parenthesis, so adjacent declarations cannot be consumed.
func packagePattern(identity string) *regexp.Regexp {
	id := regexp.QuoteMeta(identity)
	return regexp.MustCompile(
		`(?i)\.package\(\s*(?:name:\s*"[^"]*"\s*,\s*)?url:\s*"[^"]*[/:]` + id +
			`(?:\.git)?/?"\s*,\s*(?:[^()]|\([^()]*\))*\)`,
	)
}

var (
	// Explicit static linkage is flipped in place.
	staticLibraryPattern = regexp.MustCompile(
		`(\.library\(\s*name:\s*"[^"]+"\s*,\s*type:\s*)\.static\b`,
	)
	// A name argument directly followed by targets: has no linkage clause;
	// anchoring on targets: keeps the insertion idempotent because an
	// inserted (or pre-existing) type: clause breaks the adjacency.
	missingTypePattern = regexp.MustCompile(
		`(\.library\(\s*name:\s*"[^"]+"\s*,)(\s*targets:)`,
	)
)

// ForceDynamic rewrites every library product declaration to dynamic
// linkage: explicit .static clauses are replaced in place, and declarations
// without a linkage clause get a dynamic one inserted immediately after the
// product name. Running it twice yields the same text as running it once.
func ForceDynamic(text string) string {
	text = staticLibraryPattern.ReplaceAllString(text, "${1}.dynamic")
	text = missingTypePattern.ReplaceAllString(text, "${1} type: .dynamic,${2}")
	return text
}

// toolsVersionLine trims a full tools version like "5.7.0" down to the
// major.minor spelling used on the manifest's version comment line.
func toolsVersionLine(version string) string {
	if version == "" {
		return "5.5"
	}
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return parts[0]
	}
	return parts[0] + "." + parts[1]
}
