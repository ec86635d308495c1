// Package domain contains the core types of the xcpack pipeline.
package domain

// PackageDescriptor is the immutable result of analyzing a Swift package.
// It is produced once per invocation and never mutated afterwards.
type PackageDescriptor struct {
	Name         string
	ToolsVersion string
	Products     []Product
	Platforms    []PlatformRequirement
	Dependencies []Dependency
	Targets      []string
	Schemes      []string
}

// Linkage describes how a library product is linked.
type Linkage int

const (
	// LinkageUnspecified covers automatic library products.
	LinkageUnspecified Linkage = iota
	// LinkageStatic marks a product explicitly declared static.
	LinkageStatic
	// LinkageDynamic marks a product explicitly declared dynamic.
	LinkageDynamic
)

// Product is one library product declared by the package manifest.
type Product struct {
	Name    string
	Targets []string
	Linkage Linkage
}

// RequirementKind tags the shape of a dependency version requirement.
type RequirementKind int

const (
	// RequirementNone means the dependency carries no version requirement,
	// or the requirement shape was not recognized.
	RequirementNone RequirementKind = iota
	// RequirementRange is a half-open [Lower, Upper) version range.
	RequirementRange
	// RequirementExact pins a single version.
	RequirementExact
	// RequirementBranch tracks a branch head.
	RequirementBranch
	// RequirementRevision pins a commit.
	RequirementRevision
)

// VersionRequirement is the tagged union of dependency requirement shapes.
// Only the fields relevant to Kind are populated.
type VersionRequirement struct {
	Kind  RequirementKind
	Lower string
	Upper string
	Value string
}

// Dependency is one external package the manifest depends on.
// Whether a prebuilt artifact is available for it is a runtime predicate
// over the staging path, not a stored field.
type Dependency struct {
	Identity    string
	URL         string
	Requirement VersionRequirement
}

// BuildTarget pairs a scheme name to build with the product that owns it.
// The product name decides the output bundle name.
type BuildTarget struct {
	Name    string
	Product string
}

// DeriveBuildTargets walks the products in declaration order and emits one
// BuildTarget per constituent target that is present in the available
// scheme set. Targets are deduplicated by name and attributed to the first
// product that named them. Static library products are skipped: they cannot
// be distributed as dynamic framework bundles.
func DeriveBuildTargets(products []Product, schemes []string) []BuildTarget {
	available := make(map[string]bool, len(schemes))
	for _, s := range schemes {
		available[s] = true
	}

	seen := make(map[string]bool)
	var out []BuildTarget
	for _, p := range products {
		if p.Linkage == LinkageStatic {
			continue
		}
		for _, t := range p.Targets {
			if seen[t] || !available[t] {
				continue
			}
			seen[t] = true
			out = append(out, BuildTarget{Name: t, Product: p.Name})
		}
	}
	return out
}
