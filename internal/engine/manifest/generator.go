package manifest

import (
	"fmt"
	"strings"

	"github.com/xcpack/xcpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// ReleaseInfo selects remote-reference output: binary targets point at
// <URLBase>/<Tag>/<bundle>.zip with a matching checksum.
type ReleaseInfo struct {
	URLBase string
	Tag     string
}

// GenerateOptions configures output-manifest generation.
type GenerateOptions struct {
	// Release switches to remote URL+checksum references when non-nil.
	Release *ReleaseInfo
	// Artifacts are the zipped bundles produced by the archive stage. Only
	// consulted in remote mode, where every built target must have one.
	Artifacts []domain.ZippedArtifact
}

// Generate emits the output manifest for the built targets. In local mode
// each binary target references the bundle directory next to the manifest;
// in remote mode it references the release URL plus the artifact checksum
// and fails closed when a checksum is missing. Platform requirement clauses
// are re-derived from the descriptor.
func Generate(desc *domain.PackageDescriptor, built []domain.BuiltBundle, opts GenerateOptions) (string, error) {
	checksums := make(map[string]string, len(opts.Artifacts))
	for _, a := range opts.Artifacts {
		checksums[a.Target] = a.Checksum
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// swift-tools-version:%s\n", toolsVersionLine(desc.ToolsVersion))
	b.WriteString("// Generated by xcpack. Do not edit.\n")
	b.WriteString("import PackageDescription\n\n")
	b.WriteString("let package = Package(\n")
	fmt.Fprintf(&b, "    name: %q,\n", desc.Name)

	b.WriteString("    platforms: [\n")
	for _, p := range domain.EffectivePlatforms(desc.Platforms) {
		fmt.Fprintf(&b, "        .%s(.%s),\n", p.Kind.SwiftName(), domain.VersionIdentifier(p.Version))
	}
	b.WriteString("    ],\n")

	b.WriteString("    products: [\n")
	for _, bundle := range built {
		fmt.Fprintf(&b, "        .library(name: %q, targets: [%q]),\n", bundle.Target, bundle.Target)
	}
	b.WriteString("    ],\n")

	b.WriteString("    targets: [\n")
	for _, bundle := range built {
		if opts.Release != nil {
			sum, ok := checksums[bundle.Target]
			if !ok {
				return "", zerr.With(domain.ErrMissingChecksum, "target", bundle.Target)
			}
			url := fmt.Sprintf("%s/%s/%s.zip",
				strings.TrimRight(opts.Release.URLBase, "/"), opts.Release.Tag, bundle.Bundle)
			b.WriteString("        .binaryTarget(\n")
			fmt.Fprintf(&b, "            name: %q,\n", bundle.Target)
			fmt.Fprintf(&b, "            url: %q,\n", url)
			fmt.Fprintf(&b, "            checksum: %q\n", sum)
			b.WriteString("        ),\n")
			continue
		}
		b.WriteString("        .binaryTarget(\n")
		fmt.Fprintf(&b, "            name: %q,\n", bundle.Target)
		fmt.Fprintf(&b, "            path: %q\n", bundle.Bundle)
		b.WriteString("        ),\n")
	}
	b.WriteString("    ]\n")
	b.WriteString(")\n")

	return b.String(), nil
}
