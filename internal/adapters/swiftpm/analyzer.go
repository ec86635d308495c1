// Package swiftpm implements package introspection against the Swift
// toolchain: manifest dumping via `swift package dump-package` and scheme
// discovery via `xcodebuild -list`.
package swiftpm

import (
	"context"
	"encoding/json"

	"github.com/xcpack/xcpack/internal/core/domain"
	"github.com/xcpack/xcpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Analyzer implements ports.Analyzer on top of a subprocess runner.
type Analyzer struct {
	runner ports.Runner
	logger ports.Logger
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(runner ports.Runner, logger ports.Logger) *Analyzer {
	return &Analyzer{runner: runner, logger: logger}
}

// Describe produces the immutable package descriptor for the checkout at
// dir. Any failure here aborts the run before the manifest is touched.
func (a *Analyzer) Describe(ctx context.Context, dir string) (*domain.PackageDescriptor, error) {
	dump, err := a.dumpPackage(ctx, dir)
	if err != nil {
		return nil, err
	}

	schemes, err := a.listSchemes(ctx, dir)
	if err != nil {
		return nil, err
	}
	if len(schemes) == 0 {
		return nil, zerr.With(domain.ErrNoSchemes, "package", dump.Name)
	}

	desc := &domain.PackageDescriptor{
		Name:         dump.Name,
		ToolsVersion: dump.ToolsVersion.Version,
		Schemes:      schemes,
	}

	for _, p := range dump.Products {
		if !p.Type.isLibrary() {
			continue
		}
		desc.Products = append(desc.Products, domain.Product{
			Name:    p.Name,
			Targets: p.Targets,
			Linkage: p.Type.linkage(),
		})
	}

	for _, p := range dump.Platforms {
		kind, ok := domain.ParsePlatformKind(p.PlatformName)
		if !ok {
			continue
		}
		desc.Platforms = append(desc.Platforms, domain.PlatformRequirement{
			Kind:    kind,
			Version: p.Version,
		})
	}

	for _, d := range dump.Dependencies {
		desc.Dependencies = append(desc.Dependencies, d.toDomainDependencies()...)
	}

	for _, t := range dump.Targets {
		desc.Targets = append(desc.Targets, t.Name)
	}

	return desc, nil
}

func (d dumpDependency) toDomainDependencies() []domain.Dependency {
	var out []domain.Dependency
	for _, sc := range d.SourceControl {
		var url string
		if len(sc.Location.Remote) > 0 {
			url = sc.Location.Remote[0].URL
		}
		out = append(out, domain.Dependency{
			Identity:    sc.Identity,
			URL:         url,
			Requirement: sc.Requirement.toDomain(),
		})
	}
	for _, fs := range d.FileSystem {
		out = append(out, domain.Dependency{
			Identity:    fs.Identity,
			URL:         fs.Path,
			Requirement: domain.VersionRequirement{Kind: domain.RequirementNone},
		})
	}
	return out
}

func (a *Analyzer) dumpPackage(ctx context.Context, dir string) (*dumpPackage, error) {
	result, err := a.runner.Run(ctx, domain.Command{
		Name: "swift",
		Args: []string{"package", "dump-package"},
		Dir:  dir,
	})
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrAnalysisFailed.Error()),
			"output", truncate(result.Stderr, 2048),
		)
	}

	var dump dumpPackage
	if err := json.Unmarshal([]byte(result.Stdout), &dump); err != nil {
		return nil, zerr.Wrap(err, domain.ErrAnalysisFailed.Error())
	}
	if dump.Name == "" {
		return nil, zerr.With(domain.ErrAnalysisFailed, "reason", "package name missing from dump")
	}
	return &dump, nil
}

func (a *Analyzer) listSchemes(ctx context.Context, dir string) ([]string, error) {
	result, err := a.runner.Run(ctx, domain.Command{
		Name: "xcodebuild",
		Args: []string{"-list", "-json"},
		Dir:  dir,
	})
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrAnalysisFailed.Error()),
			"output", truncate(result.Stderr, 2048),
		)
	}

	var list listOutput
	if err := json.Unmarshal([]byte(result.Stdout), &list); err != nil {
		return nil, zerr.Wrap(err, domain.ErrAnalysisFailed.Error())
	}
	return list.schemes(), nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[len(s)-limit:]
}
