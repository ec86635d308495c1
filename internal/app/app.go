// Package app implements the application layer for xcpack.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xcpack/xcpack/internal/core/domain"
	"github.com/xcpack/xcpack/internal/core/ports"
	"github.com/xcpack/xcpack/internal/engine/builder"
	"github.com/xcpack/xcpack/internal/engine/manifest"
	"github.com/xcpack/xcpack/internal/ui/report"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	analyzer     ports.Analyzer
	orchestrator *builder.Orchestrator
	archiver     ports.Archiver
	logger       ports.Logger
	tracer       ports.Tracer
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	analyzer ports.Analyzer,
	orchestrator *builder.Orchestrator,
	archiver ports.Archiver,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		analyzer:     analyzer,
		orchestrator: orchestrator,
		archiver:     archiver,
		logger:       log,
		tracer:       tracer,
		out:          os.Stdout,
	}
}

// WithOutput redirects the summary report. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// RunOptions are the command-line overrides for one run. Zero values defer
// to the config file and built-in defaults.
type RunOptions struct {
	Platforms     []string
	Configuration string
	Output        string
	Staging       string
	Parallelism   int
	Zip           bool
	URLBase       string
	Tag           string
	// Targets restricts the build to the named schemes when non-empty.
	Targets []string
}

// Run executes the whole pipeline for the package at root: analyze, derive
// build targets, build and bundle every slice, optionally archive, and
// generate the output manifest.
func (a *App) Run(ctx context.Context, root string, opts RunOptions) error {
	defer func() {
		_ = a.tracer.Shutdown(context.WithoutCancel(ctx))
	}()

	settings, err := a.resolveSettings(root, opts)
	if err != nil {
		return err
	}

	ctx, span := a.tracer.Start(ctx, "analyze")
	desc, err := a.analyzer.Describe(ctx, root)
	span.End()
	if err != nil {
		return err
	}

	targets := domain.DeriveBuildTargets(desc.Products, desc.Schemes)
	targets = filterTargets(targets, opts.Targets)
	if len(targets) == 0 {
		return zerr.With(domain.ErrNoBuildTargets, "package", desc.Name)
	}

	platforms := settings.Platforms
	if len(platforms) == 0 {
		platforms = platformKinds(domain.EffectivePlatforms(desc.Platforms))
	}

	outputDir := filepath.Join(settings.OutputDir, desc.Name)
	if err := os.MkdirAll(outputDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "dir", outputDir)
	}

	result, err := a.orchestrator.BuildAll(ctx, builder.Request{
		PackageRoot:   root,
		PackageName:   desc.Name,
		Targets:       targets,
		Platforms:     platforms,
		Dependencies:  desc.Dependencies,
		Configuration: settings.Configuration,
		StagingRoot:   settings.StagingRoot,
		OutputDir:     outputDir,
		Parallelism:   settings.Parallelism,
	})
	if err != nil {
		return err
	}
	if len(result.Bundles) == 0 {
		return zerr.With(domain.ErrNoTargetsBuilt, "package", desc.Name)
	}

	built := result.Built(targets)

	var artifacts []domain.ZippedArtifact
	if settings.Zip {
		artifacts, err = a.zipBundles(ctx, result, built)
		if err != nil {
			return err
		}
	}

	genOpts := manifest.GenerateOptions{Artifacts: artifacts}
	if settings.ReleaseMode() {
		genOpts.Release = &manifest.ReleaseInfo{URLBase: settings.URLBase, Tag: settings.Tag}
	}
	text, err := manifest.Generate(desc, built, genOpts)
	if err != nil {
		return err
	}

	manifestOut := filepath.Join(outputDir, "Package.swift")
	if err := os.WriteFile(manifestOut, []byte(text), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write output manifest"), "path", manifestOut)
	}
	if err := a.writeReadme(outputDir, desc.Name, built, artifacts); err != nil {
		return err
	}

	report.NewRenderer(a.out).Render(report.Summary{
		Built:       result.Bundles,
		Failed:      result.Failures,
		ManifestOut: manifestOut,
	})

	// A partial failure is non-fatal in local mode; a release must be
	// complete to be publishable.
	if settings.ReleaseMode() && len(result.Failures) > 0 {
		var ferr error = domain.ErrPartialFailure
		for name := range result.Failures {
			ferr = zerr.With(ferr, "target", name)
		}
		return ferr
	}
	return nil
}

func (a *App) resolveSettings(root string, opts RunOptions) (*domain.Settings, error) {
	settings, err := a.configLoader.Load(root)
	if err != nil {
		return nil, err
	}

	if len(opts.Platforms) > 0 {
		kinds := make([]domain.PlatformKind, 0, len(opts.Platforms))
		for _, name := range opts.Platforms {
			kind, ok := domain.ParsePlatformKind(name)
			if !ok {
				return nil, zerr.With(domain.ErrInvalidConfiguration, "platform", name)
			}
			kinds = append(kinds, kind)
		}
		settings.Platforms = kinds
	}

	if opts.Configuration != "" {
		cfg, ok := domain.ParseConfiguration(opts.Configuration)
		if !ok {
			return nil, zerr.With(domain.ErrInvalidConfiguration, "configuration", opts.Configuration)
		}
		settings.Configuration = cfg
	}
	if opts.Output != "" {
		settings.OutputDir = opts.Output
	}
	if opts.Staging != "" {
		settings.StagingRoot = opts.Staging
	}
	if opts.Parallelism > 0 {
		settings.Parallelism = opts.Parallelism
	}
	if opts.Zip {
		settings.Zip = true
	}
	if opts.URLBase != "" {
		settings.URLBase = opts.URLBase
	}
	if opts.Tag != "" {
		settings.Tag = opts.Tag
	}

	settings.Finalize()
	return settings, nil
}

func (a *App) zipBundles(ctx context.Context, result *builder.Result, built []domain.BuiltBundle) ([]domain.ZippedArtifact, error) {
	_, span := a.tracer.Start(ctx, "archive bundles")
	defer span.End()

	artifacts := make([]domain.ZippedArtifact, 0, len(built))
	for _, bundle := range built {
		zipPath, err := a.archiver.Zip(result.Bundles[bundle.Target])
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		sum, err := a.archiver.Checksum(zipPath)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		artifacts = append(artifacts, domain.ZippedArtifact{
			Target:   bundle.Target,
			Path:     zipPath,
			Checksum: sum,
		})
	}
	return artifacts, nil
}

func (a *App) writeReadme(outputDir, name string, built []domain.BuiltBundle, artifacts []domain.ZippedArtifact) error {
	checksums := make(map[string]string, len(artifacts))
	for _, art := range artifacts {
		checksums[art.Target] = art.Checksum
	}

	var sb []byte
	sb = fmt.Appendf(sb, "# %s\n\nPrebuilt binary bundles generated by xcpack.\n\n", name)
	for _, bundle := range built {
		if sum, ok := checksums[bundle.Target]; ok {
			sb = fmt.Appendf(sb, "- `%s` (checksum `%s`)\n", bundle.Bundle, sum)
			continue
		}
		sb = fmt.Appendf(sb, "- `%s`\n", bundle.Bundle)
	}

	path := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(path, sb, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write README"), "path", path)
	}
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Output  bool
	Staging bool
}

// Clean removes generated output and staging directories for the package at
// root.
func (a *App) Clean(_ context.Context, root string, options CleanOptions) error {
	settings, err := a.configLoader.Load(root)
	if err != nil {
		return err
	}
	settings.Finalize()

	var errs error
	remove := func(path, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if rerr := os.RemoveAll(path); rerr != nil {
			errs = errors.Join(errs, zerr.Wrap(rerr, fmt.Sprintf("failed to remove %s", name)))
		}
	}

	if options.Output {
		remove(filepath.Join(root, settings.OutputDir), "output directory")
	}
	if options.Staging {
		remove(filepath.Join(root, ".xcpack"), "staging directory")
	}
	return errs
}

func filterTargets(targets []domain.BuildTarget, requested []string) []domain.BuildTarget {
	if len(requested) == 0 {
		return targets
	}
	want := make(map[string]bool, len(requested))
	for _, r := range requested {
		want[r] = true
	}
	var out []domain.BuildTarget
	for _, t := range targets {
		if want[t.Name] {
			out = append(out, t)
		}
	}
	return out
}

func platformKinds(reqs []domain.PlatformRequirement) []domain.PlatformKind {
	seen := make(map[domain.PlatformKind]bool, len(reqs))
	var out []domain.PlatformKind
	for _, r := range reqs {
		if seen[r.Kind] {
			continue
		}
		seen[r.Kind] = true
		out = append(out, r.Kind)
	}
	return out
}
