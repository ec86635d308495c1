// Package builder orchestrates the multi-platform build of a Swift package:
// it brackets the whole batch of toolchain invocations between a single
// manifest rewrite and a single manifest restore, builds every slice of
// every requested target, and assembles per-target bundles.
package builder

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/xcpack/xcpack/internal/core/domain"
	"github.com/xcpack/xcpack/internal/core/ports"
	"github.com/xcpack/xcpack/internal/engine/manifest"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Request describes one build run.
type Request struct {
	PackageRoot   string
	PackageName   string
	Targets       []domain.BuildTarget
	Platforms     []domain.PlatformKind
	Dependencies  []domain.Dependency
	Configuration domain.Configuration
	// StagingRoot is where prebuilt dependency checkouts are expected.
	StagingRoot string
	// OutputDir receives one <product>.xcframework bundle per built target.
	OutputDir string
	// Parallelism bounds concurrent target builds. Slices within one target
	// run sequentially; their archive paths are disjoint regardless.
	Parallelism int
}

// Result reports the batch outcome. Bundles holds one entry per target that
// produced a bundle; targets that failed are present in Failures instead,
// never in Bundles with an empty value.
type Result struct {
	Bundles  map[string]string
	Failures map[string]error
}

// Built returns the bundle list in target order of the request.
func (r *Result) Built(targets []domain.BuildTarget) []domain.BuiltBundle {
	out := make([]domain.BuiltBundle, 0, len(r.Bundles))
	for _, t := range targets {
		if path, ok := r.Bundles[t.Name]; ok {
			out = append(out, domain.BuiltBundle{Target: t.Name, Bundle: filepath.Base(path)})
		}
	}
	return out
}

// Orchestrator owns the transactional manifest lifecycle around a build
// batch.
type Orchestrator struct {
	toolchain ports.Toolchain
	workspace ports.Workspace
	logger    ports.Logger
	tracer    ports.Tracer
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	toolchain ports.Toolchain,
	workspace ports.Workspace,
	logger ports.Logger,
	tracer ports.Tracer,
) *Orchestrator {
	return &Orchestrator{
		toolchain: toolchain,
		workspace: workspace,
		logger:    logger,
		tracer:    tracer,
	}
}

// BuildAll runs the whole batch. The original manifest bytes are written
// back exactly once on every exit path (success, per-target failure, fatal
// error, cancellation), after all subprocess work has finished. A
// failed restore is fatal and overrides any other pending error: the
// manifest is shared state for every future run.
func (o *Orchestrator) BuildAll(ctx context.Context, req Request) (res *Result, err error) {
	original, err := o.workspace.ReadManifest(req.PackageRoot)
	if err != nil {
		return nil, err
	}

	rewritten := manifest.ForceDynamic(manifest.Rewrite(string(original), o.substitutions(req)))
	if rewritten != string(original) {
		if werr := o.workspace.WriteManifest(req.PackageRoot, []byte(rewritten)); werr != nil {
			return nil, werr
		}
	}

	// Unconditional exit action, registered before any subprocess can start.
	defer func() {
		if rerr := o.workspace.WriteManifest(req.PackageRoot, original); rerr != nil {
			err = errors.Join(domain.ErrManifestRestore, rerr)
			res = nil
		}
	}()

	runDir, err := o.workspace.RunDir(req.PackageRoot, req.PackageName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := o.workspace.Cleanup(runDir); cerr != nil {
			o.logger.Warn(cerr.Error())
		}
	}()

	result := &Result{
		Bundles:  make(map[string]string),
		Failures: make(map[string]error),
	}

	parallelism := req.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(parallelism)

	for _, target := range req.Targets {
		g.Go(func() error {
			bundle, berr := o.buildTarget(ctx, req, runDir, target)
			mu.Lock()
			defer mu.Unlock()
			if berr != nil {
				// Target-scoped failures never block independent targets.
				o.logger.Error(berr)
				result.Failures[target.Name] = berr
				return nil
			}
			result.Bundles[target.Name] = bundle
			return nil
		})
	}
	_ = g.Wait()

	if cerr := ctx.Err(); cerr != nil {
		return nil, cerr
	}
	return result, nil
}

// substitutions re-evaluates prebuilt availability per dependency at rewrite
// time.
func (o *Orchestrator) substitutions(req Request) []manifest.Substitution {
	var subs []manifest.Substitution
	for _, dep := range req.Dependencies {
		path, ok := o.workspace.PrebuiltPath(req.StagingRoot, dep.Identity)
		if !ok {
			continue
		}
		subs = append(subs, manifest.Substitution{Identity: dep.Identity, LocalPath: path})
	}
	return subs
}

// buildTarget archives every slice of every requested platform for one
// target and merges the results into a bundle named after the owning
// product.
func (o *Orchestrator) buildTarget(ctx context.Context, req Request, runDir string, target domain.BuildTarget) (string, error) {
	ctx, span := o.tracer.Start(ctx, "build "+target.Name)
	defer span.End()
	span.SetAttribute("target", target.Name)
	span.SetAttribute("product", target.Product)

	var frameworks []string
	for _, kind := range req.Platforms {
		for _, slice := range domain.SlicesFor(kind) {
			framework, err := o.buildSlice(ctx, req, runDir, target, slice)
			if err != nil {
				span.RecordError(err)
				return "", err
			}
			frameworks = append(frameworks, framework)
		}
	}

	if len(frameworks) == 0 {
		return "", zerr.With(domain.ErrArtifactNotFound, "target", target.Name)
	}

	output := filepath.Join(req.OutputDir, target.Product+domain.BundleExt)
	o.logger.Info(fmt.Sprintf("assembling %s from %d slices", filepath.Base(output), len(frameworks)))
	if err := o.toolchain.CreateXCFramework(ctx, frameworks, output); err != nil {
		span.RecordError(err)
		return "", err
	}
	return output, nil
}

func (o *Orchestrator) buildSlice(ctx context.Context, req Request, runDir string, target domain.BuildTarget, slice domain.BuildSlice) (string, error) {
	ctx, span := o.tracer.Start(ctx, fmt.Sprintf("archive %s (%s)", target.Name, slice.Name))
	defer span.End()

	// Disjoint per-slice subdirectory: concurrent invocations must never
	// clobber each other's outputs.
	archivePath := filepath.Join(runDir, target.Name, slice.SDK, target.Name)

	framework, err := o.toolchain.Archive(ctx, ports.ArchiveSpec{
		PackageRoot:   req.PackageRoot,
		Scheme:        target.Name,
		Configuration: req.Configuration,
		Slice:         slice,
		ArchivePath:   archivePath,
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return framework, nil
}
