package swiftpm

import (
	"encoding/json"

	"github.com/xcpack/xcpack/internal/core/domain"
)

// dumpPackage mirrors the JSON emitted by `swift package dump-package`.
// Only the fields the pipeline consumes are declared; everything else is
// ignored by the decoder.
type dumpPackage struct {
	Name         string           `json:"name"`
	ToolsVersion dumpToolsVersion `json:"toolsVersion"`
	Products     []dumpProduct    `json:"products"`
	Platforms    []dumpPlatform   `json:"platforms"`
	Dependencies []dumpDependency `json:"dependencies"`
	Targets      []dumpTarget     `json:"targets"`
}

type dumpToolsVersion struct {
	Version string `json:"_version"`
}

type dumpProduct struct {
	Name    string          `json:"name"`
	Targets []string        `json:"targets"`
	Type    dumpProductType `json:"type"`
}

// dumpProductType is {"library": ["automatic"|"static"|"dynamic"]} for
// library products and {"executable": null} (or another key) otherwise.
type dumpProductType struct {
	Library []string `json:"library"`
}

func (t dumpProductType) isLibrary() bool {
	return t.Library != nil
}

func (t dumpProductType) linkage() domain.Linkage {
	if len(t.Library) == 0 {
		return domain.LinkageUnspecified
	}
	switch t.Library[0] {
	case "static":
		return domain.LinkageStatic
	case "dynamic":
		return domain.LinkageDynamic
	default:
		return domain.LinkageUnspecified
	}
}

type dumpPlatform struct {
	PlatformName string `json:"platformName"`
	Version      string `json:"version"`
}

type dumpTarget struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// dumpDependency is a one-key union: sourceControl for remote dependencies,
// fileSystem for local path dependencies.
type dumpDependency struct {
	SourceControl []dumpSourceControl `json:"sourceControl"`
	FileSystem    []dumpFileSystem    `json:"fileSystem"`
}

type dumpSourceControl struct {
	Identity    string          `json:"identity"`
	Location    dumpLocation    `json:"location"`
	Requirement dumpRequirement `json:"requirement"`
}

type dumpFileSystem struct {
	Identity string `json:"identity"`
	Path     string `json:"path"`
}

type dumpLocation struct {
	Remote []dumpRemote `json:"remote"`
}

// dumpRemote decodes both the modern {"urlString": "..."} object shape and
// the older bare-string shape.
type dumpRemote struct {
	URL string
}

func (r *dumpRemote) UnmarshalJSON(data []byte) error {
	var obj struct {
		URLString string `json:"urlString"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.URLString != "" {
		r.URL = obj.URLString
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.URL = s
		return nil
	}
	// Unknown shape: leave empty rather than failing the whole report.
	return nil
}

// dumpRequirement is the tagged union of version requirement shapes. An
// unknown or missing shape decodes to "no requirement".
type dumpRequirement struct {
	Range    []dumpRange `json:"range"`
	Exact    []string    `json:"exact"`
	Branch   []string    `json:"branch"`
	Revision []string    `json:"revision"`
}

type dumpRange struct {
	LowerBound string `json:"lowerBound"`
	UpperBound string `json:"upperBound"`
}

func (r dumpRequirement) toDomain() domain.VersionRequirement {
	switch {
	case len(r.Range) > 0:
		return domain.VersionRequirement{
			Kind:  domain.RequirementRange,
			Lower: r.Range[0].LowerBound,
			Upper: r.Range[0].UpperBound,
		}
	case len(r.Exact) > 0:
		return domain.VersionRequirement{Kind: domain.RequirementExact, Value: r.Exact[0]}
	case len(r.Branch) > 0:
		return domain.VersionRequirement{Kind: domain.RequirementBranch, Value: r.Branch[0]}
	case len(r.Revision) > 0:
		return domain.VersionRequirement{Kind: domain.RequirementRevision, Value: r.Revision[0]}
	default:
		return domain.VersionRequirement{Kind: domain.RequirementNone}
	}
}

// listOutput mirrors the JSON emitted by `xcodebuild -list -json`. Packages
// opened directly report under workspace; project checkouts report under
// project.
type listOutput struct {
	Workspace *listContainer `json:"workspace"`
	Project   *listContainer `json:"project"`
}

type listContainer struct {
	Name    string   `json:"name"`
	Schemes []string `json:"schemes"`
}

func (l listOutput) schemes() []string {
	if l.Workspace != nil && len(l.Workspace.Schemes) > 0 {
		return l.Workspace.Schemes
	}
	if l.Project != nil {
		return l.Project.Schemes
	}
	return nil
}
