package swiftpm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xcpack/xcpack/internal/adapters/swiftpm"
	"github.com/xcpack/xcpack/internal/core/domain"
	"github.com/xcpack/xcpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const dumpJSON = `{
  "name": "Sample",
  "toolsVersion": {"_version": "5.9.0"},
  "products": [
    {"name": "Sample", "targets": ["Sample"], "type": {"library": ["automatic"]}},
    {"name": "SampleStatic", "targets": ["Sample"], "type": {"library": ["static"]}},
    {"name": "sample-cli", "targets": ["CLI"], "type": {"executable": null}}
  ],
  "platforms": [
    {"platformName": "ios", "version": "14.0"},
    {"platformName": "linux", "version": "1.0"}
  ],
  "dependencies": [
    {
      "sourceControl": [{
        "identity": "swift-log",
        "location": {"remote": [{"urlString": "https://github.com/apple/swift-log.git"}]},
        "requirement": {"range": [{"lowerBound": "1.5.0", "upperBound": "2.0.0"}]}
      }]
    },
    {
      "sourceControl": [{
        "identity": "swift-crypto",
        "location": {"remote": ["https://github.com/apple/swift-crypto.git"]},
        "requirement": {"exact": ["3.1.0"]}
      }]
    },
    {
      "fileSystem": [{"identity": "local-helper", "path": "../helper"}]
    }
  ],
  "targets": [
    {"name": "Sample", "type": "regular"},
    {"name": "SampleTests", "type": "test"}
  ]
}`

const listJSON = `{
  "workspace": {
    "name": "Sample",
    "schemes": ["Sample", "sample-cli"]
  }
}`

func expectDump(runner *mocks.MockRunner, stdout string, err error) {
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command) (domain.CommandResult, error) {
			if cmd.Name == "swift" {
				return domain.CommandResult{Stdout: stdout}, err
			}
			return domain.CommandResult{Stdout: listJSON}, nil
		}).
		AnyTimes()
}

func TestDescribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	expectDump(runner, dumpJSON, nil)

	a := swiftpm.NewAnalyzer(runner, logger)
	desc, err := a.Describe(context.Background(), "/pkg")
	require.NoError(t, err)

	assert.Equal(t, "Sample", desc.Name)
	assert.Equal(t, "5.9.0", desc.ToolsVersion)
	assert.Equal(t, []string{"Sample", "sample-cli"}, desc.Schemes)

	// Executable products are dropped; library linkage is decoded.
	require.Len(t, desc.Products, 2)
	assert.Equal(t, domain.LinkageUnspecified, desc.Products[0].Linkage)
	assert.Equal(t, domain.LinkageStatic, desc.Products[1].Linkage)

	// Unknown platform names are skipped, not fatal.
	require.Len(t, desc.Platforms, 1)
	assert.Equal(t, domain.PlatformIOS, desc.Platforms[0].Kind)
	assert.Equal(t, "14.0", desc.Platforms[0].Version)

	require.Len(t, desc.Dependencies, 3)
	assert.Equal(t, domain.Dependency{
		Identity: "swift-log",
		URL:      "https://github.com/apple/swift-log.git",
		Requirement: domain.VersionRequirement{
			Kind:  domain.RequirementRange,
			Lower: "1.5.0",
			Upper: "2.0.0",
		},
	}, desc.Dependencies[0])
	// Bare-string remote location shape.
	assert.Equal(t, "https://github.com/apple/swift-crypto.git", desc.Dependencies[1].URL)
	assert.Equal(t, domain.RequirementExact, desc.Dependencies[1].Requirement.Kind)
	assert.Equal(t, "3.1.0", desc.Dependencies[1].Requirement.Value)
	// Local path dependency.
	assert.Equal(t, "local-helper", desc.Dependencies[2].Identity)
	assert.Equal(t, domain.RequirementNone, desc.Dependencies[2].Requirement.Kind)

	assert.Equal(t, []string{"Sample", "SampleTests"}, desc.Targets)
}

func TestDescribe_UnknownRequirementShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	expectDump(runner, `{
	  "name": "Sample",
	  "toolsVersion": {"_version": "5.9.0"},
	  "dependencies": [
	    {
	      "sourceControl": [{
	        "identity": "dep",
	        "location": {"remote": [{"somethingNew": true}]},
	        "requirement": {"registry": ["1.0.0"]}
	      }]
	    }
	  ]
	}`, nil)

	a := swiftpm.NewAnalyzer(runner, logger)
	desc, err := a.Describe(context.Background(), "/pkg")
	require.NoError(t, err)

	require.Len(t, desc.Dependencies, 1)
	assert.Equal(t, domain.RequirementNone, desc.Dependencies[0].Requirement.Kind)
	assert.Empty(t, desc.Dependencies[0].URL, "unknown location shape decodes empty")
}

func TestDescribe_DumpFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	expectDump(runner, "", errors.New("exit 1"))

	a := swiftpm.NewAnalyzer(runner, logger)
	_, err := a.Describe(context.Background(), "/pkg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrAnalysisFailed.Error())
}

func TestDescribe_MalformedDump(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	expectDump(runner, "not json", nil)

	a := swiftpm.NewAnalyzer(runner, logger)
	_, err := a.Describe(context.Background(), "/pkg")
	require.Error(t, err)
}

func TestDescribe_NoSchemes(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command) (domain.CommandResult, error) {
			if cmd.Name == "swift" {
				return domain.CommandResult{Stdout: `{"name": "Sample", "toolsVersion": {"_version": "5.9.0"}}`}, nil
			}
			return domain.CommandResult{Stdout: `{"project": {"name": "Sample", "schemes": []}}`}, nil
		}).
		AnyTimes()

	a := swiftpm.NewAnalyzer(runner, logger)
	_, err := a.Describe(context.Background(), "/pkg")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSchemes)
}
