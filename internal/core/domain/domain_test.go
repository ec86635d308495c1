package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xcpack/xcpack/internal/core/domain"
)

func TestDeriveBuildTargets(t *testing.T) {
	tests := []struct {
		name     string
		products []domain.Product
		schemes  []string
		want     []domain.BuildTarget
	}{
		{
			name: "Single Product Single Target",
			products: []domain.Product{
				{Name: "Lib", Targets: []string{"Lib"}},
			},
			schemes: []string{"Lib"},
			want: []domain.BuildTarget{
				{Name: "Lib", Product: "Lib"},
			},
		},
		{
			name: "Shared Target Attributed To First Product",
			products: []domain.Product{
				{Name: "P1", Targets: []string{"A", "B"}},
				{Name: "P2", Targets: []string{"B", "C"}},
			},
			schemes: []string{"A", "B", "C"},
			want: []domain.BuildTarget{
				{Name: "A", Product: "P1"},
				{Name: "B", Product: "P1"},
				{Name: "C", Product: "P2"},
			},
		},
		{
			name: "Static Product Skipped",
			products: []domain.Product{
				{Name: "StaticLib", Targets: []string{"A"}, Linkage: domain.LinkageStatic},
				{Name: "DynLib", Targets: []string{"B"}, Linkage: domain.LinkageDynamic},
			},
			schemes: []string{"A", "B"},
			want: []domain.BuildTarget{
				{Name: "B", Product: "DynLib"},
			},
		},
		{
			name: "Target Without Scheme Dropped",
			products: []domain.Product{
				{Name: "Lib", Targets: []string{"Lib", "LibInternal"}},
			},
			schemes: []string{"Lib"},
			want: []domain.BuildTarget{
				{Name: "Lib", Product: "Lib"},
			},
		},
		{
			name:     "No Products",
			products: nil,
			schemes:  []string{"Lib"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DeriveBuildTargets(tt.products, tt.schemes)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionIdentifier(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"12.0", "v12"},
		{"13.4", "v13_4"},
		{"10.15", "v10_15"},
		{"26.0", "v26"},
		{"13.4.1", "v13_4"},
		{"14", "v14"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.VersionIdentifier(tt.version))
		})
	}
}

func TestParsePlatformKind(t *testing.T) {
	kind, ok := domain.ParsePlatformKind("iOS")
	require.True(t, ok)
	assert.Equal(t, domain.PlatformIOS, kind)

	kind, ok = domain.ParsePlatformKind("MACOS")
	require.True(t, ok)
	assert.Equal(t, domain.PlatformMacOS, kind)

	_, ok = domain.ParsePlatformKind("linux")
	assert.False(t, ok)
}

func TestSlicesFor(t *testing.T) {
	for _, kind := range domain.AllPlatformKinds {
		slices := domain.SlicesFor(kind)
		if kind == domain.PlatformMacOS {
			require.Len(t, slices, 1, "desktop platform has a single slice")
			continue
		}
		require.Len(t, slices, 2, "%s builds device and simulator variants", kind)
		assert.NotEqual(t, slices[0].SDK, slices[1].SDK)
	}

	assert.Nil(t, domain.SlicesFor(domain.PlatformKind("freebsd")))
}

func TestEffectivePlatforms(t *testing.T) {
	declared := []domain.PlatformRequirement{{Kind: domain.PlatformIOS, Version: "15.0"}}
	assert.Equal(t, declared, domain.EffectivePlatforms(declared))
	assert.Equal(t, domain.DefaultPlatforms, domain.EffectivePlatforms(nil))
}

func TestSettingsFinalize(t *testing.T) {
	s := &domain.Settings{}
	s.Finalize()

	assert.Equal(t, domain.ConfigurationRelease, s.Configuration)
	assert.Equal(t, "xcpack-out", s.OutputDir)
	assert.Equal(t, ".xcpack", s.StagingRoot)
	assert.Equal(t, 1, s.Parallelism)
}

func TestSettingsReleaseMode(t *testing.T) {
	s := &domain.Settings{Zip: true, URLBase: "https://dl.example.com/frameworks", Tag: "1.2.0"}
	assert.True(t, s.ReleaseMode())

	s.Tag = ""
	assert.False(t, s.ReleaseMode())

	s = &domain.Settings{URLBase: "https://dl.example.com", Tag: "1.0.0"}
	assert.False(t, s.ReleaseMode(), "release mode requires archiving")
}

func TestParseConfiguration(t *testing.T) {
	cfg, ok := domain.ParseConfiguration("Release")
	require.True(t, ok)
	assert.Equal(t, domain.ConfigurationRelease, cfg)

	cfg, ok = domain.ParseConfiguration("debug")
	require.True(t, ok)
	assert.Equal(t, domain.ConfigurationDebug, cfg)

	_, ok = domain.ParseConfiguration("profile")
	assert.False(t, ok)
}
