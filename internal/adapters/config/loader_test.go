package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xcpack/xcpack/internal/adapters/config"
	"github.com/xcpack/xcpack/internal/adapters/logger"
	"github.com/xcpack/xcpack/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o644))
	return dir
}

func newLoader() *config.Loader {
	return config.NewLoader(logger.New())
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := newLoader().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &domain.Settings{}, s)
}

func TestLoad_FullFile(t *testing.T) {
	dir := writeConfig(t, `
platforms:
  - ios
  - macos
configuration: debug
output: build/frameworks
staging: .deps
parallelism: 4
zip: true
urlBase: https://dl.example.com/frameworks
tag: 2.0.0
`)

	s, err := newLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []domain.PlatformKind{domain.PlatformIOS, domain.PlatformMacOS}, s.Platforms)
	assert.Equal(t, domain.ConfigurationDebug, s.Configuration)
	assert.Equal(t, "build/frameworks", s.OutputDir)
	assert.Equal(t, ".deps", s.StagingRoot)
	assert.Equal(t, 4, s.Parallelism)
	assert.True(t, s.Zip)
	assert.True(t, s.ReleaseMode())
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := writeConfig(t, "")
	s, err := newLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, &domain.Settings{}, s)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	dir := writeConfig(t, "platfroms: [ios]\n")
	_, err := newLoader().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_InvalidPlatform(t *testing.T) {
	dir := writeConfig(t, "platforms: [android]\n")
	_, err := newLoader().Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestLoad_InvalidConfiguration(t *testing.T) {
	dir := writeConfig(t, "configuration: profile\n")
	_, err := newLoader().Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}
