// Package config provides the configuration loader for xcpack.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xcpack/xcpack/internal/core/domain"
	"github.com/xcpack/xcpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up at the package root.
const FileName = "xcpack.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads xcpack.yaml from dir. A missing file yields empty settings. An
// unknown field, platform, or configuration name is an error: a misspelled
// key silently changing build output is worse than failing early.
func (l *Loader) Load(dir string) (*domain.Settings, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // path rooted at the requested package dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.Settings{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config"), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config"), "path", path)
	}

	return file.toSettings()
}

func (f File) toSettings() (*domain.Settings, error) {
	s := &domain.Settings{
		OutputDir:   f.Output,
		StagingRoot: f.Staging,
		Parallelism: f.Parallelism,
		Zip:         f.Zip,
		URLBase:     f.URLBase,
		Tag:         f.Tag,
	}

	if f.Configuration != "" {
		cfg, ok := domain.ParseConfiguration(f.Configuration)
		if !ok {
			return nil, zerr.With(domain.ErrInvalidConfiguration, "configuration", f.Configuration)
		}
		s.Configuration = cfg
	}

	for _, name := range f.Platforms {
		kind, ok := domain.ParsePlatformKind(name)
		if !ok {
			return nil, zerr.With(domain.ErrInvalidConfiguration, "platform", name)
		}
		s.Platforms = append(s.Platforms, kind)
	}

	return s, nil
}
