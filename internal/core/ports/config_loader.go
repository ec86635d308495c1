package ports

import "github.com/xcpack/xcpack/internal/core/domain"

// ConfigLoader reads the optional xcpack.yaml file for a package checkout.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the settings declared in dir's config file. A missing
	// file yields empty settings, not an error.
	Load(dir string) (*domain.Settings, error)
}
