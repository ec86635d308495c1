package app

import "github.com/xcpack/xcpack/internal/core/ports"

// Components contains the initialized application components needed by the
// CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
