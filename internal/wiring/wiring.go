// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/xcpack/xcpack/internal/adapters/archive"
	_ "github.com/xcpack/xcpack/internal/adapters/config"
	_ "github.com/xcpack/xcpack/internal/adapters/logger"
	_ "github.com/xcpack/xcpack/internal/adapters/shell"
	_ "github.com/xcpack/xcpack/internal/adapters/staging"
	_ "github.com/xcpack/xcpack/internal/adapters/swiftpm"
	_ "github.com/xcpack/xcpack/internal/adapters/telemetry"
	_ "github.com/xcpack/xcpack/internal/adapters/xcodebuild"
	// Register app and engine nodes.
	_ "github.com/xcpack/xcpack/internal/app"
	_ "github.com/xcpack/xcpack/internal/engine/builder"
)
