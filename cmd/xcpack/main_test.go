package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xcpack/xcpack/internal/adapters/telemetry"
	"github.com/xcpack/xcpack/internal/app"
	"github.com/xcpack/xcpack/internal/core/ports/mocks"
	"github.com/xcpack/xcpack/internal/engine/builder"
	"go.uber.org/mock/gomock"
)

func testComponents(t *testing.T) *app.Components {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	analyzer := mocks.NewMockAnalyzer(ctrl)
	toolchain := mocks.NewMockToolchain(ctrl)
	workspace := mocks.NewMockWorkspace(ctrl)
	archiver := mocks.NewMockArchiver(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	tracer := telemetry.NewNoOpTracer()
	orch := builder.NewOrchestrator(toolchain, workspace, logger, tracer)
	return &app.Components{
		App:    app.New(loader, analyzer, orch, archiver, logger, tracer),
		Logger: logger,
	}
}

func TestRun_Version(t *testing.T) {
	components := testComponents(t)
	code := run(context.Background(), []string{"version"}, &bytes.Buffer{}, func(context.Context) (*app.Components, error) {
		return components, nil
	})
	assert.Equal(t, 0, code)
}

func TestRun_ProviderFailure(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"version"}, &stderr, func(context.Context) (*app.Components, error) {
		return nil, errors.New("wiring failed")
	})
	require.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wiring failed")
}

func TestRun_UnknownCommand(t *testing.T) {
	components := testComponents(t)
	code := run(context.Background(), []string{"explode"}, &bytes.Buffer{}, func(context.Context) (*app.Components, error) {
		return components, nil
	})
	assert.Equal(t, 1, code)
}
