package swiftpm

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/xcpack/xcpack/internal/adapters/logger"
	"github.com/xcpack/xcpack/internal/adapters/shell"
	"github.com/xcpack/xcpack/internal/core/ports"
)

// NodeID is the unique identifier for the analyzer Graft node.
const NodeID graft.ID = "adapter.analyzer"

func init() {
	graft.Register(graft.Node[ports.Analyzer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Analyzer, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewAnalyzer(runner, log), nil
		},
	})
}
