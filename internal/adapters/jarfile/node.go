package jarfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarlock/internal/adapters/logger"
	"go.trai.ch/jarlock/internal/core/ports"
)

// NodeID is the unique identifier for the Jarfile loader Graft node.
const NodeID graft.ID = "adapter.specification_loader"

func init() {
	graft.Register(graft.Node[ports.SpecificationLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SpecificationLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
