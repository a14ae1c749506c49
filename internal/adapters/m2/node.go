package m2

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarlock/internal/adapters/logger"
	"go.trai.ch/jarlock/internal/core/ports"
)

// NodeID is the unique identifier for the local repository Graft node.
const NodeID graft.ID = "adapter.artifact_repository"

func init() {
	graft.Register(graft.Node[ports.ArtifactRepositoryFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactRepositoryFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
