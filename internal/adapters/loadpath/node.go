package loadpath

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarlock/internal/core/ports"
)

// NodeID is the unique identifier for the classpath registry Graft node.
const NodeID graft.ID = "adapter.classpath_loader"

func init() {
	graft.Register(graft.Node[ports.ClasspathLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ClasspathLoader, error) {
			return NewRegistry(), nil
		},
	})
}
