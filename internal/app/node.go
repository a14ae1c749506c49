package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarlock/internal/adapters/coursier"  //nolint:depguard // Wired in app layer
	"go.trai.ch/jarlock/internal/adapters/jarfile"   //nolint:depguard // Wired in app layer
	"go.trai.ch/jarlock/internal/adapters/loadpath"  //nolint:depguard // Wired in app layer
	"go.trai.ch/jarlock/internal/adapters/lockfile"  //nolint:depguard // Wired in app layer
	"go.trai.ch/jarlock/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jarlock/internal/adapters/m2"        //nolint:depguard // Wired in app layer
	"go.trai.ch/jarlock/internal/adapters/pom"       //nolint:depguard // Wired in app layer
	"go.trai.ch/jarlock/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/jarlock/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/jarlock/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the command line needs from the graph.
type Components struct {
	App      *App
	Logger   ports.Logger
	Executor ports.Executor
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			jarfile.NodeID,
			lockfile.NodeID,
			coursier.NodeID,
			pom.NodeID,
			m2.NodeID,
			loadpath.NodeID,
			shell.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			shell.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	specLoader, err := graft.Dep[ports.SpecificationLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	manifests, err := graft.Dep[ports.ManifestParser](ctx)
	if err != nil {
		return nil, err
	}

	artifacts, err := graft.Dep[ports.ArtifactRepositoryFactory](ctx)
	if err != nil {
		return nil, err
	}

	classpath, err := graft.Dep[ports.ClasspathLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(specLoader, store, resolver, manifests, artifacts, classpath, executor, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      app,
		Logger:   log,
		Executor: executor,
	}, nil
}
