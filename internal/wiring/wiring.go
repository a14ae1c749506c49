// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jarlock/internal/adapters/coursier"
	_ "go.trai.ch/jarlock/internal/adapters/jarfile"
	_ "go.trai.ch/jarlock/internal/adapters/loadpath"
	_ "go.trai.ch/jarlock/internal/adapters/lockfile"
	_ "go.trai.ch/jarlock/internal/adapters/logger"
	_ "go.trai.ch/jarlock/internal/adapters/m2"
	_ "go.trai.ch/jarlock/internal/adapters/pom"
	_ "go.trai.ch/jarlock/internal/adapters/shell"
	_ "go.trai.ch/jarlock/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/jarlock/internal/app"
)
