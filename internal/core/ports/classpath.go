package ports

// ClasspathLoader defines the interface for the runtime load path collaborator.
//
//go:generate mockgen -source=classpath.go -destination=mocks/mock_classpath.go -package=mocks
type ClasspathLoader interface {
	// LoadPaths appends paths to the load path, skipping ones already present.
	LoadPaths(paths []string) error

	// Classpath returns the load path in registration order.
	Classpath() []string

	// Environ returns the environment assignments that expose the load path
	// to a child process.
	Environ() []string
}
