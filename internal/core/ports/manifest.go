package ports

// ManifestParser defines the interface for expanding manifest files into coordinates.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestParser interface {
	// Dependencies returns the coordinate tokens declared in the manifest at path for scope.
	Dependencies(path, scope string) ([]string, error)
}
