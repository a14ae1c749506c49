// Package jarfile loads dependency specifications from a Jarfile.
package jarfile

import (
	"os"
	"path/filepath"

	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/jarlock/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SpecificationLoader using a YAML Jarfile.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the Jarfile at path. An empty path searches the working
// directory and its parents.
func (l *Loader) Load(path string) (*domain.Specification, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(domain.ErrFailedToGetAbsPath, err.Error())
		}
		found, err := findJarfile(cwd)
		if err != nil {
			return nil, err
		}
		path = found
	}

	var jf Jarfile
	if err := readAndUnmarshalYAML(path, &jf); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	spec, err := jf.Specification()
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.Logger.Debug("loaded " + path)
	return spec, nil
}

// Specification evaluates the Jarfile in declaration order: repositories,
// jars, pom, scopes, maps, excludes.
func (jf *Jarfile) Specification() (*domain.Specification, error) {
	b := domain.NewSpecBuilder()

	for _, repo := range jf.Repositories {
		b.AddRepository(repo)
	}
	for _, token := range jf.Jars {
		b.Jar(token)
	}
	if jf.Pom != "" {
		b.Pom(jf.Pom)
	}

	if err := forEachPair(&jf.Scopes, "scopes", func(name string, value *yaml.Node) error {
		tokens, err := stringList(value)
		if err != nil {
			return zerr.With(err, "scope", name)
		}
		for _, token := range tokens {
			b.Declare(name, token)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := forEachPair(&jf.Maps, "maps", func(key string, value *yaml.Node) error {
		paths, err := stringList(value)
		if err != nil {
			return zerr.With(err, "map", key)
		}
		b.Map(key, paths...)
		return nil
	}); err != nil {
		return nil, err
	}

	for _, raw := range jf.Excludes {
		e, err := domain.ParseExclusion(raw)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrJarfileParse, err.Error()), "exclude", raw)
		}
		b.Exclude(e.Group, e.Name)
	}

	return b.Build(), nil
}

// forEachPair visits a mapping node in document order. An unset node is empty.
func forEachPair(n *yaml.Node, field string, fn func(key string, value *yaml.Node) error) error {
	if n.Kind == 0 || isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return zerr.With(zerr.Wrap(domain.ErrJarfileParse, "expected a mapping"), "field", field)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := fn(n.Content[i].Value, n.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// stringList accepts either a single string or a list of strings.
func stringList(n *yaml.Node) ([]string, error) {
	switch {
	case isNull(n):
		return nil, nil
	case n.Kind == yaml.ScalarNode:
		return []string{n.Value}, nil
	case n.Kind == yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, zerr.With(zerr.Wrap(domain.ErrJarfileParse, "expected a string"), "line", item.Line)
			}
			out = append(out, item.Value)
		}
		return out, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrJarfileParse, "expected a string or a list"), "line", n.Line)
	}
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

// findJarfile walks up from cwd until it finds a Jarfile.
func findJarfile(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.JarfileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(zerr.Wrap(domain.ErrJarfileNotFound, cwd), "cwd", cwd)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return zerr.Wrap(domain.ErrJarfileNotFound, path)
		}
		return zerr.Wrap(domain.ErrJarfileParse, err.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(domain.ErrJarfileParse, parseErr.Error())
	}
	return nil
}
