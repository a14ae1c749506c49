// Package lockfile reads and writes Jarfile.lock documents.
package lockfile

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Top-level and per-scope keys, in the order they are written.
const (
	keyRepositories         = "repositories"
	keyMaps                 = "maps"
	keyExcludes             = "excludes"
	keyScopes               = "scopes"
	keyDependencies         = "dependencies"
	keyResolvedDependencies = "resolved_dependencies"
)

const yamlIndent = 2

// Store implements ports.LockStore on YAML files.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read parses the lock file at path.
func (s *Store) Read(path string) (*domain.LockDocument, error) {
	//nolint:gosec // Path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrLockfileNotFound, path), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lock file"), "path", path)
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return doc, nil
}

// Write serializes doc and atomically replaces the file at path.
func (s *Store) Write(path string, doc *domain.LockDocument) error {
	data, err := Encode(doc)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	if err := atomicWriteFile(path, data); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockfileWriteFailed, err.Error()), "path", path)
	}
	return nil
}

// Encode renders doc in the on-disk key order.
func Encode(doc *domain.LockDocument) ([]byte, error) {
	if doc == nil {
		doc = domain.NewLockDocument()
	}

	root := mappingNode()
	if len(doc.Repositories) > 0 {
		appendPair(root, keyRepositories, sequenceNode(doc.Repositories))
	}
	if len(doc.Maps) > 0 {
		maps := mappingNode()
		for _, m := range doc.Maps {
			appendPair(maps, m.Key, sequenceNode(m.Paths))
		}
		appendPair(root, keyMaps, maps)
	}
	if len(doc.Excludes) > 0 {
		flat := make([]string, 0, 2*len(doc.Excludes))
		for _, e := range doc.Excludes {
			name := e.Name
			if name == "" {
				name = domain.WildcardName
			}
			flat = append(flat, e.Group, name)
		}
		appendPair(root, keyExcludes, sequenceNode(flat))
	}

	scopes := mappingNode()
	for _, sc := range doc.Scopes {
		entry := mappingNode()
		appendPair(entry, keyDependencies, sequenceNode(sc.Dependencies))
		appendPair(entry, keyResolvedDependencies, sequenceNode(sc.ResolvedDependencies))
		appendPair(scopes, sc.Name, entry)
	}
	appendPair(root, keyScopes, scopes)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, zerr.Wrap(domain.ErrLockfileMarshalFailed, err.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(domain.ErrLockfileMarshalFailed, err.Error())
	}
	return buf.Bytes(), nil
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func sequenceNode(values []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, v := range values {
		n.Content = append(n.Content, scalarNode(v))
	}
	return n
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalarNode(key), value)
}

// atomicWriteFile writes data to a temp file next to path and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".jarlock-*.lock")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
