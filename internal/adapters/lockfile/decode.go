package lockfile

import (
	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Decode parses lock file bytes. The scopes key is required; the other
// top-level keys are optional and unknown keys are ignored.
func Decode(data []byte) (*domain.LockDocument, error) {
	var docNode yaml.Node
	if err := yaml.Unmarshal(data, &docNode); err != nil {
		return nil, parseError(err.Error())
	}
	if docNode.Kind != yaml.DocumentNode || len(docNode.Content) == 0 {
		return nil, parseError("document is empty")
	}
	root := docNode.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, parseError("top level must be a mapping")
	}

	doc := domain.NewLockDocument()
	sawScopes := false

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, root.Content[i+1]
		var err error
		switch key {
		case keyRepositories:
			doc.Repositories, err = decodeStrings(value, key)
		case keyMaps:
			doc.Maps, err = decodeMaps(value)
		case keyExcludes:
			doc.Excludes, err = decodeExcludes(value)
		case keyScopes:
			sawScopes = true
			doc.Scopes, err = decodeScopes(value)
		}
		if err != nil {
			return nil, err
		}
	}

	if !sawScopes {
		return nil, parseError("missing scopes")
	}
	return doc, nil
}

func parseError(reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrLockfileParse, reason), "reason", reason)
}

func nodeError(n *yaml.Node, reason string) error {
	return zerr.With(parseError(reason), "line", n.Line)
}

func decodeStrings(n *yaml.Node, field string) ([]string, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, zerr.With(nodeError(n, "expected a list"), "field", field)
	}
	var out []string
	for _, item := range n.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, zerr.With(nodeError(item, "expected a string"), "field", field)
		}
		out = append(out, item.Value)
	}
	return out, nil
}

func decodeMaps(n *yaml.Node) ([]domain.MapEntry, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, zerr.With(nodeError(n, "expected a mapping"), "field", keyMaps)
	}
	var out []domain.MapEntry
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		paths, err := decodeStrings(n.Content[i+1], keyMaps+"."+key)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.MapEntry{Key: key, Paths: paths})
	}
	return out, nil
}

// decodeExcludes reads the flattened [group, name, group, name, ...] list.
func decodeExcludes(n *yaml.Node) ([]domain.Exclusion, error) {
	flat, err := decodeStrings(n, keyExcludes)
	if err != nil {
		return nil, err
	}
	if len(flat)%2 != 0 {
		return nil, nodeError(n, "excludes must hold group and name pairs")
	}
	var out []domain.Exclusion
	for i := 0; i < len(flat); i += 2 {
		out = append(out, domain.Exclusion{Group: flat[i], Name: flat[i+1]})
	}
	return out, nil
}

func decodeScopes(n *yaml.Node) ([]domain.ScopeLock, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, zerr.With(nodeError(n, "expected a mapping"), "field", keyScopes)
	}
	var out []domain.ScopeLock
	for i := 0; i+1 < len(n.Content); i += 2 {
		name, body := n.Content[i].Value, n.Content[i+1]
		scope := domain.ScopeLock{Name: name}
		if !isNull(body) && body.Kind != yaml.MappingNode {
			return nil, zerr.With(nodeError(body, "expected a mapping"), "scope", name)
		}
		for j := 0; j+1 < len(body.Content); j += 2 {
			var err error
			switch body.Content[j].Value {
			case keyDependencies:
				scope.Dependencies, err = decodeStrings(body.Content[j+1], keyDependencies)
			case keyResolvedDependencies:
				scope.ResolvedDependencies, err = decodeResolved(body.Content[j+1])
			}
			if err != nil {
				return nil, zerr.With(err, "scope", name)
			}
		}
		out = append(out, scope)
	}
	return out, nil
}

// decodeResolved reads resolved_dependencies; every entry must be a full
// coordinate notation.
func decodeResolved(n *yaml.Node) ([]string, error) {
	out, err := decodeStrings(n, keyResolvedDependencies)
	if err != nil {
		return nil, err
	}
	for i, notation := range out {
		if _, err := domain.ParseCoordinate(notation); err != nil {
			return nil, zerr.With(nodeError(n.Content[i], err.Error()), "coordinate", notation)
		}
	}
	return out, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
