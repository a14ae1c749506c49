// Package pom expands Maven pom.xml manifests into dependency tokens.
package pom

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/zerr"
)

var propertyRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// Parser implements ports.ManifestParser for pom.xml files.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

type dependency struct {
	group      string
	artifact   string
	version    string
	typ        string
	classifier string
	scope      string
}

// Dependencies returns the direct dependencies of the pom at path whose
// scope equals scope. A dependency without a scope is compile scoped.
func (p *Parser) Dependencies(path, scope string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, path), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrPathStatFailed, err.Error()), "path", path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestParse, err.Error()), "path", path)
	}

	project := doc.SelectElement("project")
	if project == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestParse, "missing project element"), "path", path)
	}

	if scope == "" {
		scope = domain.DefaultScope
	}

	props := properties(project)
	managed := managedVersions(project, props)

	var tokens []string
	for _, dep := range readDependencies(project.FindElements("./dependencies/dependency"), props) {
		if dep.scope != scope {
			continue
		}
		if dep.version == "" {
			dep.version = managed[dep.group+":"+dep.artifact]
		}
		c := domain.Coordinate{
			Group:      dep.group,
			Name:       dep.artifact,
			Type:       dep.typ,
			Version:    dep.version,
			Classifier: dep.classifier,
		}
		if err := validate(c); err != nil {
			return nil, zerr.With(err, "path", path)
		}
		tokens = append(tokens, c.Notation())
	}
	return tokens, nil
}

// properties collects <properties> plus the project.* and parent.* values
// that ${...} references may use.
func properties(project *etree.Element) map[string]string {
	props := make(map[string]string)

	parent := project.SelectElement("parent")
	for _, field := range []string{"groupId", "artifactId", "version"} {
		if parent != nil {
			if v := childText(parent, field); v != "" {
				props["project.parent."+field] = v
				props["parent."+field] = v
				props["project."+field] = v
			}
		}
		if v := childText(project, field); v != "" {
			props["project."+field] = v
		}
	}
	for _, alias := range []string{"groupId", "artifactId", "version"} {
		if v, ok := props["project."+alias]; ok {
			props["pom."+alias] = v
		}
	}

	if el := project.SelectElement("properties"); el != nil {
		for _, child := range el.ChildElements() {
			props[child.Tag] = strings.TrimSpace(child.Text())
		}
	}
	return props
}

// managedVersions indexes <dependencyManagement> versions by group:artifact.
func managedVersions(project *etree.Element, props map[string]string) map[string]string {
	out := make(map[string]string)
	deps := project.FindElements("./dependencyManagement/dependencies/dependency")
	for _, dep := range readDependencies(deps, props) {
		if dep.version != "" {
			out[dep.group+":"+dep.artifact] = dep.version
		}
	}
	return out
}

func readDependencies(elements []*etree.Element, props map[string]string) []dependency {
	out := make([]dependency, 0, len(elements))
	for _, el := range elements {
		dep := dependency{
			group:      expand(childText(el, "groupId"), props),
			artifact:   expand(childText(el, "artifactId"), props),
			version:    expand(childText(el, "version"), props),
			typ:        expand(childText(el, "type"), props),
			classifier: expand(childText(el, "classifier"), props),
			scope:      expand(childText(el, "scope"), props),
		}
		if dep.typ == "" {
			dep.typ = domain.DefaultType
		}
		if dep.scope == "" {
			dep.scope = domain.DefaultScope
		}
		out = append(out, dep)
	}
	return out
}

// expand substitutes ${name} references. Unknown references are left in place.
func expand(s string, props map[string]string) string {
	for range 8 {
		next := propertyRef.ReplaceAllStringFunc(s, func(ref string) string {
			if v, ok := props[ref[2:len(ref)-1]]; ok {
				return v
			}
			return ref
		})
		if next == s {
			break
		}
		s = next
	}
	return s
}

func validate(c domain.Coordinate) error {
	fields := []struct{ name, value string }{
		{"groupId", c.Group},
		{"artifactId", c.Name},
		{"version", c.Version},
	}
	for _, f := range fields {
		field, value := f.name, f.value
		if value == "" {
			return zerr.With(zerr.Wrap(domain.ErrManifestParse, "missing "+field), "dependency", c.GroupName())
		}
		if strings.Contains(value, "${") {
			return zerr.With(zerr.Wrap(domain.ErrManifestParse, "unresolved property"), "value", value)
		}
	}
	return nil
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
