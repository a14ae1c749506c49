// Package m2 implements the local artifact repository in the Maven directory layout.
package m2

import (
	"path"
	"strings"

	"go.trai.ch/jarlock/internal/core/domain"
)

// RelativePath returns the slash-separated location of c inside a Maven
// repository: group/dirs/name/version/name-version[-classifier].ext.
func RelativePath(c domain.Coordinate) string {
	file := c.Name + "-" + c.Version
	if c.Classifier != "" {
		file += "-" + c.Classifier
	}
	file += "." + c.Extension()
	return path.Join(strings.ReplaceAll(c.Group, ".", "/"), c.Name, c.Version, file)
}
