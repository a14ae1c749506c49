package jarfile

import "gopkg.in/yaml.v3"

// Jarfile represents the structure of a Jarfile.
//
// Scopes and Maps are kept as nodes so declaration order survives decoding.
type Jarfile struct {
	Repositories []string  `yaml:"repositories"`
	Jars         []string  `yaml:"jars"`
	Pom          string    `yaml:"pom"`
	Scopes       yaml.Node `yaml:"scopes"`
	Maps         yaml.Node `yaml:"maps"`
	Excludes     []string  `yaml:"excludes"`
}
