package coursier

import (
	"bufio"
	"bytes"
	"strings"

	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseOutput reads `cs resolve` lines of the form g:n:v[:configuration].
// Blank lines and lines without a version are ignored.
func parseOutput(output []byte) ([]domain.Coordinate, error) {
	var out []domain.Coordinate
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ":")
		if len(parts) < 3 || strings.ContainsAny(line, " \t") {
			continue
		}
		c, err := domain.ParseCoordinate(strings.Join(parts[:3], ":"))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrResolverFailed, err.Error()), "line", line)
		}
		out = append(out, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(domain.ErrResolverFailed, err.Error())
	}
	return out, nil
}

// carryOver copies the declared type and classifier onto matching resolved
// coordinates, since coursier prints only group:name:version.
func carryOver(resolved, declared []domain.Coordinate) []domain.Coordinate {
	byShort := make(map[string]domain.Coordinate, len(declared))
	for _, d := range declared {
		byShort[d.ShortNotation()] = d
	}
	out := make([]domain.Coordinate, len(resolved))
	for i, c := range resolved {
		if d, ok := byShort[c.ShortNotation()]; ok {
			c.Type = d.Type
			c.Classifier = d.Classifier
		}
		out[i] = c
	}
	return out
}
