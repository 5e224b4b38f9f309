// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingID is returned for level files without an id.
var ErrMissingID = errors.New("level id is empty")

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Plan     string            `yaml:"plan"` // Rows of level characters, usually a block scalar
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level file. The plan is kept as text and turned
// into a grid by the simulation core.
type Level struct {
	ID       string
	Name     string
	Plan     string
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	id := strings.TrimSpace(yl.ID)
	if id == "" {
		return Level{}, ErrMissingID
	}

	name := strings.TrimSpace(yl.Name)
	if name == "" {
		name = id
	}

	return Level{
		ID:       id,
		Name:     name,
		Plan:     yl.Plan,
		Metadata: yl.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
