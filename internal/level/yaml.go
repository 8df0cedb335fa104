package level

import (
	"errors"
	"fmt"
	"os"

	"github.com/vovakirdan/tankjump/internal/game"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned for level files without entities.
var ErrEmpty = errors.New("level: no entities")

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	Name     string       `yaml:"name"`
	Entities []YAMLEntity `yaml:"entities"`
}

// YAMLEntity represents a single entity in YAML format.
type YAMLEntity struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
}

// Parse parses and validates a YAML level.
func Parse(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("level: yaml unmarshal: %w", err)
	}
	if len(yl.Entities) == 0 {
		return Level{}, ErrEmpty
	}

	lvl := Level{
		Name:     yl.Name,
		Entities: make([]game.Descriptor, 0, len(yl.Entities)),
	}
	for i, ye := range yl.Entities {
		kind, ok := game.ParseKind(ye.Kind)
		if !ok {
			return Level{}, fmt.Errorf("level: %w", game.ValidationError{
				Code:    game.CodeUnknownKind,
				Message: fmt.Sprintf("entity %d has unknown kind %q", i, ye.Kind),
			})
		}
		lvl.Entities = append(lvl.Entities, game.Descriptor{Kind: kind, X: ye.X, Y: ye.Y, W: ye.W, H: ye.H})
	}

	if err := lvl.Validate(); err != nil {
		return Level{}, fmt.Errorf("level %q: %w", lvl.Name, err)
	}
	return lvl, nil
}

// Load reads and parses a level file.
func Load(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("failed to read level %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("failed to parse level %s: %w", path, err)
	}
	return lvl, nil
}

// Marshal encodes a level in the file format read by Parse.
func Marshal(l Level) ([]byte, error) {
	yl := YAMLLevel{
		Name:     l.Name,
		Entities: make([]YAMLEntity, len(l.Entities)),
	}
	for i, d := range l.Entities {
		yl.Entities[i] = YAMLEntity{Kind: d.Kind.String(), X: d.X, Y: d.Y, W: d.W, H: d.H}
	}
	return yaml.Marshal(yl)
}
