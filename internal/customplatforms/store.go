package customplatforms

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vidgrid/internal/platform"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML shape of a user-defined platform
type Definition struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Category string            `yaml:"category"`
	Hint     string            `yaml:"hint"`
	Icon     string            `yaml:"icon"`
	Strategy platform.Strategy `yaml:"strategy"`
}

type fileFormat struct {
	Platforms []Definition `yaml:"platforms"`
}

// Store persists user-defined platforms in a YAML file
type Store struct {
	path string
}

// New creates a store, falling back to the default path when empty
func New(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// DefaultPath returns the default custom platforms file path
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "vidgrid", "platforms.yaml")
}

// Load returns all custom platform definitions. A missing file is not
// an error.
func (s *Store) Load() ([]Definition, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Definition{}, nil
		}
		return nil, err
	}

	var cfg fileFormat
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Platforms == nil {
		return []Definition{}, nil
	}
	return cfg.Platforms, nil
}

// Add appends a definition to the store
func (s *Store) Add(def Definition) error {
	def, err := sanitizeDefinition(def)
	if err != nil {
		return err
	}

	existing, err := s.Load()
	if err != nil {
		return err
	}

	for _, d := range existing {
		if strings.EqualFold(d.ID, def.ID) {
			return fmt.Errorf("custom platform with id %q already exists", def.ID)
		}
	}

	existing = append(existing, def)
	return s.save(existing)
}

// Append merges custom definitions onto the built-in registry,
// skipping entries that collide with a registered id or fail
// validation. The built-in order is untouched; customs go at the end.
func Append(registry []platform.Platform, defs []Definition) []platform.Platform {
	out := append([]platform.Platform{}, registry...)
	for _, def := range defs {
		def, err := sanitizeDefinition(def)
		if err != nil {
			continue
		}
		if _, exists := platform.ByID(out, def.ID); exists {
			continue
		}
		out = append(out, platform.Platform{
			ID:       def.ID,
			Name:     def.Name,
			Category: platform.Category(def.Category),
			Hint:     def.Hint,
			Icon:     def.Icon,
			Strategy: def.Strategy,
		})
	}
	return out
}

func (s *Store) save(defs []Definition) error {
	cfg := fileFormat{Platforms: defs}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func sanitizeDefinition(def Definition) (Definition, error) {
	def.ID = strings.TrimSpace(def.ID)
	def.Name = strings.TrimSpace(def.Name)
	def.Category = strings.TrimSpace(def.Category)
	def.Icon = strings.TrimSpace(def.Icon)

	if def.ID == "" {
		return def, fmt.Errorf("id is required")
	}
	if def.Name == "" {
		return def, fmt.Errorf("name is required")
	}
	if def.Category == "" || !platform.ValidCategory(def.Category) {
		def.Category = string(platform.CategoryOTT)
	}
	if def.Icon == "" {
		def.Icon = "◆"
	}

	switch def.Strategy.Kind {
	case platform.StrategyDirect:
		if def.Strategy.BaseURL == "" || def.Strategy.Param == "" {
			return def, fmt.Errorf("direct strategy needs base_url and param")
		}
	case platform.StrategySite:
		if def.Strategy.Domain == "" {
			return def, fmt.Errorf("site strategy needs domain")
		}
	default:
		return def, fmt.Errorf("unknown strategy kind %q", def.Strategy.Kind)
	}

	return def, nil
}
