package trending

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaults are shown when no user list is configured
var defaults = []string{
	"trailers",
	"live news",
	"lo-fi music",
	"full movie",
	"documentary",
	"highlights",
	"podcast",
	"recipes",
}

type fileFormat struct {
	Queries []string `yaml:"queries"`
}

// DefaultPath returns the default trending override file path
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "vidgrid", "trending.yaml")
}

// Load returns the trending query shortcuts. A missing or unreadable
// override file falls back to the built-in defaults.
func Load(path string) []string {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults()
	}

	var cfg fileFormat
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults()
	}

	var out []string
	for _, q := range cfg.Queries {
		q = strings.TrimSpace(q)
		if q != "" {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return Defaults()
	}
	return out
}

// Defaults returns a copy of the built-in trending list
func Defaults() []string {
	out := make([]string, len(defaults))
	copy(out, defaults)
	return out
}
