package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"vidgrid/internal/platform"
)

// Theme is the UI color scheme preference
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// MaxRecent caps the recent-search history length
const MaxRecent = 8

// Preferences holds every user choice persisted across sessions
type Preferences struct {
	Theme       Theme
	Category    platform.Category
	Language    string
	Advanced    bool
	SelectedIDs []string
	Recent      []string
}

// Default returns the preferences used when nothing is stored
func Default() Preferences {
	return Preferences{
		Theme:       ThemeDark,
		Category:    platform.CategoryAll,
		Language:    platform.LanguageAny,
		Advanced:    false,
		SelectedIDs: nil,
		Recent:      nil,
	}
}

// Each preference lives in its own file so corruption of one key can
// never invalidate the others.
const (
	keyTheme    = "theme"
	keyCategory = "category"
	keyLanguage = "language"
	keyAdvanced = "advanced"
	keySelected = "selected"
	keyRecent   = "recent"
)

// Store reads and writes preferences under a state directory
type Store struct {
	dir string
}

// New creates a store rooted at dir, falling back to the default
// location when dir is empty
func New(dir string) *Store {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDir()
	}
	return &Store{dir: dir}
}

// DefaultDir returns the default state directory
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "vidgrid", "state")
}

// Dir returns the directory backing the store
func (s *Store) Dir() string {
	return s.dir
}

// Load reads all preference keys. It never fails: a missing or corrupt
// value for any field yields that field's default, and stored ids that
// no longer exist in the registry are pruned.
func (s *Store) Load(platforms []platform.Platform) Preferences {
	p := Default()

	if v, ok := s.read(keyTheme); ok {
		if t := Theme(v); t == ThemeDark || t == ThemeLight {
			p.Theme = t
		}
	}

	if v, ok := s.read(keyCategory); ok && platform.ValidCategory(v) {
		p.Category = platform.Category(v)
	}

	if v, ok := s.read(keyLanguage); ok && platform.ValidLanguage(v) {
		p.Language = v
	}

	if v, ok := s.read(keyAdvanced); ok {
		p.Advanced = v == "true"
	}

	if v, ok := s.read(keySelected); ok {
		var ids []string
		if err := json.Unmarshal([]byte(v), &ids); err == nil {
			p.SelectedIDs = pruneUnknown(ids, platforms)
		}
	}

	if v, ok := s.read(keyRecent); ok {
		var recent []string
		if err := json.Unmarshal([]byte(v), &recent); err == nil {
			if len(recent) > MaxRecent {
				recent = recent[:MaxRecent]
			}
			p.Recent = recent
		}
	}

	return p
}

// SaveTheme persists the theme choice
func (s *Store) SaveTheme(t Theme) {
	s.write(keyTheme, string(t))
}

// SaveCategory persists the active category
func (s *Store) SaveCategory(c platform.Category) {
	s.write(keyCategory, string(c))
}

// SaveLanguage persists the active language
func (s *Store) SaveLanguage(lang string) {
	s.write(keyLanguage, lang)
}

// SaveAdvanced persists the advanced-mode flag
func (s *Store) SaveAdvanced(on bool) {
	v := "false"
	if on {
		v = "true"
	}
	s.write(keyAdvanced, v)
}

// SaveSelected persists the selected platform id set
func (s *Store) SaveSelected(ids []string) {
	data, err := json.Marshal(ids)
	if err != nil {
		return
	}
	s.write(keySelected, string(data))
}

// SaveRecent persists the recent-search history
func (s *Store) SaveRecent(recent []string) {
	data, err := json.Marshal(recent)
	if err != nil {
		return
	}
	s.write(keyRecent, string(data))
}

// ClearRecent empties the recent-search history
func (s *Store) ClearRecent() {
	s.SaveRecent([]string{})
}

// PushRecent inserts a query at the front of the history with
// case-insensitive de-duplication, keeping the newest casing and
// capping the list at MaxRecent
func PushRecent(recent []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return recent
	}

	out := make([]string, 0, len(recent)+1)
	out = append(out, query)
	for _, q := range recent {
		if strings.EqualFold(q, query) {
			continue
		}
		out = append(out, q)
	}
	if len(out) > MaxRecent {
		out = out[:MaxRecent]
	}
	return out
}

func (s *Store) read(key string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// write is fire-and-forget: storage failures are indistinguishable
// from success for the caller
func (s *Store) write(key, value string) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return
	}
	_ = os.WriteFile(filepath.Join(s.dir, key), []byte(value), 0644)
}

func pruneUnknown(ids []string, platforms []platform.Platform) []string {
	var out []string
	for _, id := range ids {
		if _, ok := platform.ByID(platforms, id); ok {
			out = append(out, id)
		}
	}
	return out
}
