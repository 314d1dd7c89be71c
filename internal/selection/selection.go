package selection

import (
	"vidgrid/internal/platform"
)

// Enabled returns the platforms matching the active category in
// registry order. The "all" sentinel passes everything through.
func Enabled(platforms []platform.Platform, category platform.Category) []platform.Platform {
	if category == platform.CategoryAll {
		out := make([]platform.Platform, len(platforms))
		copy(out, platforms)
		return out
	}

	var out []platform.Platform
	for _, p := range platforms {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// EnsureDefaults applies the default-select-all-on-empty policy: when
// none of the enabled platforms are selected, every enabled platform's
// id is added to the selection. Runs at startup and on every category
// switch; applying it twice yields the same set as applying it once.
func EnsureDefaults(platforms []platform.Platform, category platform.Category, selected []string) []string {
	enabled := Enabled(platforms, category)
	if len(enabled) == 0 {
		return selected
	}

	set := toSet(selected)
	for _, p := range enabled {
		if set[p.ID] {
			return selected
		}
	}

	out := append([]string{}, selected...)
	for _, p := range enabled {
		out = append(out, p.ID)
	}
	return out
}

// Toggle adds id to the selection if absent, removes it if present
func Toggle(selected []string, id string) []string {
	for i, s := range selected {
		if s == id {
			out := append([]string{}, selected[:i]...)
			return append(out, selected[i+1:]...)
		}
	}
	return append(append([]string{}, selected...), id)
}

// SelectAll adds every enabled platform to the selection, leaving
// selections from other categories untouched
func SelectAll(selected []string, enabled []platform.Platform) []string {
	set := toSet(selected)
	out := append([]string{}, selected...)
	for _, p := range enabled {
		if !set[p.ID] {
			out = append(out, p.ID)
		}
	}
	return out
}

// SelectNone removes every enabled platform from the selection,
// leaving selections from other categories untouched
func SelectNone(selected []string, enabled []platform.Platform) []string {
	drop := make(map[string]bool, len(enabled))
	for _, p := range enabled {
		drop[p.ID] = true
	}

	var out []string
	for _, id := range selected {
		if !drop[id] {
			out = append(out, id)
		}
	}
	return out
}

// Selected returns the enabled platforms whose ids are in the
// selection, preserving registry order
func Selected(enabled []platform.Platform, selected []string) []platform.Platform {
	set := toSet(selected)
	var out []platform.Platform
	for _, p := range enabled {
		if set[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// IsSelected reports whether id is in the selection
func IsSelected(selected []string, id string) bool {
	for _, s := range selected {
		if s == id {
			return true
		}
	}
	return false
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
