package search

import (
	"strings"

	"vidgrid/internal/platform"
)

// Result pairs a platform with the destination URL built for a query
type Result struct {
	Platform platform.Platform
	URL      string
}

// EffectiveQuery combines the raw query with the language keyword.
// Whitespace-only queries collapse to "". The "Any" sentinel (matched
// case-sensitively) leaves the query unmodified.
func EffectiveQuery(raw, language string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if language == platform.LanguageAny || language == "" {
		return raw
	}
	return raw + " " + language
}

// Results builds the ordered destination list for the selected
// platforms. An empty query yields nil; no tabs are opened here.
func Results(raw, language string, selected []platform.Platform) []Result {
	effective := EffectiveQuery(raw, language)
	if effective == "" {
		return nil
	}

	out := make([]Result, 0, len(selected))
	for _, p := range selected {
		out = append(out, Result{Platform: p, URL: p.BuildURL(effective)})
	}
	return out
}
