package platform

import (
	"net/url"
	"strings"
)

// Category groups platforms for filtering
type Category string

const (
	CategoryAll       Category = "all"
	CategoryOTT       Category = "ott"
	CategoryShorts    Category = "shorts"
	CategoryEducation Category = "education"
	CategoryNews      Category = "news"
	CategorySocial    Category = "social"
	CategoryGaming    Category = "gaming"
)

// StrategyKind selects how a destination URL is built
type StrategyKind string

const (
	// StrategyDirect targets the platform's own search endpoint
	StrategyDirect StrategyKind = "direct"
	// StrategySite routes through a general search engine with a
	// site: domain restriction, for platforms without a usable
	// search endpoint
	StrategySite StrategyKind = "site"
)

// defaultEngine is the search endpoint used by site-restricted lookups
const defaultEngine = "https://duckduckgo.com/"

// Strategy describes URL construction for a platform. It is plain data
// so the registry stays serializable and testable.
type Strategy struct {
	Kind    StrategyKind `yaml:"kind"`
	BaseURL string       `yaml:"base_url"` // direct: search endpoint
	Param   string       `yaml:"param"`    // direct: query parameter name
	Domain  string       `yaml:"domain"`   // site: domain restriction
	Engine  string       `yaml:"engine"`   // site: override search engine
}

// Platform is a single destination service in the registry
type Platform struct {
	ID       string
	Name     string
	Category Category
	Hint     string
	Icon     string
	Strategy Strategy
}

// BuildURL returns the fully encoded destination URL for a query.
// Pure string transformation; no network access. An empty query after
// trimming returns "".
func (p Platform) BuildURL(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}

	switch p.Strategy.Kind {
	case StrategySite:
		engine := p.Strategy.Engine
		if engine == "" {
			engine = defaultEngine
		}
		v := url.Values{}
		v.Set("q", "site:"+p.Strategy.Domain+" "+query)
		return engine + "?" + v.Encode()

	default:
		v := url.Values{}
		v.Set(p.Strategy.Param, query)
		sep := "?"
		if strings.Contains(p.Strategy.BaseURL, "?") {
			sep = "&"
		}
		return p.Strategy.BaseURL + sep + v.Encode()
	}
}

// Categories returns every selectable category, "all" first
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryOTT,
		CategoryShorts,
		CategoryEducation,
		CategoryNews,
		CategorySocial,
		CategoryGaming,
	}
}

// ValidCategory reports whether id names a known category
func ValidCategory(id string) bool {
	for _, c := range Categories() {
		if string(c) == id {
			return true
		}
	}
	return false
}

// LanguageAny is the sentinel that disables language suffixing.
// Matching is case-sensitive.
const LanguageAny = "Any"

// Languages returns the language keywords offered as query modifiers,
// sentinel first
func Languages() []string {
	return []string{
		LanguageAny,
		"English",
		"Hindi",
		"Spanish",
		"French",
		"German",
		"Portuguese",
		"Arabic",
		"Russian",
		"Japanese",
		"Korean",
		"Tamil",
		"Telugu",
		"Bengali",
	}
}

// ValidLanguage reports whether name is a known language keyword
func ValidLanguage(name string) bool {
	for _, l := range Languages() {
		if l == name {
			return true
		}
	}
	return false
}
