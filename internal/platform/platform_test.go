package platform

import (
	"strings"
	"testing"
)

func TestBuildURLDirect(t *testing.T) {
	p := Platform{
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.youtube.com/results", Param: "search_query"},
	}

	got := p.BuildURL("cat videos")
	want := "https://www.youtube.com/results?search_query=cat+videos"
	if got != want {
		t.Errorf("BuildURL = %q, want %q", got, want)
	}
}

func TestBuildURLDirectBaseWithQuery(t *testing.T) {
	p := Platform{
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://example.com/search?tab=video", Param: "q"},
	}

	got := p.BuildURL("news")
	want := "https://example.com/search?tab=video&q=news"
	if got != want {
		t.Errorf("BuildURL = %q, want %q", got, want)
	}
}

func TestBuildURLEncodesSpecialCharacters(t *testing.T) {
	p := Platform{
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://example.com/s", Param: "q"},
	}

	got := p.BuildURL("rock & roll 100%")
	if strings.Contains(got, " ") {
		t.Errorf("URL contains unencoded space: %q", got)
	}
	if !strings.Contains(got, "%26") {
		t.Errorf("URL should percent-encode '&': %q", got)
	}
	if !strings.Contains(got, "%25") {
		t.Errorf("URL should percent-encode '%%': %q", got)
	}
}

func TestBuildURLSite(t *testing.T) {
	p := Platform{
		Strategy: Strategy{Kind: StrategySite, Domain: "hulu.com"},
	}

	got := p.BuildURL("comedy")
	if !strings.HasPrefix(got, "https://duckduckgo.com/?") {
		t.Errorf("site strategy should use the default engine, got %q", got)
	}
	if !strings.Contains(got, "q=site%3Ahulu.com+comedy") {
		t.Errorf("site query malformed: %q", got)
	}
}

func TestBuildURLSiteCustomEngine(t *testing.T) {
	p := Platform{
		Strategy: Strategy{Kind: StrategySite, Domain: "example.com", Engine: "https://www.bing.com/search"},
	}

	got := p.BuildURL("docs")
	if !strings.HasPrefix(got, "https://www.bing.com/search?") {
		t.Errorf("site strategy should honor the engine override, got %q", got)
	}
}

func TestBuildURLEmptyQuery(t *testing.T) {
	p := Platform{
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://example.com/s", Param: "q"},
	}

	if got := p.BuildURL(""); got != "" {
		t.Errorf("empty query should yield empty URL, got %q", got)
	}
	if got := p.BuildURL("   "); got != "" {
		t.Errorf("whitespace query should yield empty URL, got %q", got)
	}
}

func TestBuildURLTrimsQuery(t *testing.T) {
	p := Platform{
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://example.com/s", Param: "q"},
	}

	if got, want := p.BuildURL("  jazz  "), p.BuildURL("jazz"); got != want {
		t.Errorf("trimmed query differs: %q vs %q", got, want)
	}
}

func TestCategoriesAllFirst(t *testing.T) {
	cats := Categories()
	if len(cats) == 0 || cats[0] != CategoryAll {
		t.Errorf("Categories should list %q first, got %v", CategoryAll, cats)
	}
}

func TestValidCategory(t *testing.T) {
	if !ValidCategory("news") {
		t.Error("news should be a valid category")
	}
	if ValidCategory("sports") {
		t.Error("sports should not be a valid category")
	}
	if ValidCategory("") {
		t.Error("empty string should not be a valid category")
	}
}

func TestLanguagesSentinelFirst(t *testing.T) {
	langs := Languages()
	if len(langs) == 0 || langs[0] != LanguageAny {
		t.Errorf("Languages should list %q first, got %v", LanguageAny, langs)
	}
}

func TestValidLanguageCaseSensitive(t *testing.T) {
	if !ValidLanguage("Any") {
		t.Error("Any should be valid")
	}
	if ValidLanguage("any") {
		t.Error("language matching is case-sensitive; 'any' should be invalid")
	}
	if !ValidLanguage("Hindi") {
		t.Error("Hindi should be valid")
	}
}
