package search

import (
	"fmt"
	"strings"
	"testing"

	"vidgrid/internal/platform"
)

func TestEffectiveQueryAnyLanguage(t *testing.T) {
	if got := EffectiveQuery("jazz", platform.LanguageAny); got != "jazz" {
		t.Errorf("EffectiveQuery = %q, want raw query unchanged", got)
	}
}

func TestEffectiveQueryAppendsLanguage(t *testing.T) {
	if got := EffectiveQuery("jazz", "French"); got != "jazz French" {
		t.Errorf("EffectiveQuery = %q", got)
	}
}

func TestEffectiveQueryTrims(t *testing.T) {
	if got := EffectiveQuery("  jazz  ", "Hindi"); got != "jazz Hindi" {
		t.Errorf("EffectiveQuery = %q", got)
	}
}

func TestEffectiveQueryBlank(t *testing.T) {
	if got := EffectiveQuery("   ", "Hindi"); got != "" {
		t.Errorf("blank query should collapse to empty, got %q", got)
	}
	if got := EffectiveQuery("", platform.LanguageAny); got != "" {
		t.Errorf("EffectiveQuery = %q", got)
	}
}

func TestEffectiveQueryLowercaseAnyIsLiteral(t *testing.T) {
	// The sentinel is matched case-sensitively; "any" is a keyword
	if got := EffectiveQuery("jazz", "any"); got != "jazz any" {
		t.Errorf("EffectiveQuery = %q", got)
	}
}

func testSelected(n int) []platform.Platform {
	out := make([]platform.Platform, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, platform.Platform{
			ID:   fmt.Sprintf("p%d", i),
			Name: fmt.Sprintf("P%d", i),
			Strategy: platform.Strategy{
				Kind:    platform.StrategyDirect,
				BaseURL: fmt.Sprintf("https://p%d.example/s", i),
				Param:   "q",
			},
		})
	}
	return out
}

func TestResultsEmptyQuery(t *testing.T) {
	if got := Results("", platform.LanguageAny, testSelected(3)); got != nil {
		t.Errorf("empty query should yield nil, got %v", got)
	}
}

func TestResultsOnePerPlatformInOrder(t *testing.T) {
	got := Results("news", platform.LanguageAny, testSelected(3))
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	for i, r := range got {
		if r.Platform.ID != fmt.Sprintf("p%d", i) {
			t.Errorf("result %d is %q, order broken", i, r.Platform.ID)
		}
		if !strings.Contains(r.URL, "q=news") {
			t.Errorf("result %d URL = %q", i, r.URL)
		}
	}
}

func TestResultsIncludeLanguage(t *testing.T) {
	got := Results("news", "German", testSelected(1))
	if len(got) != 1 || !strings.Contains(got[0].URL, "q=news+German") {
		t.Errorf("Results = %v", got)
	}
}

// recorder captures open requests instead of spawning a browser
func recorder(opened *[]string) func(string) error {
	return func(url string) error {
		*opened = append(*opened, url)
		return nil
	}
}

func TestOpenAppliesCap(t *testing.T) {
	var opened []string
	l := &Launcher{Cap: DefaultCap, OpenURL: recorder(&opened)}

	report := l.Open("q", platform.LanguageAny, testSelected(12), false)
	if report.Opened != 8 || report.Withheld != 4 {
		t.Errorf("report = %+v, want 8 opened / 4 withheld", report)
	}
	if len(opened) != 8 {
		t.Fatalf("opened %d tabs", len(opened))
	}
	// First 8 in selection order, the rest withheld
	for i, url := range opened {
		if !strings.Contains(url, fmt.Sprintf("p%d.example", i)) {
			t.Errorf("tab %d = %q, order broken", i, url)
		}
	}
}

func TestOpenAdvancedRemovesCap(t *testing.T) {
	var opened []string
	l := &Launcher{Cap: DefaultCap, OpenURL: recorder(&opened)}

	report := l.Open("q", platform.LanguageAny, testSelected(12), true)
	if report.Opened != 12 || report.Withheld != 0 {
		t.Errorf("report = %+v, want 12 opened / 0 withheld", report)
	}
	if len(opened) != 12 {
		t.Errorf("opened %d tabs", len(opened))
	}
}

func TestOpenUnderCap(t *testing.T) {
	var opened []string
	l := &Launcher{Cap: DefaultCap, OpenURL: recorder(&opened)}

	report := l.Open("q", platform.LanguageAny, testSelected(3), false)
	if report.Opened != 3 || report.Withheld != 0 {
		t.Errorf("report = %+v", report)
	}
}

func TestOpenEmptyQueryOpensNothing(t *testing.T) {
	var opened []string
	l := &Launcher{Cap: DefaultCap, OpenURL: recorder(&opened)}

	report := l.Open("  ", platform.LanguageAny, testSelected(3), false)
	if report.Opened != 0 || report.Withheld != 0 || len(opened) != 0 {
		t.Errorf("blank query must be a no-op, report = %+v, opened = %v", report, opened)
	}
}

func TestOpenFailuresDoNotStopRemaining(t *testing.T) {
	var opened []string
	l := &Launcher{Cap: DefaultCap, OpenURL: func(url string) error {
		opened = append(opened, url)
		return fmt.Errorf("browser missing")
	}}

	report := l.Open("q", platform.LanguageAny, testSelected(3), false)
	if len(opened) != 3 {
		t.Errorf("all opens should still be attempted, got %d", len(opened))
	}
	if report.Opened != 3 {
		t.Errorf("report counts requests, not successes: %+v", report)
	}
}
