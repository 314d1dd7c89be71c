package selection

import (
	"testing"

	"vidgrid/internal/platform"
)

func testPlatforms() []platform.Platform {
	return []platform.Platform{
		{ID: "yt", Category: platform.CategoryOTT},
		{ID: "tk", Category: platform.CategoryShorts},
		{ID: "bbc", Category: platform.CategoryNews},
		{ID: "cnn", Category: platform.CategoryNews},
	}
}

func TestEnabledAllPassesThrough(t *testing.T) {
	got := Enabled(testPlatforms(), platform.CategoryAll)
	if len(got) != 4 {
		t.Errorf("Enabled(all) = %d platforms, want 4", len(got))
	}
}

func TestEnabledFiltersByCategory(t *testing.T) {
	got := Enabled(testPlatforms(), platform.CategoryNews)
	if len(got) != 2 {
		t.Fatalf("Enabled(news) = %d platforms, want 2", len(got))
	}
	if got[0].ID != "bbc" || got[1].ID != "cnn" {
		t.Errorf("registry order not preserved: %v", platform.IDs(got))
	}
}

func TestEnsureDefaultsSelectsAllOnEmpty(t *testing.T) {
	got := EnsureDefaults(testPlatforms(), platform.CategoryNews, nil)
	if !IsSelected(got, "bbc") || !IsSelected(got, "cnn") {
		t.Errorf("empty selection should select every enabled platform, got %v", got)
	}
}

func TestEnsureDefaultsNoOpWhenAnySelected(t *testing.T) {
	selected := []string{"bbc"}
	got := EnsureDefaults(testPlatforms(), platform.CategoryNews, selected)
	if len(got) != 1 || got[0] != "bbc" {
		t.Errorf("partial selection must stay untouched, got %v", got)
	}
}

func TestEnsureDefaultsIdempotent(t *testing.T) {
	once := EnsureDefaults(testPlatforms(), platform.CategoryAll, nil)
	twice := EnsureDefaults(testPlatforms(), platform.CategoryAll, once)
	if len(once) != len(twice) {
		t.Errorf("second application changed the set: %v vs %v", once, twice)
	}
}

func TestEnsureDefaultsPreservesOtherCategories(t *testing.T) {
	// yt is selected but outside news; news itself is empty
	got := EnsureDefaults(testPlatforms(), platform.CategoryNews, []string{"yt"})
	if !IsSelected(got, "yt") {
		t.Error("selection outside the category must survive")
	}
	if !IsSelected(got, "bbc") || !IsSelected(got, "cnn") {
		t.Errorf("news platforms should be added, got %v", got)
	}
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	start := []string{"yt", "bbc"}
	once := Toggle(start, "tk")
	if !IsSelected(once, "tk") {
		t.Fatal("first toggle should add")
	}
	twice := Toggle(once, "tk")
	if IsSelected(twice, "tk") {
		t.Error("second toggle should remove")
	}
	if len(twice) != len(start) {
		t.Errorf("toggle twice changed size: %v", twice)
	}
}

func TestSelectAllScopedToEnabled(t *testing.T) {
	enabled := Enabled(testPlatforms(), platform.CategoryNews)
	got := SelectAll([]string{"yt"}, enabled)
	if !IsSelected(got, "yt") {
		t.Error("existing selection must survive")
	}
	if !IsSelected(got, "bbc") || !IsSelected(got, "cnn") {
		t.Errorf("enabled platforms should be selected, got %v", got)
	}
	if IsSelected(got, "tk") {
		t.Error("platforms outside the enabled set must not be selected")
	}
}

func TestSelectAllNoDuplicates(t *testing.T) {
	enabled := Enabled(testPlatforms(), platform.CategoryNews)
	got := SelectAll([]string{"bbc"}, enabled)
	count := 0
	for _, id := range got {
		if id == "bbc" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("bbc appears %d times", count)
	}
}

func TestSelectNoneScopedToEnabled(t *testing.T) {
	enabled := Enabled(testPlatforms(), platform.CategoryNews)
	got := SelectNone([]string{"yt", "bbc", "cnn"}, enabled)
	if IsSelected(got, "bbc") || IsSelected(got, "cnn") {
		t.Errorf("enabled platforms should be deselected, got %v", got)
	}
	if !IsSelected(got, "yt") {
		t.Error("selection outside the enabled set must survive")
	}
}

func TestSelectedPreservesRegistryOrder(t *testing.T) {
	enabled := Enabled(testPlatforms(), platform.CategoryAll)
	// Selection stored in reverse order must not matter
	got := Selected(enabled, []string{"cnn", "yt"})
	if len(got) != 2 {
		t.Fatalf("Selected = %v", platform.IDs(got))
	}
	if got[0].ID != "yt" || got[1].ID != "cnn" {
		t.Errorf("order = %v, want registry order", platform.IDs(got))
	}
}

func TestSelectedIgnoresUnknownIDs(t *testing.T) {
	enabled := Enabled(testPlatforms(), platform.CategoryAll)
	got := Selected(enabled, []string{"ghost", "yt"})
	if len(got) != 1 || got[0].ID != "yt" {
		t.Errorf("Selected = %v", platform.IDs(got))
	}
}
