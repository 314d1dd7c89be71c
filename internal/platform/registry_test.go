package platform

import "testing"

func TestRegistryIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Registry() {
		if seen[p.ID] {
			t.Errorf("duplicate platform id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestRegistryEntriesComplete(t *testing.T) {
	for _, p := range Registry() {
		if p.ID == "" || p.Name == "" {
			t.Errorf("platform %+v missing id or name", p)
		}
		if !ValidCategory(string(p.Category)) || p.Category == CategoryAll {
			t.Errorf("platform %q has bad category %q", p.ID, p.Category)
		}
		switch p.Strategy.Kind {
		case StrategyDirect:
			if p.Strategy.BaseURL == "" || p.Strategy.Param == "" {
				t.Errorf("platform %q direct strategy incomplete", p.ID)
			}
		case StrategySite:
			if p.Strategy.Domain == "" {
				t.Errorf("platform %q site strategy missing domain", p.ID)
			}
		default:
			t.Errorf("platform %q has unknown strategy kind %q", p.ID, p.Strategy.Kind)
		}
	}
}

func TestRegistryEveryPlatformBuildsURL(t *testing.T) {
	for _, p := range Registry() {
		if got := p.BuildURL("test"); got == "" {
			t.Errorf("platform %q built empty URL", p.ID)
		}
	}
}

func TestRegistryReturnsCopy(t *testing.T) {
	a := Registry()
	a[0].Name = "mutated"
	b := Registry()
	if b[0].Name == "mutated" {
		t.Error("Registry should hand out a fresh copy")
	}
}

func TestByID(t *testing.T) {
	reg := Registry()

	p, ok := ByID(reg, "youtube")
	if !ok || p.Name != "YouTube" {
		t.Errorf("ByID(youtube) = %+v, %v", p, ok)
	}

	if _, ok := ByID(reg, "nope"); ok {
		t.Error("ByID should miss on unknown id")
	}
}

func TestIDsPreserveOrder(t *testing.T) {
	reg := Registry()
	ids := IDs(reg)
	if len(ids) != len(reg) {
		t.Fatalf("IDs length = %d, want %d", len(ids), len(reg))
	}
	for i, p := range reg {
		if ids[i] != p.ID {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], p.ID)
		}
	}
}
