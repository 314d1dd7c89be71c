package ui

import "testing"

func TestSetThemeSwitchesPalette(t *testing.T) {
	SetTheme(false)
	if Current != LightPalette {
		t.Error("SetTheme(false) should activate the light palette")
	}

	SetTheme(true)
	if Current != DarkPalette {
		t.Error("SetTheme(true) should activate the dark palette")
	}
}

func TestRenderCheckbox(t *testing.T) {
	if RenderCheckbox(true) == RenderCheckbox(false) {
		t.Error("checked and unchecked boxes should differ")
	}
}

func TestKeyMapHelpCoverage(t *testing.T) {
	k := DefaultKeyMap()
	if len(k.ShortHelp()) == 0 {
		t.Error("short help should not be empty")
	}
	if len(k.FullHelp()) == 0 {
		t.Error("full help should not be empty")
	}
}
