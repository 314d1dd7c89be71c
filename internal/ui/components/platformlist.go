package components

import (
	"fmt"
	"strings"

	"vidgrid/internal/platform"
	"vidgrid/internal/selection"
	"vidgrid/internal/ui"
)

// PlatformList is a checkbox list over the enabled platforms. It only
// renders and tracks the cursor; selection state lives in the app
// model and is pushed in via SetSelected.
type PlatformList struct {
	Platforms   []platform.Platform
	SelectedIDs []string
	Cursor      int
	Width       int
	Height      int
	Focused     bool
	Title       string
}

// NewPlatformList creates a new platform list
func NewPlatformList(platforms []platform.Platform) *PlatformList {
	return &PlatformList{
		Platforms: platforms,
		Cursor:    0,
		Width:     40,
		Height:    15,
		Focused:   true,
		Title:     "Platforms",
	}
}

// SetPlatforms updates the visible platforms
func (l *PlatformList) SetPlatforms(platforms []platform.Platform) {
	l.Platforms = platforms
	if l.Cursor >= len(platforms) {
		l.Cursor = max(0, len(platforms)-1)
	}
}

// SetSelected updates the selected id set used for checkboxes
func (l *PlatformList) SetSelected(ids []string) {
	l.SelectedIDs = ids
}

// MoveUp moves cursor up
func (l *PlatformList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// MoveDown moves cursor down
func (l *PlatformList) MoveDown() {
	if l.Cursor < len(l.Platforms)-1 {
		l.Cursor++
	}
}

// PageUp moves cursor up by a page
func (l *PlatformList) PageUp() {
	pageSize := l.Height - 3
	if pageSize < 1 {
		pageSize = 10
	}
	l.Cursor -= pageSize
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

// PageDown moves cursor down by a page
func (l *PlatformList) PageDown() {
	pageSize := l.Height - 3
	if pageSize < 1 {
		pageSize = 10
	}
	l.Cursor += pageSize
	if l.Cursor >= len(l.Platforms) {
		l.Cursor = max(0, len(l.Platforms)-1)
	}
}

// GoToFirst moves cursor to the first item
func (l *PlatformList) GoToFirst() {
	l.Cursor = 0
}

// GoToLast moves cursor to the last item
func (l *PlatformList) GoToLast() {
	if len(l.Platforms) > 0 {
		l.Cursor = len(l.Platforms) - 1
	}
}

// Current returns the platform under the cursor
func (l *PlatformList) Current() (platform.Platform, bool) {
	if len(l.Platforms) > 0 && l.Cursor < len(l.Platforms) {
		return l.Platforms[l.Cursor], true
	}
	return platform.Platform{}, false
}

// View renders the platform list
func (l *PlatformList) View() string {
	var b strings.Builder

	selectedCount := 0
	for _, p := range l.Platforms {
		if selection.IsSelected(l.SelectedIDs, p.ID) {
			selectedCount++
		}
	}

	title := l.Title
	if len(l.Platforms) > 0 {
		title = fmt.Sprintf("%s (%d/%d)", l.Title, selectedCount, len(l.Platforms))
	}
	b.WriteString(ui.PanelTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", max(1, l.Width-2))))
	b.WriteString("\n")

	if len(l.Platforms) == 0 {
		b.WriteString(ui.ItemStyle.Render("No platforms in this category"))
		return l.wrapInPanel(b.String())
	}

	// Calculate visible range
	visibleHeight := l.Height - 3
	startIdx := 0
	if l.Cursor >= visibleHeight {
		startIdx = l.Cursor - visibleHeight + 1
	}
	endIdx := min(startIdx+visibleHeight, len(l.Platforms))

	if startIdx > 0 {
		b.WriteString(ui.MutedStyle.Render("  ↑ more"))
		b.WriteString("\n")
	}

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(l.renderItem(l.Platforms[i], i == l.Cursor))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(l.Platforms) {
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render("  ↓ more"))
	}

	return l.wrapInPanel(b.String())
}

// renderItem renders a single platform row
func (l *PlatformList) renderItem(p platform.Platform, isCursor bool) string {
	checkbox := ui.RenderCheckbox(selection.IsSelected(l.SelectedIDs, p.ID))
	icon := p.Icon
	if icon == "" {
		icon = "◆"
	}

	name := p.Name
	maxNameLen := l.Width - 18
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	tag := ui.MutedStyle.Render("[" + string(p.Category) + "]")
	content := fmt.Sprintf("%s %s %s %s", checkbox, icon, name, tag)

	if isCursor && l.Focused {
		return ui.SelectedItemStyle.Width(max(1, l.Width-4)).Render(content)
	}
	return ui.ItemStyle.Render(content)
}

func (l *PlatformList) wrapInPanel(content string) string {
	style := ui.PanelStyle
	if l.Focused {
		style = ui.ActivePanelStyle
	}
	return style.Width(l.Width).Height(l.Height).Render(content)
}
