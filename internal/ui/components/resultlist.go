package components

import (
	"fmt"
	"strings"

	"vidgrid/internal/search"
	"vidgrid/internal/ui"
)

// ResultList shows the destination URLs produced by a search, one per
// selected platform in registry order
type ResultList struct {
	Results []search.Result
	Cursor  int
	Width   int
	Height  int
	Focused bool
	Title   string
}

// NewResultList creates an empty result list
func NewResultList() *ResultList {
	return &ResultList{
		Width:  40,
		Height: 15,
		Title:  "Results",
	}
}

// SetResults replaces the displayed results
func (l *ResultList) SetResults(results []search.Result) {
	l.Results = results
	if l.Cursor >= len(results) {
		l.Cursor = max(0, len(results)-1)
	}
}

// Clear empties the list
func (l *ResultList) Clear() {
	l.Results = nil
	l.Cursor = 0
}

// MoveUp moves cursor up
func (l *ResultList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// MoveDown moves cursor down
func (l *ResultList) MoveDown() {
	if l.Cursor < len(l.Results)-1 {
		l.Cursor++
	}
}

// GoToFirst moves cursor to the first item
func (l *ResultList) GoToFirst() {
	l.Cursor = 0
}

// GoToLast moves cursor to the last item
func (l *ResultList) GoToLast() {
	if len(l.Results) > 0 {
		l.Cursor = len(l.Results) - 1
	}
}

// Current returns the result under the cursor
func (l *ResultList) Current() (search.Result, bool) {
	if len(l.Results) > 0 && l.Cursor < len(l.Results) {
		return l.Results[l.Cursor], true
	}
	return search.Result{}, false
}

// View renders the result list
func (l *ResultList) View() string {
	var b strings.Builder

	title := l.Title
	if len(l.Results) > 0 {
		title = fmt.Sprintf("%s (%d)", l.Title, len(l.Results))
	}
	b.WriteString(ui.PanelTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", max(1, l.Width-2))))
	b.WriteString("\n")

	if len(l.Results) == 0 {
		b.WriteString(ui.HintStyle.Render("Run a search to see destinations"))
		return l.wrapInPanel(b.String())
	}

	visibleHeight := l.Height - 3
	startIdx := 0
	if l.Cursor >= visibleHeight {
		startIdx = l.Cursor - visibleHeight + 1
	}
	endIdx := min(startIdx+visibleHeight, len(l.Results))

	if startIdx > 0 {
		b.WriteString(ui.MutedStyle.Render("  ↑ more"))
		b.WriteString("\n")
	}

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(l.renderItem(l.Results[i], i == l.Cursor))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(l.Results) {
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render("  ↓ more"))
	}

	return l.wrapInPanel(b.String())
}

// renderItem renders a single result row: platform name plus a
// truncated destination URL
func (l *ResultList) renderItem(r search.Result, isCursor bool) string {
	name := r.Platform.Name
	url := r.URL

	maxURLLen := l.Width - len(name) - 10
	if maxURLLen < 12 {
		maxURLLen = 12
	}
	if len(url) > maxURLLen {
		url = url[:maxURLLen-1] + "…"
	}

	content := fmt.Sprintf("%s  %s", name, ui.URLStyle.Render(url))

	if isCursor && l.Focused {
		return ui.SelectedItemStyle.Width(max(1, l.Width-4)).Render(content)
	}
	return ui.ItemStyle.Render(content)
}

func (l *ResultList) wrapInPanel(content string) string {
	style := ui.PanelStyle
	if l.Focused {
		style = ui.ActivePanelStyle
	}
	return style.Width(l.Width).Height(l.Height).Render(content)
}
