package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"vidgrid/internal/customplatforms"
	"vidgrid/internal/platform"
	"vidgrid/internal/prefs"
	"vidgrid/internal/search"
	"vidgrid/internal/selection"
	"vidgrid/internal/trending"
	"vidgrid/internal/ui"
	"vidgrid/internal/ui/components"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
	debugMode = false // Enable with --debug flag
)

// debugLog logs a message if debug mode is enabled
func debugLog(format string, args ...interface{}) {
	if debugMode {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// resultsDelay is the cosmetic pause before search results appear.
// It never applies to the open-tabs path, which stays synchronous.
const resultsDelay = 150 * time.Millisecond

// Screen represents different screens in the app
type Screen int

const (
	ScreenMain Screen = iota
	ScreenHelp
)

// Panel represents which panel is focused
type Panel int

const (
	PanelPlatforms Panel = iota
	PanelResults
)

// Model is the main application model
type Model struct {
	store    *prefs.Store
	prefs    prefs.Preferences
	registry []platform.Platform
	launcher *search.Launcher
	trends   []string

	// UI Components
	platformList *components.PlatformList
	resultList   *components.ResultList
	queryInput   textinput.Model
	help         help.Model
	keys         ui.KeyMap

	// State
	screen       Screen
	focusedPanel Panel
	searchMode   bool
	status       string
	width        int
	height       int

	trendIdx  int
	recentIdx int

	// searchToken invalidates delayed result messages from a
	// superseded search
	searchToken int
}

// Messages
type searchResultsMsg struct {
	token   int
	results []search.Result
}

func New(bootstrapQuery string) *Model {
	registry := platform.Registry()
	if defs, err := customplatforms.New("").Load(); err == nil {
		registry = customplatforms.Append(registry, defs)
	}

	store := prefs.New(os.Getenv("VIDGRID_STATE_DIR"))
	p := store.Load(registry)

	// Default-select-all policy runs at startup too
	p.SelectedIDs = selection.EnsureDefaults(registry, p.Category, p.SelectedIDs)
	store.SaveSelected(p.SelectedIDs)

	ui.SetTheme(p.Theme == prefs.ThemeDark)

	ti := textinput.New()
	ti.Placeholder = "Search videos everywhere..."
	ti.CharLimit = 256
	ti.Width = 50

	enabled := selection.Enabled(registry, p.Category)
	pl := components.NewPlatformList(enabled)
	pl.SetSelected(p.SelectedIDs)

	rl := components.NewResultList()
	rl.Focused = false

	m := &Model{
		store:        store,
		prefs:        p,
		registry:     registry,
		launcher:     search.NewLauncher(),
		trends:       trending.Load(os.Getenv("VIDGRID_TRENDING_FILE")),
		platformList: pl,
		resultList:   rl,
		queryInput:   ti,
		help:         help.New(),
		keys:         ui.DefaultKeyMap(),
		screen:       ScreenMain,
		focusedPanel: PanelPlatforms,
		status:       "Ready",
		width:        100,
		height:       30,
		trendIdx:     -1,
		recentIdx:    -1,
	}

	if q := strings.TrimSpace(bootstrapQuery); q != "" {
		m.queryInput.SetValue(q)
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	if strings.TrimSpace(m.queryInput.Value()) != "" {
		// Bootstrap query auto-runs a search on startup
		return m.startSearch()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updatePanelSizes()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case searchResultsMsg:
		if msg.token != m.searchToken {
			// A newer search superseded this one
			return m, nil
		}
		m.resultList.SetResults(msg.results)
		m.status = fmt.Sprintf("%d destinations ready • 'o' opens tabs", len(msg.results))
		return m, nil
	}

	if m.searchMode {
		var cmd tea.Cmd
		m.queryInput, cmd = m.queryInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == ScreenHelp {
		if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.screen = ScreenMain
			return m, nil
		}
		return m, nil
	}

	if m.searchMode {
		return m.handleSearchKeys(msg)
	}

	return m.handleMainKeys(msg)
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.queryInput.Blur()
		return m, m.startSearch()

	case "esc":
		m.searchMode = false
		m.queryInput.Blur()
		m.status = "Ready"
		return m, nil
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	return m, cmd
}

func (m *Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.screen = ScreenHelp
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.queryInput.Focus()
		m.status = "Type a query • Enter to search • Esc to cancel"
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Enter):
		return m, m.startSearch()

	case key.Matches(msg, m.keys.Escape):
		m.queryInput.SetValue("")
		m.resultList.Clear()
		m.status = "Ready"
		return m, nil

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		m.togglePanel()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.handleNavigation(true)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.handleNavigation(false)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		if m.focusedPanel == PanelPlatforms {
			m.platformList.PageUp()
		}
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		if m.focusedPanel == PanelPlatforms {
			m.platformList.PageDown()
		}
		return m, nil

	case key.Matches(msg, m.keys.Home):
		if m.focusedPanel == PanelPlatforms {
			m.platformList.GoToFirst()
		} else {
			m.resultList.GoToFirst()
		}
		return m, nil

	case key.Matches(msg, m.keys.End):
		if m.focusedPanel == PanelPlatforms {
			m.platformList.GoToLast()
		} else {
			m.resultList.GoToLast()
		}
		return m, nil

	case key.Matches(msg, m.keys.Space):
		m.handleToggle()
		return m, nil

	case key.Matches(msg, m.keys.SelectAll):
		m.handleSelectAll(true)
		return m, nil

	case key.Matches(msg, m.keys.DeselectAll):
		m.handleSelectAll(false)
		return m, nil

	case key.Matches(msg, m.keys.Open):
		return m.handleOpenSelected()

	case key.Matches(msg, m.keys.Copy):
		return m.handleCopy()

	case key.Matches(msg, m.keys.Language):
		m.cycleLanguage()
		return m, nil

	case key.Matches(msg, m.keys.Advanced):
		m.prefs.Advanced = !m.prefs.Advanced
		m.store.SaveAdvanced(m.prefs.Advanced)
		if m.prefs.Advanced {
			m.status = "Advanced mode on: tab cap removed"
		} else {
			m.status = fmt.Sprintf("Advanced mode off: at most %d tabs per launch", search.DefaultCap)
		}
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Trending):
		return m.cycleTrending()

	case key.Matches(msg, m.keys.Recent):
		return m.cycleRecent()

	case key.Matches(msg, m.keys.ClearRecent):
		m.prefs.Recent = nil
		m.recentIdx = -1
		m.store.ClearRecent()
		m.status = "Search history cleared"
		return m, nil

	case msg.String() == "1" || msg.String() == "0":
		return m.switchCategory(platform.CategoryAll)
	case msg.String() == "2":
		return m.switchCategory(platform.CategoryOTT)
	case msg.String() == "3":
		return m.switchCategory(platform.CategoryShorts)
	case msg.String() == "4":
		return m.switchCategory(platform.CategoryEducation)
	case msg.String() == "5":
		return m.switchCategory(platform.CategoryNews)
	case msg.String() == "6":
		return m.switchCategory(platform.CategorySocial)
	case msg.String() == "7":
		return m.switchCategory(platform.CategoryGaming)
	}

	return m, nil
}

func (m *Model) handleNavigation(up bool) {
	if m.focusedPanel == PanelPlatforms {
		if up {
			m.platformList.MoveUp()
		} else {
			m.platformList.MoveDown()
		}
	} else {
		if up {
			m.resultList.MoveUp()
		} else {
			m.resultList.MoveDown()
		}
	}
}

func (m *Model) handleToggle() {
	if m.focusedPanel != PanelPlatforms {
		return
	}
	p, ok := m.platformList.Current()
	if !ok {
		return
	}
	m.prefs.SelectedIDs = selection.Toggle(m.prefs.SelectedIDs, p.ID)
	m.store.SaveSelected(m.prefs.SelectedIDs)
	m.platformList.SetSelected(m.prefs.SelectedIDs)
}

func (m *Model) handleSelectAll(all bool) {
	enabled := selection.Enabled(m.registry, m.prefs.Category)
	if all {
		m.prefs.SelectedIDs = selection.SelectAll(m.prefs.SelectedIDs, enabled)
	} else {
		m.prefs.SelectedIDs = selection.SelectNone(m.prefs.SelectedIDs, enabled)
	}
	m.store.SaveSelected(m.prefs.SelectedIDs)
	m.platformList.SetSelected(m.prefs.SelectedIDs)
}

func (m *Model) switchCategory(c platform.Category) (tea.Model, tea.Cmd) {
	m.prefs.Category = c
	m.store.SaveCategory(c)

	// Default-select-all policy runs on every category switch
	m.prefs.SelectedIDs = selection.EnsureDefaults(m.registry, c, m.prefs.SelectedIDs)
	m.store.SaveSelected(m.prefs.SelectedIDs)

	enabled := selection.Enabled(m.registry, c)
	m.platformList.SetPlatforms(enabled)
	m.platformList.SetSelected(m.prefs.SelectedIDs)
	m.status = fmt.Sprintf("Category: %s (%d platforms)", c, len(enabled))
	return m, nil
}

func (m *Model) cycleLanguage() {
	langs := platform.Languages()
	idx := 0
	for i, l := range langs {
		if l == m.prefs.Language {
			idx = i
			break
		}
	}
	m.prefs.Language = langs[(idx+1)%len(langs)]
	m.store.SaveLanguage(m.prefs.Language)
	if m.prefs.Language == platform.LanguageAny {
		m.status = "Language: Any (no keyword added)"
	} else {
		m.status = fmt.Sprintf("Language: %s (added to every query)", m.prefs.Language)
	}
}

func (m *Model) toggleTheme() {
	if m.prefs.Theme == prefs.ThemeDark {
		m.prefs.Theme = prefs.ThemeLight
	} else {
		m.prefs.Theme = prefs.ThemeDark
	}
	m.store.SaveTheme(m.prefs.Theme)
	ui.SetTheme(m.prefs.Theme == prefs.ThemeDark)
	m.status = fmt.Sprintf("Theme: %s", m.prefs.Theme)
}

func (m *Model) cycleTrending() (tea.Model, tea.Cmd) {
	if len(m.trends) == 0 {
		m.status = "No trending shortcuts"
		return m, nil
	}
	m.trendIdx = (m.trendIdx + 1) % len(m.trends)
	m.queryInput.SetValue(m.trends[m.trendIdx])
	return m, m.startSearch()
}

func (m *Model) cycleRecent() (tea.Model, tea.Cmd) {
	if len(m.prefs.Recent) == 0 {
		m.status = "No recent searches"
		return m, nil
	}
	m.recentIdx = (m.recentIdx + 1) % len(m.prefs.Recent)
	m.queryInput.SetValue(m.prefs.Recent[m.recentIdx])
	return m, m.startSearch()
}

// startSearch builds the destination list for display. Results appear
// after a short cosmetic delay; no tabs are opened here.
func (m *Model) startSearch() tea.Cmd {
	raw := m.queryInput.Value()
	if strings.TrimSpace(raw) == "" {
		m.resultList.Clear()
		m.status = "Ready"
		return nil
	}

	m.prefs.Recent = prefs.PushRecent(m.prefs.Recent, raw)
	m.store.SaveRecent(m.prefs.Recent)
	m.recentIdx = -1

	enabled := selection.Enabled(m.registry, m.prefs.Category)
	selected := selection.Selected(enabled, m.prefs.SelectedIDs)
	results := search.Results(raw, m.prefs.Language, selected)

	debugLog("search %q -> %d destinations", raw, len(results))

	m.searchToken++
	token := m.searchToken
	m.status = "Searching..."

	return tea.Tick(resultsDelay, func(time.Time) tea.Msg {
		return searchResultsMsg{token: token, results: results}
	})
}

// handleOpenSelected opens one browser tab per selected platform. The
// whole path runs inside this key handler with no intervening
// suspension, so every tab comes from the same user gesture.
func (m *Model) handleOpenSelected() (tea.Model, tea.Cmd) {
	raw := m.queryInput.Value()
	if strings.TrimSpace(raw) == "" {
		m.status = "Type a query first ('/')"
		return m, nil
	}

	m.prefs.Recent = prefs.PushRecent(m.prefs.Recent, raw)
	m.store.SaveRecent(m.prefs.Recent)

	enabled := selection.Enabled(m.registry, m.prefs.Category)
	selected := selection.Selected(enabled, m.prefs.SelectedIDs)
	if len(selected) == 0 {
		m.status = "No platforms selected"
		return m, nil
	}

	report := m.launcher.Open(raw, m.prefs.Language, selected, m.prefs.Advanced)
	if report.Withheld > 0 {
		m.status = fmt.Sprintf("Opened %d tabs • %d withheld — press 'A' to remove the cap",
			report.Opened, report.Withheld)
	} else {
		m.status = fmt.Sprintf("Opened %d tabs", report.Opened)
	}
	return m, nil
}

func (m *Model) handleCopy() (tea.Model, tea.Cmd) {
	if m.focusedPanel != PanelResults {
		m.status = "Switch to Results panel to copy (Tab)"
		return m, nil
	}
	r, ok := m.resultList.Current()
	if !ok {
		m.status = "No result selected"
		return m, nil
	}
	if err := search.CopyURL(r.URL); err != nil {
		// No clipboard available: show the URL for manual copy
		m.status = "Copy manually: " + r.URL
		return m, nil
	}
	m.status = fmt.Sprintf("Copied %s URL", r.Platform.Name)
	return m, nil
}

func (m *Model) togglePanel() {
	if m.focusedPanel == PanelPlatforms {
		m.focusedPanel = PanelResults
		m.platformList.Focused = false
		m.resultList.Focused = true
	} else {
		m.focusedPanel = PanelPlatforms
		m.platformList.Focused = true
		m.resultList.Focused = false
	}
}

func (m *Model) updatePanelSizes() {
	panelWidth := (m.width - 6) / 2
	panelHeight := m.height - 14
	if panelHeight < 5 {
		panelHeight = 5
	}

	m.platformList.Width = panelWidth
	m.platformList.Height = panelHeight
	m.resultList.Width = panelWidth
	m.resultList.Height = panelHeight
	m.queryInput.Width = max(20, m.width-20)
}

func (m *Model) View() string {
	if m.screen == ScreenHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m *Model) renderMain() string {
	var b strings.Builder

	// Header
	title := ui.TitleStyle.Render("vidgrid")
	ver := ui.VersionStyle.Render(" " + version)
	b.WriteString(ui.HeaderStyle.Render(title + ver))
	b.WriteString("\n")

	// Query line
	b.WriteString(ui.PanelTitleStyle.Render("Query"))
	b.WriteString(" ")
	b.WriteString(m.queryInput.View())
	b.WriteString("\n\n")

	// Category chips
	b.WriteString(m.renderCategoryChips())
	b.WriteString("\n")

	// Language / mode line
	b.WriteString(m.renderModeLine())
	b.WriteString("\n")

	// Trending and recent rows
	if row := m.renderQueryRow("Trending", m.trends, m.trendIdx); row != "" {
		b.WriteString(row)
		b.WriteString("\n")
	}
	if row := m.renderQueryRow("Recent", m.prefs.Recent, m.recentIdx); row != "" {
		b.WriteString(row)
		b.WriteString("\n")
	}

	// Panels
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		m.platformList.View(),
		" ",
		m.resultList.View(),
	)
	b.WriteString(panels)
	b.WriteString("\n")

	// Status bar
	b.WriteString(ui.StatusBarStyle.Render(ui.StatusTextStyle.Render(m.status)))
	b.WriteString("\n")

	// Help bar
	b.WriteString(ui.HelpBarStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return ui.AppStyle.Render(b.String())
}

func (m *Model) renderCategoryChips() string {
	var chips []string
	for i, c := range platform.Categories() {
		label := fmt.Sprintf("%d %s", i+1, c)
		chips = append(chips, ui.RenderChip(label, c == m.prefs.Category))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m *Model) renderModeLine() string {
	lang := ui.RenderChip("Lang: "+m.prefs.Language, m.prefs.Language != platform.LanguageAny)

	advLabel := "Advanced: off"
	if m.prefs.Advanced {
		advLabel = "Advanced: on"
	}
	adv := ui.RenderChip(advLabel, m.prefs.Advanced)

	theme := ui.ChipStyle.Render("Theme: " + string(m.prefs.Theme))

	return lipgloss.JoinHorizontal(lipgloss.Top, lang, adv, theme)
}

// renderQueryRow renders a labeled row of query shortcuts, the active
// one highlighted
func (m *Model) renderQueryRow(label string, queries []string, active int) string {
	if len(queries) == 0 {
		return ""
	}

	parts := []string{ui.MutedStyle.Render(label + ":")}
	for i, q := range queries {
		if len(q) > 20 {
			q = q[:17] + "..."
		}
		parts = append(parts, ui.RenderChip(q, i == active))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(ui.HeaderStyle.Render("vidgrid help"))
	b.WriteString("\n\n")

	sections := []struct {
		title string
		items [][2]string
	}{
		{"Search", [][2]string{
			{"/", "edit query"},
			{"enter", "show destinations (no tabs opened)"},
			{"o", "open selected platforms in browser tabs"},
			{"esc", "clear query and results"},
		}},
		{"Platforms", [][2]string{
			{"space", "toggle platform under cursor"},
			{"a / D", "select all / none in category"},
			{"1-7", "switch category"},
			{"0", "all categories"},
		}},
		{"Modifiers", [][2]string{
			{"L", "cycle language keyword"},
			{"A", fmt.Sprintf("advanced mode (default cap: %d tabs)", search.DefaultCap)},
			{"T", "toggle dark/light theme"},
		}},
		{"Shortcuts", [][2]string{
			{"t", "cycle trending searches"},
			{"r", "cycle recent searches"},
			{"X", "clear recent history"},
			{"y", "copy result URL"},
		}},
	}

	for _, s := range sections {
		b.WriteString(ui.PanelTitleStyle.Render(s.title))
		b.WriteString("\n")
		for _, item := range s.items {
			b.WriteString("  ")
			b.WriteString(ui.RenderHelpItem(fmt.Sprintf("%-8s", item[0]), item[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(ui.HelpBarStyle.Render("esc/? to go back"))
	return ui.AppStyle.Render(b.String())
}

func main() {
	// .env may carry VIDGRID_QUERY, VIDGRID_STATE_DIR, VIDGRID_TRENDING_FILE
	_ = godotenv.Load()

	bootstrap := os.Getenv("VIDGRID_QUERY")

	for _, arg := range os.Args[1:] {
		switch arg {
		case "-v", "--version", "version":
			fmt.Printf("vidgrid %s (built %s)\n", version, buildTime)
			return
		case "-h", "--help", "help":
			fmt.Println("vidgrid - search video platforms from one query")
			fmt.Println()
			fmt.Println("Usage: vidgrid [options] [query]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -v, --version    Show version")
			fmt.Println("  -h, --help       Show this help")
			fmt.Println("  -d, --debug      Enable debug mode (logs to stderr)")
			fmt.Println()
			fmt.Println("A query argument pre-fills and runs a search on startup.")
			return
		case "-d", "--debug", "debug":
			debugMode = true
			fmt.Fprintln(os.Stderr, "[DEBUG] Debug mode enabled")
		default:
			if bootstrap == "" {
				bootstrap = arg
			}
		}
	}

	p := tea.NewProgram(New(bootstrap), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
