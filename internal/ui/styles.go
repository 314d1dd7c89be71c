package ui

import "github.com/charmbracelet/lipgloss"

// Palette holds the colors for one theme
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Selected   lipgloss.Color
}

// DarkPalette is the default color scheme
var DarkPalette = Palette{
	Primary:    lipgloss.Color("#7C3AED"), // Purple
	Secondary:  lipgloss.Color("#06B6D4"), // Cyan
	Success:    lipgloss.Color("#10B981"), // Green
	Warning:    lipgloss.Color("#F59E0B"), // Amber
	Error:      lipgloss.Color("#EF4444"), // Red
	Muted:      lipgloss.Color("#6B7280"), // Gray
	Foreground: lipgloss.Color("#F9FAFB"), // Light
	Border:     lipgloss.Color("#374151"), // Border gray
	Selected:   lipgloss.Color("#4F46E5"), // Indigo
}

// LightPalette is the alternate scheme for light terminals
var LightPalette = Palette{
	Primary:    lipgloss.Color("#6D28D9"),
	Secondary:  lipgloss.Color("#0E7490"),
	Success:    lipgloss.Color("#047857"),
	Warning:    lipgloss.Color("#B45309"),
	Error:      lipgloss.Color("#B91C1C"),
	Muted:      lipgloss.Color("#9CA3AF"),
	Foreground: lipgloss.Color("#111827"),
	Border:     lipgloss.Color("#D1D5DB"),
	Selected:   lipgloss.Color("#4338CA"),
}

// Current is the active palette; styles below are rebuilt by SetTheme
var Current = DarkPalette

// Styles
var (
	AppStyle lipgloss.Style

	HeaderStyle  lipgloss.Style
	TitleStyle   lipgloss.Style
	VersionStyle lipgloss.Style

	PanelStyle       lipgloss.Style
	PanelTitleStyle  lipgloss.Style
	ActivePanelStyle lipgloss.Style

	ItemStyle         lipgloss.Style
	SelectedItemStyle lipgloss.Style
	CursorStyle       lipgloss.Style

	CheckboxChecked   string
	CheckboxUnchecked string

	ChipStyle       lipgloss.Style
	ActiveChipStyle lipgloss.Style

	StatusBarStyle  lipgloss.Style
	StatusTextStyle lipgloss.Style

	HelpBarStyle  lipgloss.Style
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style

	URLStyle     lipgloss.Style
	HintStyle    lipgloss.Style
	MutedStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	DividerStyle lipgloss.Style
)

func init() {
	SetTheme(true)
}

// SetTheme switches between the dark and light palettes and rebuilds
// every package style
func SetTheme(dark bool) {
	if dark {
		Current = DarkPalette
	} else {
		Current = LightPalette
	}

	AppStyle = lipgloss.NewStyle().
		Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Current.Primary).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Current.Foreground)

	VersionStyle = lipgloss.NewStyle().
		Foreground(Current.Muted).
		Italic(true)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Current.Border).
		Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Current.Secondary).
		Padding(0, 1)

	ActivePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Current.Primary).
		Padding(0, 1)

	ItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(Current.Selected).
		Foreground(Current.Foreground)

	CursorStyle = lipgloss.NewStyle().
		Foreground(Current.Primary).
		Bold(true)

	CheckboxChecked = lipgloss.NewStyle().Foreground(Current.Success).Render("[✓]")
	CheckboxUnchecked = lipgloss.NewStyle().Foreground(Current.Muted).Render("[ ]")

	ChipStyle = lipgloss.NewStyle().
		Foreground(Current.Muted).
		Padding(0, 1)

	ActiveChipStyle = lipgloss.NewStyle().
		Foreground(Current.Foreground).
		Background(Current.Selected).
		Padding(0, 1).
		Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(Current.Muted).
		Padding(0, 1).
		MarginTop(1)

	StatusTextStyle = lipgloss.NewStyle().
		Foreground(Current.Foreground)

	HelpBarStyle = lipgloss.NewStyle().
		Foreground(Current.Muted).
		Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(Current.Secondary).
		Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(Current.Muted)

	URLStyle = lipgloss.NewStyle().
		Foreground(Current.Secondary)

	HintStyle = lipgloss.NewStyle().
		Foreground(Current.Muted).
		Italic(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Current.Muted)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Current.Success)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Current.Warning)

	DividerStyle = lipgloss.NewStyle().
		Foreground(Current.Border)
}

// RenderCheckbox returns a styled checkbox
func RenderCheckbox(checked bool) string {
	if checked {
		return CheckboxChecked
	}
	return CheckboxUnchecked
}

// RenderChip renders a filter chip, highlighted when active
func RenderChip(label string, active bool) string {
	if active {
		return ActiveChipStyle.Render(label)
	}
	return ChipStyle.Render(label)
}

// RenderHelpItem renders a help key-description pair
func RenderHelpItem(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}
