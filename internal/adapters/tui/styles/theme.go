package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#FF9F0A") // Orange, operator keys
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Keypad colors
	KeyDigit    = lipgloss.Color("#333333")
	KeyFunction = lipgloss.Color("#A5A5A5")
	KeyOperator = Primary
	KeyHeld     = lipgloss.Color("#5E5CE6") // Indigo

	// Portal colors
	PortalAccent = lipgloss.Color("#7C3AED") // Purple
	FolderColor  = lipgloss.Color("#60A5FA") // Blue

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PortalAccent).
		MarginBottom(1)

	// Calculator display
	DisplayPending = lipgloss.NewStyle().
			Foreground(Muted).
			Align(lipgloss.Right)

	DisplayValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			Align(lipgloss.Right)

	// Keypad buttons, sized by the keypad layout
	Key = lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center)

	KeyPressed = lipgloss.NewStyle().
			Align(lipgloss.Center, lipgloss.Center).
			Reverse(true)

	// Breadcrumb
	Crumb = lipgloss.NewStyle().
		Foreground(PortalAccent).
		Bold(true)

	CrumbCurrent = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	CrumbSeparator = lipgloss.NewStyle().
			Foreground(Muted)

	// Tiles
	Tile = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Align(lipgloss.Center)

	TileSelected = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PortalAccent).
			Align(lipgloss.Center).
			Bold(true)

	TileFolder = lipgloss.NewStyle().
			Foreground(FolderColor)

	EmptyState = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			Padding(1, 0)

	// List rows (context menu, folder picker)
	NodeItem = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(PortalAccent).
			Foreground(White).
			Bold(true)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PortalAccent).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(PortalAccent).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// KeyColor returns the background of a keypad button by its role
func KeyColor(role string) lipgloss.Color {
	switch role {
	case "operator":
		return KeyOperator
	case "function":
		return KeyFunction
	default:
		return KeyDigit
	}
}
