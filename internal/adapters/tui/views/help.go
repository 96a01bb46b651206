package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"calcvault/internal/adapters/tui/styles"
)

var helpClose = key.NewBinding(
	key.WithKeys("esc", "q", "?"),
	key.WithHelp("esc/q/?", "close"),
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Calculator", []helpEntry{
		{"hold ⌫ (mouse)", "Reveal the portal"},
		{"hold AC (mouse)", "Open the shortcut link"},
		{"7777 =", "Erase the whole vault"},
		{"y", "Copy the display"},
	}},
	{"Navigation", []helpEntry{
		{"h j k l / arrows", "Move between tiles"},
		{"enter / click", "Open folder or play file"},
		{"⌫ / -", "Parent folder"},
		{"click breadcrumb", "Jump to that folder"},
	}},
	{"Actions", []helpEntry{
		{"hold tile / m", "Context menu: delete, new folder, move"},
		{"n", "Create folder"},
		{"u", "Upload files"},
		{"s", "Lock settings"},
	}},
	{"General", []helpEntry{
		{"esc", "Back to the calculator"},
		{"ctrl+c", "Quit"},
	}},
}

const helpKeyWidth = 20

// HelpModel lists the portal gestures and keys
type HelpModel struct {
	ViewState
}

func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, helpClose) {
			return m, func() tea.Msg { return SwitchToPortalMsg{} }
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	vb := NewViewBuilder().Title("Portal Help")
	keyCol := styles.HelpKey.Width(helpKeyWidth)
	for _, section := range helpSections {
		vb.Line(styles.InputLabel.Render(section.title))
		for _, e := range section.entries {
			vb.Line("  " + keyCol.Render(e.keys) + styles.HelpDesc.Render(e.desc))
		}
		vb.BlankLine()
	}
	return vb.Help(helpClose).String()
}
