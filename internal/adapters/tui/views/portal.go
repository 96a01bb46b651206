package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"calcvault/internal/adapters/tui/styles"
	"calcvault/internal/application/commands"
	"calcvault/internal/application/portal"
	"calcvault/internal/domain"
	"calcvault/internal/ports"
)

// PortalKeyMap defines key bindings for the portal view
type PortalKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Open     key.Binding
	Parent   key.Binding
	Menu     key.Binding
	New      key.Binding
	Upload   key.Binding
	Settings key.Binding
	Help     key.Binding
	Close    key.Binding
}

var PortalKeys = PortalKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Parent: key.NewBinding(
		key.WithKeys("backspace", "-"),
		key.WithHelp("⌫", "parent"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m", " "),
		key.WithHelp("m", "menu"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new folder"),
	),
	Upload: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "upload"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "lock"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "close"),
	),
}

// Tile is one folder or file shown in the grid
type Tile struct {
	ID       string
	Name     string
	IsFolder bool
	Kind     domain.MediaKind
}

// TilesOf lists a folder's content the way the grid shows it, folders first
func TilesOf(view *domain.FolderView) []Tile {
	if view == nil {
		return nil
	}
	tiles := make([]Tile, 0, len(view.Folders)+len(view.Files))
	for _, f := range view.Folders {
		tiles = append(tiles, Tile{ID: f.ID, Name: f.Name, IsFolder: true})
	}
	for _, f := range view.Files {
		tiles = append(tiles, Tile{ID: f.ID, Name: f.Name, Kind: domain.KindOf(f.MimeType)})
	}
	return tiles
}

func (t Tile) icon() string {
	if t.IsFolder {
		return "▤"
	}
	switch t.Kind {
	case domain.MediaImage:
		return "▣"
	case domain.MediaVideo:
		return "▶"
	case domain.MediaAudio:
		return "♪"
	default:
		return "≡"
	}
}

// Grid geometry in terminal cells. A tile is a bordered box followed by a one
// column gap; the grid starts two lines below the breadcrumb.
const (
	tileWidth   = 16
	tileHeight  = 4
	gridOffsetY = 2
)

type crumb struct {
	ID    string
	Label string
	Start int
	End   int
}

type folderLoadedMsg struct {
	view *domain.FolderView
	err  error
}

// PortalModel is the model for the folder grid
type PortalModel struct {
	ViewState
	ctrl      *portal.Controller
	opener    ports.Opener
	hold      Hold
	log       zerolog.Logger
	exportDir string

	view    *domain.FolderView
	tiles   []Tile
	cursor  int
	loading bool
	spinner spinner.Model

	pressing bool
	pressed  string // ID of the tile under the pointer
}

// NewPortalModel creates a portal view. hold recognizes the long press that
// opens a tile's context menu; files open through opener after being exported
// to exportDir (a temporary directory when empty).
func NewPortalModel(ctrl *portal.Controller, opener ports.Opener, hold Hold, exportDir string, log zerolog.Logger) *PortalModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.PortalAccent)

	return &PortalModel{
		ctrl:      ctrl,
		opener:    opener,
		hold:      hold,
		log:       log,
		exportDir: exportDir,
		spinner:   s,
	}
}

// Init initializes the portal view
func (m *PortalModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload fetches the active folder again
func (m *PortalModel) Reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.load)
}

// Reset forgets the previous session's folder and cursor
func (m *PortalModel) Reset() {
	m.view = nil
	m.tiles = nil
	m.cursor = 0
	m.pressing = false
	m.ClearMessage()
}

func (m *PortalModel) load() tea.Msg {
	view, err := m.ctrl.View(context.Background())
	return folderLoadedMsg{view: view, err: err}
}

// Tiles returns the tiles currently shown
func (m *PortalModel) Tiles() []Tile {
	return m.tiles
}

// Cursor returns the index of the selected tile
func (m *PortalModel) Cursor() int {
	return m.cursor
}

// Loading reports whether a reload is in flight
func (m *PortalModel) Loading() bool {
	return m.loading
}

// Update handles messages for the portal view
func (m *PortalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case folderLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.view = msg.view
		m.tiles = TilesOf(msg.view)
		m.cursor = clamp(m.cursor, len(m.tiles))
		return m, nil

	case ItemHoldMsg:
		if !m.pressing {
			return m, nil
		}
		m.pressing = false
		m.hold.Release()
		idx, ok := m.tileIndex(m.pressed)
		if !ok {
			return m, nil
		}
		return m, m.openMenu(idx)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		m.ClearMessage()
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *PortalModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	cols := m.columns()

	switch {
	case key.Matches(msg, PortalKeys.Close):
		m.ctrl.Close()
		return func() tea.Msg { return SwitchToCalculatorMsg{} }

	case key.Matches(msg, PortalKeys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, PortalKeys.Right):
		m.moveCursor(1)
	case key.Matches(msg, PortalKeys.Up):
		m.moveCursor(-cols)
	case key.Matches(msg, PortalKeys.Down):
		m.moveCursor(cols)

	case key.Matches(msg, PortalKeys.Open):
		if len(m.tiles) > 0 {
			return m.activate(m.cursor)
		}

	case key.Matches(msg, PortalKeys.Parent):
		return m.parent()

	case key.Matches(msg, PortalKeys.Menu):
		if len(m.tiles) == 0 {
			return func() tea.Msg { return SwitchToMenuMsg{} }
		}
		return m.openMenu(m.cursor)

	case key.Matches(msg, PortalKeys.New):
		return func() tea.Msg { return SwitchToCreateFolderMsg{} }

	case key.Matches(msg, PortalKeys.Upload):
		return func() tea.Msg { return SwitchToUploadMsg{} }

	case key.Matches(msg, PortalKeys.Settings):
		return func() tea.Msg { return SwitchToSettingsMsg{} }

	case key.Matches(msg, PortalKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	}
	return nil
}

func (m *PortalModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	idx, onTile := m.TileAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if id, ok := m.CrumbAt(msg.X, msg.Y); ok {
			m.navigate(id)
			return m.Reload()
		}
		if !onTile {
			return nil
		}
		m.cursor = idx
		m.pressing = true
		m.pressed = m.tiles[idx].ID
		m.hold.Press()

	case tea.MouseActionMotion:
		if m.pressing && (!onTile || m.tiles[idx].ID != m.pressed) {
			m.pressing = false
			m.hold.Cancel()
		}

	case tea.MouseActionRelease:
		if !m.pressing {
			return nil
		}
		m.pressing = false
		if m.hold.Release() {
			return nil
		}
		if idx, ok := m.tileIndex(m.pressed); ok {
			return m.activate(idx)
		}
	}
	return nil
}

// tileIndex finds a tile by ID in the current grid
func (m *PortalModel) tileIndex(id string) (int, bool) {
	for i, t := range m.tiles {
		if t.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (m *PortalModel) moveCursor(delta int) {
	if len(m.tiles) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= len(m.tiles) {
		return
	}
	m.cursor = next
}

func (m *PortalModel) navigate(folderID string) {
	m.ctrl.NavigateTo(folderID)
	m.cursor = 0
}

func (m *PortalModel) parent() tea.Cmd {
	m.cursor = 0
	m.loading = true
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		if err := m.ctrl.Up(context.Background()); err != nil {
			return folderLoadedMsg{err: err}
		}
		return m.load()
	})
}

func (m *PortalModel) openMenu(idx int) tea.Cmd {
	tile := m.tiles[idx]
	m.ctrl.Select(tile.ID)
	return func() tea.Msg {
		return SwitchToMenuMsg{Item: &tile}
	}
}

// activate opens a folder or plays a file
func (m *PortalModel) activate(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.tiles) {
		return nil
	}
	tile := m.tiles[idx]
	if tile.IsFolder {
		m.navigate(tile.ID)
		return m.Reload()
	}
	return m.openFile(tile)
}

func (m *PortalModel) openFile(tile Tile) tea.Cmd {
	return func() tea.Msg {
		result, err := m.ctrl.Export(context.Background(), tile.ID, m.exportDir)
		if err != nil {
			return ActionDoneMsg{Err: err}
		}
		if !result.Applied {
			return ActionDoneMsg{Result: result.Result}
		}
		if err := m.opener.OpenFile(result.Path); err != nil {
			return ActionDoneMsg{Err: fmt.Errorf("failed to open %s: %w", tile.Name, err)}
		}
		m.log.Debug().Str("file", tile.ID).Stringer("kind", result.Kind).Msg("file opened")
		return ActionDoneMsg{Result: commands.Result{Applied: true, Message: "Opened " + tile.Name}}
	}
}

// columns is the number of tiles per grid row
func (m *PortalModel) columns() int {
	if m.Width <= 0 {
		return 4
	}
	cols := (m.Width - 2*originX + 1) / (tileWidth + 1)
	return max(cols, 1)
}

// TileAt returns the index of the tile under the screen cell (x, y)
func (m *PortalModel) TileAt(x, y int) (int, bool) {
	relX := x - originX
	relY := y - originY - gridOffsetY
	if relX < 0 || relY < 0 || relX%(tileWidth+1) == tileWidth {
		return 0, false
	}
	col := relX / (tileWidth + 1)
	if col >= m.columns() {
		return 0, false
	}
	idx := (relY/tileHeight)*m.columns() + col
	if idx >= len(m.tiles) {
		return 0, false
	}
	return idx, true
}

// CrumbAt returns the folder of the breadcrumb segment under (x, y)
func (m *PortalModel) CrumbAt(x, y int) (string, bool) {
	if y != originY {
		return "", false
	}
	for _, c := range m.crumbs() {
		if x >= originX+c.Start && x < originX+c.End {
			return c.ID, true
		}
	}
	return "", false
}

func (m *PortalModel) crumbs() []crumb {
	result := []crumb{{ID: domain.RootID, Label: "Portal", Start: 0, End: lipgloss.Width("Portal")}}
	if m.view == nil {
		return result
	}
	pos := result[0].End
	for _, f := range m.view.Path {
		pos += lipgloss.Width(crumbSeparator)
		w := lipgloss.Width(f.Name)
		result = append(result, crumb{ID: f.ID, Label: f.Name, Start: pos, End: pos + w})
		pos += w
	}
	return result
}

// View renders the portal view
func (m *PortalModel) View() string {
	var b strings.Builder

	crumbs := m.crumbs()
	labels := make([]string, len(crumbs))
	for i, c := range crumbs {
		labels[i] = c.Label
	}
	b.WriteString(RenderCrumbs(labels))
	b.WriteString("\n\n")

	switch {
	case m.view == nil && m.loading:
		b.WriteString(m.spinner.View() + " " + RenderMuted("Loading..."))
		b.WriteString("\n\n")
	case m.view != nil && m.view.Empty():
		b.WriteString(styles.EmptyState.Render("Empty here. Upload files or create a folder."))
		b.WriteString("\n\n")
	case m.view != nil:
		b.WriteString(m.renderGrid())
		b.WriteString("\n\n")
	}

	if m.loading && m.view != nil {
		b.WriteString(m.spinner.View())
		b.WriteString("\n")
	}
	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderHelpLine(PortalKeys.Open, PortalKeys.Parent, PortalKeys.Menu, PortalKeys.New, PortalKeys.Upload))
	b.WriteString("\n")
	b.WriteString(RenderHelpLine(PortalKeys.Settings, PortalKeys.Help, PortalKeys.Close))

	return styles.App.Render(b.String())
}

func (m *PortalModel) renderGrid() string {
	cols := m.columns()
	var rows []string

	for start := 0; start < len(m.tiles); start += cols {
		end := min(start+cols, len(m.tiles))
		cells := make([]string, 0, 2*cols)
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, " ")
			}
			cells = append(cells, m.renderTile(m.tiles[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *PortalModel) renderTile(t Tile, selected bool) string {
	style := styles.Tile
	if selected {
		style = styles.TileSelected
	}

	icon := t.icon()
	if t.IsFolder {
		icon = styles.TileFolder.Render(icon)
	}
	name := truncate(t.Name, tileWidth-2)

	return style.Width(tileWidth - 2).Render(icon + "\n" + name)
}

func clamp(cursor, total int) int {
	if total == 0 || cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}
