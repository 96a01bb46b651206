package views

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calcvault/internal/adapters/tui/styles"
	"calcvault/internal/domain"
)

// CalculatorKeyMap defines key bindings for the calculator view
type CalculatorKeyMap struct {
	Add       key.Binding
	Subtract  key.Binding
	Multiply  key.Binding
	Divide    key.Binding
	Equals    key.Binding
	Decimal   key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Sign      key.Binding
	Percent   key.Binding
	Copy      key.Binding
	Quit      key.Binding
}

var CalculatorKeys = CalculatorKeyMap{
	Add: key.NewBinding(
		key.WithKeys("+"),
	),
	Subtract: key.NewBinding(
		key.WithKeys("-"),
	),
	Multiply: key.NewBinding(
		key.WithKeys("*", "x"),
	),
	Divide: key.NewBinding(
		key.WithKeys("/"),
	),
	Equals: key.NewBinding(
		key.WithKeys("=", "enter"),
	),
	Decimal: key.NewBinding(
		key.WithKeys(".", ","),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc", "c"),
		key.WithHelp("c", "clear"),
	),
	Sign: key.NewBinding(
		key.WithKeys("n"),
	),
	Percent: key.NewBinding(
		key.WithKeys("%"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type buttonAction int

const (
	actionDigit buttonAction = iota
	actionOperator
	actionEquals
	actionClear
	actionBackspace
	actionToggleSign
	actionPercent
)

// Button is one key of the on-screen keypad
type Button struct {
	Label  string
	Value  string
	action buttonAction
}

func (b Button) role() string {
	switch b.action {
	case actionDigit:
		return "digit"
	case actionOperator, actionEquals:
		return "operator"
	default:
		return "function"
	}
}

// Keypad geometry in terminal cells. Each button is cellWidth-1 columns wide
// followed by a one column gap.
const (
	cellWidth     = 8
	cellHeight    = 3
	displayHeight = 3
	keypadWidth   = 4*cellWidth - 1
)

// Keypad is the phone calculator layout. Holding backspace reveals the portal
// and holding AC opens the configured link.
var Keypad = [][]Button{
	{{Label: "AC", action: actionClear}, {Label: "±", action: actionToggleSign}, {Label: "%", action: actionPercent}, {Label: "÷", Value: "/", action: actionOperator}},
	{{Label: "7", Value: "7"}, {Label: "8", Value: "8"}, {Label: "9", Value: "9"}, {Label: "×", Value: "*", action: actionOperator}},
	{{Label: "4", Value: "4"}, {Label: "5", Value: "5"}, {Label: "6", Value: "6"}, {Label: "−", Value: "-", action: actionOperator}},
	{{Label: "1", Value: "1"}, {Label: "2", Value: "2"}, {Label: "3", Value: "3"}, {Label: "+", Value: "+", action: actionOperator}},
	{{Label: "⌫", action: actionBackspace}, {Label: "0", Value: "0"}, {Label: ",", Value: "."}, {Label: "=", action: actionEquals}},
}

// ButtonAt returns the keypad button under the screen cell (x, y)
func ButtonAt(x, y int) (row, col int, ok bool) {
	relX := x - originX
	relY := y - originY - displayHeight
	if relX < 0 || relY < 0 {
		return 0, 0, false
	}
	if relX%cellWidth == cellWidth-1 {
		return 0, 0, false
	}
	row, col = relY/cellHeight, relX/cellWidth
	if row >= len(Keypad) || col >= len(Keypad[row]) {
		return 0, 0, false
	}
	return row, col, true
}

// CalculatorModel is the model for the calculator view, the face of the app
type CalculatorModel struct {
	ViewState
	calc   *domain.Calculator
	reveal Hold
	link   Hold

	pressing   bool
	pressedRow int
	pressedCol int
}

// NewCalculatorModel creates a calculator view. reveal and link recognize the
// long presses on backspace and AC.
func NewCalculatorModel(calc *domain.Calculator, reveal, link Hold) *CalculatorModel {
	return &CalculatorModel{
		calc:   calc,
		reveal: reveal,
		link:   link,
	}
}

// Init initializes the calculator view
func (m *CalculatorModel) Init() tea.Cmd {
	return nil
}

// Reset shows 0 again, as after a fresh start
func (m *CalculatorModel) Reset() {
	m.calc.Clear()
	m.release()
}

// CancelPress drops a pointer press whose release will land on another view
func (m *CalculatorModel) CancelPress() {
	m.release()
}

// Update handles messages for the calculator view
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *CalculatorModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, CalculatorKeys.Quit):
		return tea.Quit
	case key.Matches(msg, CalculatorKeys.Add):
		return m.outcome(m.calc.ChooseOperation("+"))
	case key.Matches(msg, CalculatorKeys.Subtract):
		return m.outcome(m.calc.ChooseOperation("-"))
	case key.Matches(msg, CalculatorKeys.Multiply):
		return m.outcome(m.calc.ChooseOperation("*"))
	case key.Matches(msg, CalculatorKeys.Divide):
		return m.outcome(m.calc.ChooseOperation("/"))
	case key.Matches(msg, CalculatorKeys.Equals):
		return m.outcome(m.calc.Evaluate())
	case key.Matches(msg, CalculatorKeys.Decimal):
		m.calc.AppendDigit(".")
	case key.Matches(msg, CalculatorKeys.Backspace):
		m.calc.DeleteLast()
	case key.Matches(msg, CalculatorKeys.Clear):
		m.calc.Clear()
	case key.Matches(msg, CalculatorKeys.Sign):
		m.calc.ToggleSign()
	case key.Matches(msg, CalculatorKeys.Percent):
		m.calc.Percent()
	case key.Matches(msg, CalculatorKeys.Copy):
		_ = clipboard.WriteAll(m.calc.Current())
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			m.calc.AppendDigit(s)
		}
	}
	return nil
}

func (m *CalculatorModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	row, col, ok := ButtonAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !ok {
			return nil
		}
		m.release()
		m.pressing = true
		m.pressedRow, m.pressedCol = row, col
		switch Keypad[row][col].action {
		case actionBackspace:
			m.reveal.Press()
		case actionClear:
			m.link.Press()
		}

	case tea.MouseActionMotion:
		if m.pressing && (!ok || row != m.pressedRow || col != m.pressedCol) {
			m.release()
		}

	case tea.MouseActionRelease:
		if !m.pressing {
			return nil
		}
		b := Keypad[m.pressedRow][m.pressedCol]
		m.pressing = false

		switch b.action {
		case actionBackspace:
			if m.reveal.Release() {
				return nil
			}
		case actionClear:
			if m.link.Release() {
				return nil
			}
		}
		return m.click(b)
	}
	return nil
}

// release drops the current press without clicking, as when the pointer
// leaves the button
func (m *CalculatorModel) release() {
	if !m.pressing {
		return
	}
	m.pressing = false
	switch Keypad[m.pressedRow][m.pressedCol].action {
	case actionBackspace:
		m.reveal.Cancel()
	case actionClear:
		m.link.Cancel()
	}
}

func (m *CalculatorModel) click(b Button) tea.Cmd {
	switch b.action {
	case actionDigit:
		m.calc.AppendDigit(b.Value)
	case actionOperator:
		return m.outcome(m.calc.ChooseOperation(b.Value))
	case actionEquals:
		return m.outcome(m.calc.Evaluate())
	case actionClear:
		m.calc.Clear()
	case actionBackspace:
		m.calc.DeleteLast()
	case actionToggleSign:
		m.calc.ToggleSign()
	case actionPercent:
		m.calc.Percent()
	}
	return nil
}

func (m *CalculatorModel) outcome(o domain.Outcome) tea.Cmd {
	if !o.WipeRequested {
		return nil
	}
	return func() tea.Msg {
		return WipeRequestedMsg{}
	}
}

// View renders the calculator view
func (m *CalculatorModel) View() string {
	var b strings.Builder

	pending := strings.Replace(m.calc.Pending(), "*", "×", 1)
	pending = strings.Replace(pending, "/", "÷", 1)

	b.WriteString(styles.DisplayPending.Width(keypadWidth).Render(lastRunes(pending, keypadWidth)))
	b.WriteString("\n")
	b.WriteString(styles.DisplayValue.Width(keypadWidth).Render(lastRunes(m.calc.Display(), keypadWidth)))
	b.WriteString("\n\n")

	rows := make([]string, 0, len(Keypad))
	for r, buttons := range Keypad {
		cells := make([]string, 0, 2*len(buttons))
		for c, button := range buttons {
			if c > 0 {
				cells = append(cells, " ")
			}
			cells = append(cells, m.renderButton(button, m.pressing && r == m.pressedRow && c == m.pressedCol))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(CalculatorKeys.Clear, CalculatorKeys.Copy, CalculatorKeys.Quit))

	return styles.App.Render(b.String())
}

func (m *CalculatorModel) renderButton(b Button, pressed bool) string {
	style := styles.Key
	bg := styles.KeyColor(b.role())
	if pressed {
		style = styles.KeyPressed
		if b.action == actionBackspace || b.action == actionClear {
			bg = styles.KeyHeld
		}
	}
	return style.
		Width(cellWidth - 1).
		Height(cellHeight).
		Background(bg).
		Foreground(styles.White).
		Render(b.Label)
}

// lastRunes keeps the rightmost n runes, the way a calculator display scrolls
func lastRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
