package views

import "calcvault/internal/application/commands"

// ViewState is embedded by every view for its size and status line
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage replaces the status line
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

func (s *ViewState) ClearMessage() {
	s.SetMessage("", false)
}

// ShowResult reports the outcome of a command. A no-op result is shown
// as an error so the user sees why nothing changed.
func (s *ViewState) ShowResult(result *commands.Result, err error) {
	switch {
	case err != nil:
		s.SetMessage(err.Error(), true)
	case result == nil:
		s.ClearMessage()
	default:
		s.SetMessage(result.Message, !result.Applied)
	}
}

// Hold is a long-press recognizer driven by mouse press and release events
type Hold interface {
	Press()
	// Release reports whether the hold already fired
	Release() bool
	Cancel()
}

// Origin of the content inside styles.App padding
const (
	originX = 2
	originY = 1
)
