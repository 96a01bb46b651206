// Package host provides the platform capability available to a terminal
// program: no biometrics, a bell for haptics and the system opener for links.
package host

import (
	"context"
	"errors"
	"io"

	"calcvault/internal/ports"
)

// ErrUnsupported is returned for capabilities a terminal cannot offer
var ErrUnsupported = errors.New("not supported in a terminal")

// Terminal implements ports.Host
type Terminal struct {
	out    io.Writer
	opener ports.Opener
	bell   bool
}

// Ensure Terminal implements Host
var _ ports.Host = (*Terminal)(nil)

// NewTerminal creates a terminal host. Haptic feedback rings the bell on out
// when bell is set.
func NewTerminal(out io.Writer, opener ports.Opener, bell bool) *Terminal {
	return &Terminal{
		out:    out,
		opener: opener,
		bell:   bell,
	}
}

func (t *Terminal) IsBiometricAvailable() bool  { return false }
func (t *Terminal) IsBiometricTokenSaved() bool { return false }

func (t *Terminal) RequestAccess(context.Context, string) (bool, error) {
	return false, nil
}

func (t *Terminal) Authenticate(context.Context, string) (bool, string, error) {
	return false, "", nil
}

// ImpactOccurred rings the terminal bell
func (t *Terminal) ImpactOccurred(style string) {
	if !t.bell || t.out == nil {
		return
	}
	_, _ = io.WriteString(t.out, "\a")
}

// OpenLink opens url with the system opener
func (t *Terminal) OpenLink(url string) error {
	if t.opener == nil {
		return ErrUnsupported
	}
	return t.opener.OpenURL(url)
}

// ShowPopup is not available; callers render their own dialog
func (t *Terminal) ShowPopup(context.Context, ports.Popup) (string, error) {
	return "", ErrUnsupported
}
