package ports

import "context"

// Haptic impact styles
const (
	ImpactLight  = "light"
	ImpactMedium = "medium"
	ImpactHeavy  = "heavy"
)

// Popup describes a native dialog the host may show
type Popup struct {
	Title   string
	Message string
	Buttons []string
}

// Host is the optional platform capability: biometrics, haptics and
// navigation. Every call is best-effort; a nil Host means the capability is
// absent and callers fall back to secret entry and the system opener.
type Host interface {
	// IsBiometricAvailable reports whether biometric hardware can be used
	IsBiometricAvailable() bool

	// IsBiometricTokenSaved reports whether a biometric token was enrolled before
	IsBiometricTokenSaved() bool

	// RequestAccess asks the user to allow biometric use
	RequestAccess(ctx context.Context, reason string) (bool, error)

	// Authenticate runs a biometric check and returns the saved token on success
	Authenticate(ctx context.Context, reason string) (bool, string, error)

	// ImpactOccurred triggers haptic feedback
	ImpactOccurred(style string)

	// OpenLink opens a URL outside the app
	OpenLink(url string) error

	// ShowPopup shows a native dialog and returns the pressed button
	ShowPopup(ctx context.Context, popup Popup) (string, error)
}
