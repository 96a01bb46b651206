// Package auth decides whether the vault content may be shown.
package auth

import (
	"context"
	"crypto/subtle"
	"sync"

	"github.com/rs/zerolog"

	"calcvault/internal/domain"
	"calcvault/internal/ports"
)

// EmergencySecret always unlocks a locked vault, whatever secret is stored.
// It is a deliberate product escape hatch and a known weakness.
const EmergencySecret = "0000"

// State is the phase of an unlock attempt
type State int

const (
	Locked State = iota
	Challenging
	Unlocked
)

func (s State) String() string {
	switch s {
	case Challenging:
		return "challenging"
	case Unlocked:
		return "unlocked"
	default:
		return "locked"
	}
}

// Gate is the lock state machine. Unlocked lasts until Reset; there is no
// session kept across resets. Failed attempts never lock the user out.
type Gate struct {
	host ports.Host
	log  zerolog.Logger

	mu    sync.Mutex
	state State
}

// NewGate creates a locked gate. host may be nil when no biometric
// capability exists.
func NewGate(host ports.Host, log zerolog.Logger) *Gate {
	return &Gate{host: host, log: log}
}

// Begin evaluates an entry request against the document's lock settings.
// With the lock disabled it unlocks immediately. Otherwise it tries a
// biometric check when a token was saved, and leaves the gate Challenging
// for secret entry when that is unavailable or fails.
func (g *Gate) Begin(ctx context.Context, doc *domain.Document) State {
	if !doc.IsLockEnabled {
		g.set(Unlocked)
		return Unlocked
	}

	g.set(Challenging)

	if g.host == nil || !g.host.IsBiometricTokenSaved() {
		return Challenging
	}

	ok, _, err := g.host.Authenticate(ctx, "Unlock the vault")
	if err != nil {
		g.log.Warn().Err(err).Msg("biometric check failed, falling back to secret")
		return Challenging
	}
	if !ok {
		return Challenging
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	// A Reset while the host was prompting wins
	if g.state != Challenging {
		return g.state
	}
	g.state = Unlocked
	return Unlocked
}

// SubmitSecret checks a secret entered while Challenging. It accepts the
// stored secret (when one is set) or EmergencySecret. A mismatch keeps the
// gate Challenging so the user can retry.
func (g *Gate) SubmitSecret(doc *domain.Document, value string) State {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != Challenging {
		return g.state
	}
	if Matches(doc.Secret, value) {
		g.state = Unlocked
	}
	return g.state
}

// Reset locks the gate again
func (g *Gate) Reset() {
	g.set(Locked)
}

// State returns the current phase
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gate) set(s State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = s
}

// Matches reports whether value unlocks a vault whose stored secret is stored
func Matches(stored, value string) bool {
	if equal(value, EmergencySecret) {
		return true
	}
	return stored != "" && equal(value, stored)
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
