package host

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"calcvault/internal/ports"
)

type fakeOpener struct {
	urls []string
}

func (o *fakeOpener) OpenURL(url string) error {
	o.urls = append(o.urls, url)
	return nil
}

func (o *fakeOpener) OpenFile(string) error { return nil }

func TestTerminal_NoBiometrics(t *testing.T) {
	term := NewTerminal(nil, nil, false)
	if term.IsBiometricAvailable() || term.IsBiometricTokenSaved() {
		t.Errorf("terminal must not report biometrics")
	}
	if ok, _ := term.RequestAccess(context.Background(), "x"); ok {
		t.Errorf("RequestAccess granted")
	}
	if ok, _, _ := term.Authenticate(context.Background(), "x"); ok {
		t.Errorf("Authenticate succeeded")
	}
}

func TestTerminal_ImpactRingsBell(t *testing.T) {
	var buf bytes.Buffer

	NewTerminal(&buf, nil, true).ImpactOccurred(ports.ImpactMedium)
	if buf.String() != "\a" {
		t.Errorf("output = %q, want bell", buf.String())
	}

	buf.Reset()
	NewTerminal(&buf, nil, false).ImpactOccurred(ports.ImpactMedium)
	if buf.Len() != 0 {
		t.Errorf("bell disabled but got %q", buf.String())
	}
}

func TestTerminal_OpenLink(t *testing.T) {
	opener := &fakeOpener{}
	term := NewTerminal(nil, opener, false)

	if err := term.OpenLink("https://web.telegram.org"); err != nil {
		t.Fatalf("OpenLink failed: %v", err)
	}
	if len(opener.urls) != 1 || opener.urls[0] != "https://web.telegram.org" {
		t.Errorf("unexpected urls %v", opener.urls)
	}

	if err := NewTerminal(nil, nil, false).OpenLink("https://x"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported without an opener, got %v", err)
	}
}

func TestTerminal_ShowPopupUnsupported(t *testing.T) {
	_, err := NewTerminal(nil, nil, false).ShowPopup(context.Background(), ports.Popup{Title: "x"})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}
