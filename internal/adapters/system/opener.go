package system

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"

	"calcvault/internal/ports"
)

// Opener implements ports.Opener with the platform's default handler
type Opener struct {
	goos string
	run  func(cmd *exec.Cmd) error
}

// Ensure Opener implements ports.Opener
var _ ports.Opener = (*Opener)(nil)

// NewOpener creates an opener for the running platform
func NewOpener() *Opener {
	return &Opener{
		goos: runtime.GOOS,
		run:  startDetached,
	}
}

// startDetached starts cmd and reaps it in the background
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// OpenURL opens an http(s) URL in the browser. $BROWSER wins when set.
func (o *Opener) OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: unsupported scheme", rawURL)
	}

	if browser := os.Getenv("BROWSER"); browser != "" {
		return o.run(exec.Command(browser, rawURL))
	}

	cmd, err := o.Command(rawURL)
	if err != nil {
		return err
	}
	return o.run(cmd)
}

// OpenFile opens a local file with its default application
func (o *Opener) OpenFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}

	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return o.run(cmd)
}

// Command returns the command that opens target on this platform
func (o *Opener) Command(target string) (*exec.Cmd, error) {
	switch o.goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", target), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", target), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}
