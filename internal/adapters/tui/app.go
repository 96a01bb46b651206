package tui

import (
	"context"
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"calcvault/internal/adapters/tui/views"
	"calcvault/internal/application"
	"calcvault/internal/application/auth"
	"calcvault/internal/application/gesture"
	"calcvault/internal/application/portal"
	"calcvault/internal/config"
	"calcvault/internal/domain"
	"calcvault/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewCalculator ViewState = iota
	ViewLock
	ViewPortal
	ViewMenu
	ViewPicker
	ViewCreateFolder
	ViewUpload
	ViewSettings
	ViewHelp
)

// Options wires the application to the vault and the platform
type Options struct {
	Vault  *application.Vault
	Portal *portal.Controller
	Host   ports.Host // nil when the platform has no capability
	Opener ports.Opener
	Config *config.Config
	Log    zerolog.Logger

	// Clock drives the long-press timers; nil means the wall clock
	Clock gesture.Clock
	// ExportDir receives files opened from the portal; empty means a temp dir
	ExportDir string
}

// App is the main TUI application model
type App struct {
	vault  *application.Vault
	ctrl   *portal.Controller
	host   ports.Host
	opener ports.Opener
	cfg    *config.Config
	log    zerolog.Logger

	sendMu sync.Mutex
	send   func(tea.Msg)

	state        ViewState
	calculator   *views.CalculatorModel
	lock         *views.LockModel
	portalView   *views.PortalModel
	menu         *views.MenuModel
	picker       *views.PickerModel
	createFolder *views.CreateFolderModel
	upload       *views.UploadModel
	settings     *views.SettingsModel
	help         *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application showing the calculator
func NewApp(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	a := &App{
		vault:  opts.Vault,
		ctrl:   opts.Portal,
		host:   opts.Host,
		opener: opts.Opener,
		cfg:    cfg,
		log:    opts.Log,
		state:  ViewCalculator,
	}

	var detectorOpts []gesture.Option
	if opts.Clock != nil {
		detectorOpts = append(detectorOpts, gesture.WithClock(opts.Clock))
	}
	withHaptics := append(slices.Clip(detectorOpts), gesture.WithFeedback(a.haptic))

	reveal := gesture.NewDetector(cfg.RevealHold(), func() { a.emit(views.RevealPortalMsg{}) }, withHaptics...)
	link := gesture.NewDetector(cfg.LinkHold(), func() { a.emit(views.OpenLinkMsg{}) }, withHaptics...)
	item := gesture.NewDetector(cfg.ItemHold(), func() { a.emit(views.ItemHoldMsg{}) }, detectorOpts...)

	a.calculator = views.NewCalculatorModel(domain.NewCalculator(), reveal, link)
	a.lock = views.NewLockModel(opts.Portal)
	a.portalView = views.NewPortalModel(opts.Portal, opts.Opener, item, opts.ExportDir, opts.Log)
	a.menu = views.NewMenuModel(opts.Portal)
	a.picker = views.NewPickerModel(opts.Portal)
	a.createFolder = views.NewCreateFolderModel(opts.Portal)
	a.upload = views.NewUploadModel(opts.Portal)
	a.settings = views.NewSettingsModel(opts.Vault, opts.Host)
	a.help = views.NewHelpModel()

	opts.Vault.Subscribe(func(*domain.Document) {
		a.emit(views.VaultChangedMsg{})
	})

	return a
}

// SetSender connects gesture timers and vault notifications to the running
// program, typically with tea.Program.Send
func (a *App) SetSender(send func(tea.Msg)) {
	a.sendMu.Lock()
	defer a.sendMu.Unlock()
	a.send = send
}

func (a *App) emit(msg tea.Msg) {
	a.sendMu.Lock()
	send := a.send
	a.sendMu.Unlock()

	if send != nil {
		send(msg)
	}
}

func (a *App) haptic() {
	if a.host != nil {
		a.host.ImpactOccurred(ports.ImpactMedium)
	}
}

// State returns the current view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.calculator.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.calculator.SetSize(msg.Width, msg.Height)
		a.lock.SetSize(msg.Width, msg.Height)
		a.portalView.SetSize(msg.Width, msg.Height)
		a.menu.SetSize(msg.Width, msg.Height)
		a.picker.SetSize(msg.Width, msg.Height)
		a.createFolder.SetSize(msg.Width, msg.Height)
		a.settings.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		_, cmd := a.upload.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	// Gestures
	case views.RevealPortalMsg:
		if a.state != ViewCalculator {
			return a, nil
		}
		return a, a.openPortal

	case views.OpenLinkMsg:
		if a.state != ViewCalculator {
			return a, nil
		}
		return a, a.openLink

	// Portal lifecycle
	case views.PortalOpenedMsg:
		return a, a.portalOpened(msg)

	case views.WipeRequestedMsg:
		return a, a.wipe

	case views.WipeDoneMsg:
		if msg.Err != nil {
			a.log.Error().Err(msg.Err).Msg("wipe failed")
		}
		a.state = ViewCalculator
		a.calculator.Reset()
		a.portalView.Reset()
		return a, nil

	case views.VaultChangedMsg:
		if a.state == ViewPortal && a.ctrl.State() == auth.Unlocked {
			return a, a.portalView.Reload()
		}
		return a, nil

	// View switching messages
	case views.SwitchToCalculatorMsg:
		a.state = ViewCalculator
		a.portalView.Reset()
		return a, nil

	case views.SwitchToPortalMsg:
		return a, a.showPortal()

	case views.SwitchToMenuMsg:
		a.state = ViewMenu
		a.menu.SetItem(msg.Item)
		return a, a.menu.Init()

	case views.SwitchToPickerMsg:
		a.state = ViewPicker
		a.picker.SetFile(msg.File)
		return a, a.picker.Init()

	case views.SwitchToCreateFolderMsg:
		a.state = ViewCreateFolder
		a.createFolder.Reset()
		return a, a.createFolder.Init()

	case views.SwitchToUploadMsg:
		a.state = ViewUpload
		return a, a.upload.Open()

	case views.SwitchToSettingsMsg:
		a.state = ViewSettings
		return a, a.settings.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	// Mutation results
	case views.ActionDoneMsg:
		if msg.Err != nil {
			a.log.Error().Err(msg.Err).Msg("portal action failed")
		}
		a.portalView.ShowResult(&msg.Result, msg.Err)
		return a, a.showPortal()

	case views.UploadDoneMsg:
		a.uploadDone(msg)
		if a.state == ViewPortal {
			return a, a.portalView.Reload()
		}
		return a, nil
	}

	// Input goes to the current view only; anything else also reaches the
	// portal so its loads and spinner finish behind menus and prompts.
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return a, a.updateCurrent(msg)
	}

	cmds := []tea.Cmd{a.updateCurrent(msg)}
	if a.state != ViewPortal {
		_, cmd := a.portalView.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.state {
	case ViewLock:
		_, cmd = a.lock.Update(msg)
	case ViewPortal:
		_, cmd = a.portalView.Update(msg)
	case ViewMenu:
		_, cmd = a.menu.Update(msg)
	case ViewPicker:
		_, cmd = a.picker.Update(msg)
	case ViewCreateFolder:
		_, cmd = a.createFolder.Update(msg)
	case ViewUpload:
		_, cmd = a.upload.Update(msg)
	case ViewSettings:
		_, cmd = a.settings.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	default:
		_, cmd = a.calculator.Update(msg)
	}
	return cmd
}

func (a *App) showPortal() tea.Cmd {
	a.state = ViewPortal
	return a.portalView.Reload()
}

func (a *App) openPortal() tea.Msg {
	state, err := a.ctrl.Open(context.Background())
	return views.PortalOpenedMsg{State: state, Err: err}
}

func (a *App) portalOpened(msg views.PortalOpenedMsg) tea.Cmd {
	if msg.Err != nil {
		a.log.Error().Err(msg.Err).Msg("failed to open portal")
		return nil
	}

	a.calculator.CancelPress()
	switch msg.State {
	case auth.Unlocked:
		a.portalView.Reset()
		return a.showPortal()
	case auth.Challenging:
		a.state = ViewLock
		a.lock.Reset()
		return a.lock.Init()
	default:
		return nil
	}
}

func (a *App) openLink() tea.Msg {
	url := a.cfg.LinkURL
	if a.host != nil {
		err := a.host.OpenLink(url)
		if err == nil {
			return nil
		}
		a.log.Debug().Err(err).Msg("host could not open link, using system opener")
	}
	if a.opener == nil {
		return nil
	}
	if err := a.opener.OpenURL(url); err != nil {
		a.log.Warn().Err(err).Str("url", url).Msg("failed to open link")
	}
	return nil
}

func (a *App) wipe() tea.Msg {
	return views.WipeDoneMsg{Err: a.ctrl.Wipe(context.Background())}
}

func (a *App) uploadDone(msg views.UploadDoneMsg) {
	if msg.Err != nil {
		a.log.Error().Err(msg.Err).Msg("upload failed")
		a.portalView.ShowResult(nil, msg.Err)
		return
	}
	for _, name := range msg.Result.Failed {
		a.log.Warn().Str("file", name).Msg("upload read failed")
	}
	a.portalView.ShowResult(&msg.Result.Result, nil)
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewLock:
		return a.lock.View()
	case ViewPortal:
		return a.portalView.View()
	case ViewMenu:
		return a.menu.View()
	case ViewPicker:
		return a.picker.View()
	case ViewCreateFolder:
		return a.createFolder.View()
	case ViewUpload:
		return a.upload.View()
	case ViewSettings:
		return a.settings.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.calculator.View()
	}
}
