package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"calcvault/internal/adapters/host"
	"calcvault/internal/adapters/storage"
	"calcvault/internal/adapters/system"
	"calcvault/internal/adapters/tui"
	"calcvault/internal/application"
	"calcvault/internal/application/auth"
	"calcvault/internal/application/portal"
	"calcvault/internal/config"
	"calcvault/internal/domain"
	"calcvault/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logPath := cfg.LogFile
	if logPath == "" {
		logPath = filepath.Join(config.StateDir(), "calcvault.log")
	}
	log, logFile, err := logging.File(logPath, cfg.LogLevel, "tui")
	if err != nil {
		return err
	}
	defer logFile.Close()

	store, closeStore, err := storage.Open(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// Initialize adapters
	opener := system.NewOpener()
	terminal := host.NewTerminal(os.Stdout, opener, cfg.Bell)

	vault := application.NewVault(store, log)
	ctrl := portal.NewController(vault, auth.NewGate(terminal, log), domain.UUIDGenerator{}, log)

	app := tui.NewApp(tui.Options{
		Vault:  vault,
		Portal: ctrl,
		Host:   terminal,
		Opener: opener,
		Config: cfg,
		Log:    log,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	app.SetSender(p.Send)

	log.Info().Str("store", cfg.Store).Msg("starting")
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
