package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"calcvault/internal/adapters/storage"
	"calcvault/internal/application"
	"calcvault/internal/application/auth"
	"calcvault/internal/config"
	"calcvault/internal/domain"
	"calcvault/internal/logging"
)

var (
	configPath string
	dataPath   string
	secret     string

	cfg        *config.Config
	log        zerolog.Logger
	vault      *application.Vault
	closeStore func() error
)

// Commands that never touch the vault
var noStore = map[string]bool{
	"help":       true,
	"completion": true,
	"init":       true,
	"path":       true,
}

var rootCmd = &cobra.Command{
	Use:   "calcvault-cli",
	Short: "CLI for managing the calcvault file vault",
	Long: `calcvault-cli manages the hidden vault behind the calcvault calculator.

It lists, uploads, moves, exports and deletes files and folders, and turns
the vault lock on and off. When the lock is enabled every command that reads
or changes the vault asks for the secret, or takes it from --secret.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if dataPath != "" {
			cfg.DataPath = dataPath
		}
		log = logging.Console(cfg.LogLevel, "cli")

		if noStore[cmd.Name()] {
			return nil
		}
		store, closeFn, err := storage.Open(cfg, log)
		if err != nil {
			return err
		}
		closeStore = closeFn
		vault = application.NewVault(store, log)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeStore != nil {
			return closeStore()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "database file or document directory")
	rootCmd.PersistentFlags().StringVarP(&secret, "secret", "s", "", "vault secret, prompted for when needed and omitted")
}

// GetVault returns the vault after checking the lock. A locked vault needs
// the secret from --secret or from an interactive prompt.
func GetVault(ctx context.Context) (*application.Vault, error) {
	doc, err := vault.Load(ctx)
	if err != nil {
		return nil, err
	}

	gate := auth.NewGate(nil, log)
	if gate.Begin(ctx, doc) == auth.Unlocked {
		return vault, nil
	}

	value := secret
	if value == "" {
		value, err = promptSecret()
		if err != nil {
			return nil, err
		}
	}
	if gate.SubmitSecret(doc, value) != auth.Unlocked {
		return nil, fmt.Errorf("%w: wrong secret", application.ErrLocked)
	}
	return vault, nil
}

// promptSecret reads the secret without echo when stdin is a terminal
func promptSecret() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("%w: pass --secret", application.ErrLocked)
		}
		return strings.TrimSpace(line), nil
	}

	fmt.Fprint(os.Stderr, "Secret: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return string(b), nil
}

// folderArg normalizes an optional folder argument, empty meaning the root
func folderArg(args []string, i int) string {
	if i >= len(args) {
		return domain.RootID
	}
	return application.NormalizeFolderID(args[i])
}
