package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"calcvault/internal/application/commands"
)

var newSecret string

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Manage the vault lock",
}

var lockStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the lock is enabled",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := vault.Load(cmd.Context())
		if err != nil {
			return err
		}

		status := "disabled"
		if doc.IsLockEnabled {
			status = "enabled"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Lock %s\n", status)
		return nil
	},
}

var lockEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Require a secret to open the vault",
	Long: `Enable the lock. The new secret comes from --new-secret or is prompted
for. Enabling an already locked vault needs the current secret.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := GetVault(ctx)
		if err != nil {
			return err
		}

		value := newSecret
		if value == "" {
			fmt.Fprint(cmd.ErrOrStderr(), "New ")
			if value, err = promptSecret(); err != nil {
				return err
			}
		}

		result, err := commands.NewEnableLockCommand(v, nil, value).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var lockDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Open the vault without a secret",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := GetVault(ctx)
		if err != nil {
			return err
		}

		result, err := commands.NewDisableLockCommand(v).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	lockEnableCmd.Flags().StringVar(&newSecret, "new-secret", "", "secret to set")
	lockCmd.AddCommand(lockStatusCmd, lockEnableCmd, lockDisableCmd)
	rootCmd.AddCommand(lockCmd)
}
