package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"calcvault/internal/application/commands"
	"calcvault/internal/domain"
)

var mkdirParent string

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <name>",
	Short: "Create a folder",
	Long: `Create a folder in the root or, with --parent, inside another folder.

Examples:
  calcvault-cli mkdir Photos
  calcvault-cli mkdir 2024 --parent 3f2b9c1e-...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := GetVault(ctx)
		if err != nil {
			return err
		}

		result, err := commands.NewCreateFolderCommand(v, domain.UUIDGenerator{}, args[0], mkdirParent).Execute(ctx)
		if err != nil {
			return err
		}
		if result.Applied {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", result.Message, result.Folder.ID)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	mkdirCmd.Flags().StringVarP(&mkdirParent, "parent", "p", "", "parent folder ID (default root)")
	rootCmd.AddCommand(mkdirCmd)
}
