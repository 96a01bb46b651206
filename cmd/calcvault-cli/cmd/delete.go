package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"calcvault/internal/application/commands"
)

var deleteCascade bool

var deleteCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a file or folder",
	Long: `Delete a file or a folder from the vault.

Warning: This operation cannot be undone. Deleting a folder leaves its
contents behind as orphans unless --cascade is given, which removes the
whole subtree.

Examples:
  calcvault-cli rm 8c1d...               # Delete a file
  calcvault-cli rm 3f2b... --cascade     # Delete a folder and everything in it`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := GetVault(ctx)
		if err != nil {
			return err
		}

		deleteCmd := commands.NewDeleteCommand(v, args[0])
		deleteCmd.Cascade = deleteCascade
		result, err := deleteCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteCascade, "cascade", false, "also delete the folder's contents")
	rootCmd.AddCommand(deleteCmd)
}
