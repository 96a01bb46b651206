package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"calcvault/internal/application/commands"
)

var moveCmd = &cobra.Command{
	Use:     "mv <file-id> <folder-id>",
	Aliases: []string{"move"},
	Short:   "Move a file to another folder",
	Long: `Move a file into another folder. Use "root" as the destination to move
it to the top level. Folders cannot be moved.

Examples:
  calcvault-cli mv 8c1d... 3f2b9c1e-...
  calcvault-cli mv 8c1d... root`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := GetVault(ctx)
		if err != nil {
			return err
		}

		result, err := commands.NewMoveFileCommand(v, args[0], folderArg(args, 1)).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
