package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"calcvault/internal/adapters/system"
	"calcvault/internal/application/commands"
)

var (
	exportDir  string
	exportOpen bool
)

var exportCmd = &cobra.Command{
	Use:   "export <file-id>",
	Short: "Write a stored file back to disk",
	Long: `Decode a stored file into a regular file. Without --dir it goes to a
fresh temporary directory. --open hands it to the system viewer afterwards.

Examples:
  calcvault-cli export 8c1d... --dir ~/Downloads
  calcvault-cli export 8c1d... --open`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := GetVault(ctx)
		if err != nil {
			return err
		}

		result, err := commands.NewExportFileCommand(v, args[0], exportDir).Execute(ctx)
		if err != nil {
			return err
		}
		if !result.Applied {
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Path)

		if exportOpen {
			return system.NewOpener().OpenFile(result.Path)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "destination directory (default a temporary one)")
	exportCmd.Flags().BoolVarP(&exportOpen, "open", "o", false, "open the file after exporting")
	rootCmd.AddCommand(exportCmd)
}
