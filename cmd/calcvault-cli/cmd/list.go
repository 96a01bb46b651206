package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"calcvault/internal/application/commands"
	"calcvault/internal/domain"
)

var listCmd = &cobra.Command{
	Use:     "ls [folder-id]",
	Aliases: []string{"list"},
	Short:   "List the contents of a folder",
	Long: `List the folders and files directly inside a folder, folders first.

Examples:
  calcvault-cli ls
  calcvault-cli ls 3f2b9c1e-...`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := GetVault(ctx)
		if err != nil {
			return err
		}

		view, err := commands.NewViewFolderCommand(v, folderArg(args, 0)).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, f := range view.Folders {
			fmt.Fprintf(out, "%s  %s/\n", f.ID, f.Name)
		}
		for _, f := range view.Files {
			fmt.Fprintf(out, "%s  %s  (%s, %s)\n", f.ID, f.Name, domain.KindOf(f.MimeType), f.MimeType)
		}
		if view.Empty() {
			fmt.Fprintln(out, "(empty)")
		}
		return nil
	},
}

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List every folder with its path",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := GetVault(ctx)
		if err != nil {
			return err
		}

		options, err := commands.NewListFoldersCommand(v).Execute(ctx)
		if err != nil {
			return err
		}
		for _, o := range options {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", o.ID, o.Label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(foldersCmd)
}
