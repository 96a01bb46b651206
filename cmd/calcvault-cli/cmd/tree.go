package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"calcvault/internal/application/commands"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the vault tree structure",
	Long: `Display the complete tree structure of the vault. Files whose folder
no longer exists are listed at the end as orphans.

Example:
  calcvault-cli tree`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := GetVault(ctx)
		if err != nil {
			return err
		}

		tree, err := commands.NewBuildTreeCommand(v).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Portal")
		printEntries(out, tree.Entries, 1)
		if len(tree.Orphans) > 0 {
			fmt.Fprintln(out, "\nOrphans")
			printEntries(out, tree.Orphans, 1)
		}
		return nil
	},
}

func printEntries(out io.Writer, entries []commands.TreeEntry, base int) {
	for _, e := range entries {
		indent := strings.Repeat("  ", base+e.Depth)
		if e.IsFolder {
			fmt.Fprintf(out, "%s%s/ [%s]\n", indent, e.Folder.Name, e.Folder.ID)
		} else {
			fmt.Fprintf(out, "%s%s [%s]\n", indent, e.File.Name, e.File.ID)
		}
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
