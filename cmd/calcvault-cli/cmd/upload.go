package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"calcvault/internal/adapters/filesystem"
	"calcvault/internal/application/commands"
	"calcvault/internal/domain"
)

var uploadFolder string

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload files into the vault",
	Long: `Read local files and store them in a folder of the vault. Files are read
concurrently and each one is saved as soon as it has been read; a file that
cannot be read is reported and skipped.

Examples:
  calcvault-cli upload beach.png song.mp3
  calcvault-cli upload notes.pdf --folder 3f2b9c1e-...`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := GetVault(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		upload := commands.NewUploadCommand(v, domain.UUIDGenerator{}, log, filesystem.LocalFiles(args), uploadFolder)
		upload.OnStored = func(f domain.File) {
			fmt.Fprintf(out, "stored %s (%s)\n", f.Name, f.ID)
		}

		result, err := upload.Execute(ctx)
		if err != nil {
			return err
		}
		for _, name := range result.Failed {
			fmt.Fprintf(cmd.ErrOrStderr(), "failed to read %s\n", name)
		}
		fmt.Fprintln(out, result.Message)
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadFolder, "folder", "f", "", "destination folder ID (default root)")
	rootCmd.AddCommand(uploadCmd)
}
