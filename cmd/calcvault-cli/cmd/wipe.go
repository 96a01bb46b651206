package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"calcvault/internal/application/commands"
)

var wipeYes bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Erase the whole vault",
	Long: `Erase every file and folder and the lock settings. Like the wipe code on
the calculator it needs no secret, but it does need --yes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !wipeYes {
			return errors.New("refusing to wipe without --yes")
		}

		result, err := commands.NewWipeCommand(vault).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeYes, "yes", false, "confirm the wipe")
	rootCmd.AddCommand(wipeCmd)
}
