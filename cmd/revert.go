package cmd

import (
	"github.com/spf13/cobra"

	"mactweaks/internal/nav"
)

var revertYes bool

var revertCmd = &cobra.Command{
	Use:   "revert <tweak>",
	Short: "Revert a previously applied tweak",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, args[0], nav.ActionRevert, revertYes)
	},
}

func init() {
	revertCmd.Flags().BoolVarP(&revertYes, "yes", "y", false, "Skip the confirmation prompt")
}
