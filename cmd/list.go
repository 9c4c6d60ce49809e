package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mactweaks/internal/catalog"
	"mactweaks/internal/executor"
)

var listCommands bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tweaks grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, cat := range c.catalog.Categories() {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s\n", cat.Name)
			for _, t := range cat.Tweaks {
				fmt.Fprintf(out, "  %s%s\n", t.Name, markers(t))
				if listCommands {
					fmt.Fprintf(out, "      apply:  %s\n", t.ApplyCommand)
					if t.Revertible() {
						fmt.Fprintf(out, "      revert: %s\n", t.RevertCommand)
					}
				}
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listCommands, "commands", false, "Show the underlying shell commands")
}

// markers renders the bracketed attribute tags after a tweak name.
func markers(t catalog.Tweak) string {
	var tags []string
	if executor.NeedsSudo(t.ApplyCommand) {
		tags = append(tags, "sudo")
	}
	if t.RequiresConfirmation {
		tags = append(tags, "confirm")
	}
	if !t.Revertible() {
		tags = append(tags, "no revert")
	}
	if len(tags) == 0 {
		return ""
	}
	return "  [" + strings.Join(tags, ", ") + "]"
}
