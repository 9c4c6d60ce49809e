package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mactweaks/internal/controller"
	"mactweaks/internal/nav"
)

var applyYes bool

var applyCmd = &cobra.Command{
	Use:   "apply <tweak>",
	Short: "Apply a tweak by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, args[0], nav.ActionApply, applyYes)
	},
}

func init() {
	applyCmd.Flags().BoolVarP(&applyYes, "yes", "y", false, "Skip the confirmation prompt")
}

// runAction drives the scripted front end: jump the navigation engine to
// the tweak, request the action, and resolve the confirmation step with a
// prompt instead of a dialog. Both apply and revert go through here so the
// CLI and the interactive UI share one confirmation policy.
func runAction(cmd *cobra.Command, name string, action nav.Action, yes bool) error {
	c, err := buildCore()
	if err != nil {
		return err
	}

	engine := nav.NewEngine(c.catalog)
	if !engine.JumpTo(name) {
		return fmt.Errorf("%w: %q (see %q)", controller.ErrUnknownTweak, name, "mactweaks list")
	}

	eff := engine.Request(action)
	if eff.Kind == nav.EffectDenied {
		return fmt.Errorf("%w: %q", controller.ErrNotRevertible, name)
	}
	if engine.Mode() == nav.ModeConfirmation {
		req := engine.Pending()
		if !yes && !promptConfirm(cmd.OutOrStdout(), cmd.InOrStdin(), req) {
			engine.Cancel()
			return fmt.Errorf("aborted: confirmation declined for %q", name)
		}
		eff = engine.Confirm()
	}
	if eff.Kind != nav.EffectRun {
		return nil
	}

	var result *controller.Result
	verb := "Applied"
	if action == nav.ActionRevert {
		verb = "Reverted"
		result, err = c.ctrl.Revert(name)
	} else {
		result, err = c.ctrl.Apply(name)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", verb, result.Tweak)
	if out := strings.TrimSpace(result.Output); out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

// promptConfirm asks on the terminal before a confirmation-gated action.
// Anything but yes declines.
func promptConfirm(w io.Writer, r io.Reader, req *nav.Request) bool {
	command := req.Tweak.ApplyCommand
	if req.Action == nav.ActionRevert {
		command = req.Tweak.RevertCommand
	}

	fmt.Fprintf(w, "About to %s %q:\n    %s\n", req.Action, req.Tweak.Name, command)
	fmt.Fprint(w, "Continue? [y/N]: ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
