// Package cmd wires the CLI and the interactive UI over the shared core:
// catalog, executor, state tracker, controller, and navigation engine.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mactweaks/internal/catalog"
	"mactweaks/internal/config"
	"mactweaks/internal/controller"
	"mactweaks/internal/executor"
	"mactweaks/internal/state"
	"mactweaks/internal/ui"
)

// Version is stamped at build time via -ldflags.
var Version = "0.1.0"

var debug bool

var rootCmd = &cobra.Command{
	Use:   "mactweaks",
	Short: "Apply and revert small macOS system tweaks",
	Long: `mactweaks is a terminal tool for applying and reverting small macOS
system tweaks (Dock behavior, power management, networking, Homebrew
maintenance). Run without arguments for the interactive UI, or use the
list/apply/revert subcommands for scripting.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// The interactive UI needs a real terminal; piped invocations get
		// the help text instead.
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return cmd.Help()
		}
		return runInteractive()
	},
}

// Execute registers flags and subcommands and runs the CLI.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(revertCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// core bundles the components every front end needs.
type core struct {
	catalog *catalog.Catalog
	ctrl    *controller.Controller
}

// buildCore assembles the catalog, executor, tracker and controller. A
// catalog build error means the built-in definitions are broken, which is
// fatal for every command.
func buildCore() (*core, error) {
	cat, err := catalog.Build()
	if err != nil {
		return nil, fmt.Errorf("building tweak catalog: %w", err)
	}

	runner := executor.NewShell()
	tracker := state.NewTracker(cat.Names())
	return &core{
		catalog: cat,
		ctrl:    controller.New(cat, runner, tracker),
	}, nil
}

func runInteractive() error {
	c, err := buildCore()
	if err != nil {
		return err
	}
	cfg := config.Load()

	model := ui.New(c.catalog, c.ctrl, cfg, Version)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive UI: %w", err)
	}
	return nil
}
