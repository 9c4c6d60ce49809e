// Package ui is the interactive front end: a bubbletea model that renders
// the navigation engine's state and forwards its run effects to the
// controller. All navigation decisions live in the engine; this package
// only maps key events to engine transitions and draws the result.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mactweaks/internal/catalog"
	"mactweaks/internal/config"
	"mactweaks/internal/controller"
	"mactweaks/internal/executor"
	"mactweaks/internal/nav"
	"mactweaks/internal/state"
)

// actionDoneMsg reports a finished controller action.
type actionDoneMsg struct {
	request nav.Request
	result  *controller.Result
	err     error
}

// Model is the main application model
type Model struct {
	catalog *catalog.Catalog
	ctrl    *controller.Controller
	engine  *nav.Engine

	keys        KeyMap
	styles      Styles
	help        help.Model
	spinner     spinner.Model
	outputVP    viewport.Model
	highlighter *Highlighter

	width  int
	height int

	running    bool // a command is in flight; input is ignored
	showOutput bool
	showHelp   bool

	lastOutput string
	status     string
	version    string
}

// New creates the interactive model over shared core components.
func New(cat *catalog.Catalog, ctrl *controller.Controller, cfg *config.Config, version string) *Model {
	styles := NewStyles(cfg.ColorScheme)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(cfg.ColorScheme.Color("primary"))

	return &Model{
		catalog:     cat,
		ctrl:        ctrl,
		engine:      nav.NewEngine(cat),
		keys:        DefaultKeyMap(),
		styles:      styles,
		help:        help.New(),
		spinner:     s,
		highlighter: NewHighlighter(),
		width:       80,
		height:      24,
		status:      "Ready",
		version:     version,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showOutput {
			m.outputVP.Width = m.width - 4
			m.outputVP.Height = m.height - 6
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case actionDoneMsg:
		m.running = false
		if msg.err != nil {
			m.status = m.styles.Failed.Render("✗ " + msg.err.Error())
		} else {
			verb := "Applied"
			if msg.request.Action == nav.ActionRevert {
				verb = "Reverted"
			}
			m.status = m.styles.Applied.Render(fmt.Sprintf("✓ %s: %s", verb, msg.request.Tweak.Name))
		}
		m.lastOutput = outputOf(msg)
		return m, nil
	}

	return m, nil
}

// outputOf extracts whatever the command printed, success or failure.
func outputOf(msg actionDoneMsg) string {
	if msg.result != nil {
		return msg.result.Output
	}
	var cmdErr *controller.CommandError
	if errors.As(msg.err, &cmdErr) {
		return cmdErr.Output
	}
	return ""
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While a command runs only quit is honored; there is no mid-flight
	// cancellation of the subprocess itself.
	if m.running {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showOutput {
		return m.handleOutputKeys(msg)
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Back, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.engine.MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.engine.MoveDown()
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.engine.MoveLeft()
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.engine.MoveRight()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m.applyEffect(m.engine.Select())

	case key.Matches(msg, m.keys.Revert):
		return m.applyEffect(m.engine.Request(nav.ActionRevert))

	case key.Matches(msg, m.keys.Back):
		return m.applyEffect(m.engine.Back())

	case key.Matches(msg, m.keys.Output):
		if m.lastOutput != "" {
			m.openOutput()
		} else {
			m.status = "No command output yet"
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleOutputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back, m.keys.Quit, m.keys.Output) {
		m.showOutput = false
		return m, nil
	}
	var cmd tea.Cmd
	m.outputVP, cmd = m.outputVP.Update(msg)
	return m, cmd
}

// applyEffect acts on an engine transition result.
func (m *Model) applyEffect(eff nav.Effect) (tea.Model, tea.Cmd) {
	switch eff.Kind {
	case nav.EffectExit:
		return m, tea.Quit
	case nav.EffectDenied:
		m.status = m.styles.Failed.Render("✗ " + eff.Reason)
		return m, nil
	case nav.EffectRun:
		req := *eff.Run
		m.running = true
		m.status = fmt.Sprintf("Running: %s", req.Tweak.Name)
		return m, tea.Batch(m.spinner.Tick, m.runRequest(req))
	}
	return m, nil
}

// runRequest invokes the controller off the update loop. The controller
// call blocks for the duration of the subprocess.
func (m *Model) runRequest(req nav.Request) tea.Cmd {
	return func() tea.Msg {
		var result *controller.Result
		var err error
		if req.Action == nav.ActionRevert {
			result, err = m.ctrl.Revert(req.Tweak.Name)
		} else {
			result, err = m.ctrl.Apply(req.Tweak.Name)
		}
		return actionDoneMsg{request: req, result: result, err: err}
	}
}

func (m *Model) openOutput() {
	m.outputVP = viewport.New(m.width-4, m.height-6)
	m.outputVP.SetContent(m.lastOutput)
	m.showOutput = true
}

func (m *Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showOutput {
		return m.renderOutput()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.engine.Mode() {
	case nav.ModeDetail:
		b.WriteString(m.renderDetail())
	case nav.ModeConfirmation:
		b.WriteString(m.renderConfirmation())
	default:
		b.WriteString(m.renderLists())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.styles.HelpBar.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return m.styles.App.Render(b.String())
}

func (m *Model) renderHeader() string {
	title := m.styles.Title.Render("mactweaks")
	version := m.styles.Version.Render("v" + m.version)
	return m.styles.Header.Render(title + " " + version)
}

func (m *Model) renderStatus() string {
	status := m.status
	if m.running {
		status = m.spinner.View() + " " + status
	}
	return m.styles.StatusBar.Render(m.styles.StatusText.Render(status))
}

// renderLists draws the category panel next to the tweak panel. The
// focused panel follows the engine mode.
func (m *Model) renderLists() string {
	panelWidth := (m.width - 6) / 2
	panelHeight := m.height - 8

	cats := m.catalog.Categories()
	catItems := make([]ListItem, len(cats))
	for i, cat := range cats {
		catItems[i] = ListItem{
			Label: cat.Name,
			Annot: m.styles.Muted.Render(fmt.Sprintf("(%d)", len(cat.Tweaks))),
		}
	}

	catPanel := List{
		Title:   "Categories",
		Width:   panelWidth,
		Height:  panelHeight,
		Focused: m.engine.Mode() == nav.ModeCategoryList,
	}.View(m.styles, catItems, m.engine.CategoryIndex())

	var tweakItems []ListItem
	title := "Tweaks"
	if cat, ok := m.engine.CurrentCategory(); ok {
		title = cat.Name
		tweakItems = make([]ListItem, len(cat.Tweaks))
		for i, t := range cat.Tweaks {
			tweakItems[i] = ListItem{Label: t.Name, Annot: m.tweakAnnot(t)}
		}
	}

	tweakPanel := List{
		Title:   title,
		Width:   panelWidth,
		Height:  panelHeight,
		Focused: m.engine.Mode() == nav.ModeTweakList,
	}.View(m.styles, tweakItems, m.engine.TweakIndex())

	return lipgloss.JoinHorizontal(lipgloss.Top, catPanel, " ", tweakPanel)
}

// tweakAnnot builds the status markers shown after a tweak name.
func (m *Model) tweakAnnot(t catalog.Tweak) string {
	var parts []string

	if st, err := m.ctrl.Status(t.Name); err == nil {
		switch {
		case st.LastAction != state.ActionNone && !st.LastOK:
			parts = append(parts, m.styles.Failed.Render("✗"))
		case st.Applied:
			parts = append(parts, m.styles.Applied.Render("✓"))
		}
	}
	if executor.NeedsSudo(t.ApplyCommand) {
		parts = append(parts, m.styles.SudoBadge.Render("[sudo]"))
	}

	return strings.Join(parts, " ")
}

func (m *Model) renderDetail() string {
	tweak, ok := m.engine.CurrentTweak()
	if !ok {
		return m.styles.Muted.Render("No tweak selected")
	}

	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render(tweak.Name))
	b.WriteString("\n\n")
	b.WriteString(tweak.Description)
	b.WriteString("\n\n")

	b.WriteString(m.styles.Muted.Render("Apply:"))
	b.WriteString("\n  ")
	b.WriteString(m.highlighter.HighlightCommand(tweak.ApplyCommand))
	b.WriteString("\n")

	b.WriteString(m.styles.Muted.Render("Revert:"))
	b.WriteString("\n  ")
	if tweak.Revertible() {
		b.WriteString(m.highlighter.HighlightCommand(tweak.RevertCommand))
	} else {
		b.WriteString(m.styles.Muted.Render("not revertible"))
	}
	b.WriteString("\n\n")

	if executor.NeedsSudo(tweak.ApplyCommand) {
		b.WriteString(m.styles.SudoBadge.Render("Runs with sudo"))
		b.WriteString("\n")
	}
	if prog := executor.Program(tweak.ApplyCommand); prog != "" && !executor.Installed(prog) {
		b.WriteString(m.styles.Failed.Render(fmt.Sprintf("Warning: %q not found in PATH", prog)))
		b.WriteString("\n")
	}
	if tweak.RequiresConfirmation {
		b.WriteString(m.styles.SudoBadge.Render("Asks for confirmation"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderRunState(tweak.Name))
	b.WriteString("\n\n")
	b.WriteString(m.styles.HelpBar.Render(
		m.styles.RenderHelpItem("enter", "apply") + "  " +
			m.styles.RenderHelpItem("r", "revert") + "  " +
			m.styles.RenderHelpItem("o", "last output") + "  " +
			m.styles.RenderHelpItem("esc", "back")))

	style := m.styles.Panel
	if w := m.width - 4; w > 20 {
		style = style.Width(w)
	}
	return style.Render(b.String())
}

// renderRunState summarizes what the tracker believes about the tweak.
// This reflects the last run's exit code, not probed system state.
func (m *Model) renderRunState(name string) string {
	st, err := m.ctrl.Status(name)
	if err != nil {
		return ""
	}

	switch {
	case st.LastAction == state.ActionNone:
		return m.styles.Muted.Render("Not run in this session")
	case !st.LastOK:
		verb := "apply"
		if st.LastAction == state.ActionReverted {
			verb = "revert"
		}
		return m.styles.Failed.Render("Last " + verb + " failed")
	case st.Applied:
		return m.styles.Applied.Render("Applied")
	default:
		return m.styles.Muted.Render("Reverted")
	}
}

func (m *Model) renderConfirmation() string {
	req := m.engine.Pending()
	if req == nil {
		return m.renderDetail()
	}

	command := req.Tweak.ApplyCommand
	if req.Action == nav.ActionRevert {
		command = req.Tweak.RevertCommand
	}

	var b strings.Builder
	b.WriteString(m.styles.SudoBadge.Render("⚠ Confirm " + req.Action.String()))
	b.WriteString("\n\n")
	b.WriteString(req.Tweak.Name)
	b.WriteString("\n\n")
	b.WriteString(m.highlighter.HighlightCommand(command))
	b.WriteString("\n\n")
	b.WriteString(m.styles.RenderButton("Enter: confirm", true))
	b.WriteString(" ")
	b.WriteString(m.styles.RenderButton("Esc: cancel", false))

	dialog := m.styles.Dialog.Render(b.String())
	return lipgloss.Place(m.width, m.height-8, lipgloss.Center, lipgloss.Center, dialog)
}

func (m *Model) renderOutput() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.styles.PanelTitle.Render("Last command output"))
	b.WriteString("\n")
	b.WriteString(m.outputVP.View())
	b.WriteString("\n")
	b.WriteString(m.styles.HelpBar.Render("j/k scroll • esc close"))
	return m.styles.App.Render(b.String())
}

func (m *Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.HelpBar.Render("press ? or esc to close"))
	return m.styles.App.Render(b.String())
}
