// Package executor wraps one-shot shell command execution. A non-zero exit
// is an expected outcome (a tweak may already be in the desired state), so
// subprocess failure is reported as data, never as a Go error.
package executor

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Outcome is the result of running one command line.
type Outcome struct {
	Succeeded bool
	Output    string // Combined stdout and stderr
	ExitCode  int    // -1 if the process never started
}

// Runner executes a single shell command line and blocks until it
// completes. Implementations must not retry: tweak commands are not
// guaranteed to be safe to run twice.
type Runner interface {
	Run(command string) Outcome
}

// DefaultShell is the shell used to interpret command lines, matching the
// login shell on macOS.
const DefaultShell = "zsh"

// Shell runs commands through `<shell> -c`.
type Shell struct {
	// Path is the shell binary, DefaultShell if empty.
	Path string
}

// NewShell returns a Shell using the default shell binary.
func NewShell() *Shell {
	return &Shell{}
}

// Run executes the command line and captures its combined output.
func (s *Shell) Run(command string) Outcome {
	shell := s.Path
	if shell == "" {
		shell = DefaultShell
	}

	log.Debug("running command", "shell", shell, "command", command)

	cmd := exec.Command(shell, "-c", command)
	out, err := cmd.CombinedOutput()
	output := strings.TrimRight(string(out), "\n")

	if err == nil {
		return Outcome{Succeeded: true, Output: output, ExitCode: 0}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.Debug("command failed", "exit", exitErr.ExitCode())
		return Outcome{Output: output, ExitCode: exitErr.ExitCode()}
	}

	// The shell itself could not be started; surface the reason as output
	// so the caller can show it.
	log.Debug("command did not start", "err", err)
	if output == "" {
		output = err.Error()
	}
	return Outcome{Output: output, ExitCode: -1}
}
