package controller

import (
	"errors"
	"fmt"
)

// User-recoverable request errors. None of these crash the process; they
// are rendered by whichever front end made the request.
var (
	// ErrUnknownTweak means the name is not in the catalog.
	ErrUnknownTweak = errors.New("unknown tweak")

	// ErrNotRevertible means revert was requested for a tweak with no
	// revert command.
	ErrNotRevertible = errors.New("tweak is not revertible")
)

// Op names the controller operation that failed.
type Op string

const (
	OpApply  Op = "apply"
	OpRevert Op = "revert"
)

// CommandError reports that the underlying command exited non-zero. The
// captured output is kept so the user can diagnose the failure.
type CommandError struct {
	Op       Op
	Tweak    string
	Output   string
	ExitCode int
}

func (e *CommandError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s %q failed (exit %d)", e.Op, e.Tweak, e.ExitCode)
	}
	return fmt.Sprintf("%s %q failed (exit %d): %s", e.Op, e.Tweak, e.ExitCode, e.Output)
}
