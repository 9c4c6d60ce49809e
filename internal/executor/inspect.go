package executor

import (
	"os/exec"

	"github.com/google/shlex"
)

// Program returns the program a command line invokes: the first token,
// skipping sudo and env wrappers. Returns "" when the line cannot be
// tokenized.
func Program(command string) string {
	tokens, err := shlex.Split(command)
	if err != nil {
		return ""
	}

	for _, tok := range tokens {
		switch tok {
		case "sudo", "env", "nohup":
			continue
		}
		return tok
	}
	return ""
}

// NeedsSudo reports whether the command line invokes sudo anywhere. Shell
// lists like `a; sudo b` count, so this errs on the side of warning.
func NeedsSudo(command string) bool {
	tokens, err := shlex.Split(command)
	if err != nil {
		return false
	}
	for _, tok := range tokens {
		if tok == "sudo" {
			return true
		}
	}
	return false
}

// Installed reports whether a program is available in PATH.
func Installed(program string) bool {
	_, err := exec.LookPath(program)
	return err == nil
}
