// Package pyenv resolves Python interpreters and provisions virtual environments.
package pyenv

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/aurelab/mgsetup/internal/messages"
)

// DefaultCandidates are the interpreter names tried in order when no explicit
// binary is configured.
var DefaultCandidates = []string{"python3", "python"}

// NoInterpreterError reports that no Python interpreter resolved on PATH.
type NoInterpreterError struct {
	Tried []string
}

func (e *NoInterpreterError) Error() string {
	return fmt.Sprintf(messages.NoInterpreterFmt, strings.Join(e.Tried, ", "))
}

// FindInterpreter resolves the Python interpreter to use. A non-empty binary
// restricts the search to that name. lookPath defaults to exec.LookPath when nil.
func FindInterpreter(binary string, lookPath func(string) (string, error)) (string, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	candidates := DefaultCandidates
	if strings.TrimSpace(binary) != "" {
		candidates = []string{strings.TrimSpace(binary)}
	}
	for _, candidate := range candidates {
		if path, err := lookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", &NoInterpreterError{Tried: candidates}
}
