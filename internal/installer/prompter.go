package installer

import (
	"fmt"

	"github.com/aurelab/mgsetup/internal/messages"
)

// Prompter asks the operator before destructive decisions.
type Prompter interface {
	// RecreateVenv asks whether the existing virtual environment at dir
	// should be removed and recreated.
	RecreateVenv(dir string) (bool, error)
}

// PromptFuncs adapts optional prompt callbacks into a Prompter.
type PromptFuncs struct {
	RecreateVenvFunc func(dir string) (bool, error)
}

// RecreateVenv prompts for venv recreation. Returns an error if no callback is
// configured.
func (p PromptFuncs) RecreateVenv(dir string) (bool, error) {
	if p.RecreateVenvFunc == nil {
		return false, fmt.Errorf(messages.PromptRequired)
	}
	return p.RecreateVenvFunc(dir)
}
