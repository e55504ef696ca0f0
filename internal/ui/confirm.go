// Package ui provides the interactive prompts used by the installer.
package ui

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/aurelab/mgsetup/internal/terminal"
)

// ErrNotInteractive is returned when a prompt is requested without a terminal.
var ErrNotInteractive = errors.New("prompt requires an interactive terminal")

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// Confirmer asks yes/no questions.
type Confirmer struct {
	isTerminal func() bool
}

// NewConfirmer creates a Confirmer using the default terminal check.
func NewConfirmer() *Confirmer {
	return &Confirmer{isTerminal: terminal.IsInteractive}
}

// Confirm shows a yes/no prompt with the given title and default answer.
func (c *Confirmer) Confirm(title string, defaultValue bool) (bool, error) {
	checker := c.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if !checker() {
		return false, ErrNotInteractive
	}

	value := defaultValue
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&value),
	))
	if err := runFormFunc(form); err != nil {
		return false, err
	}
	return value, nil
}
