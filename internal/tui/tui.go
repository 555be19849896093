// SPDX-License-Identifier: Apache-2.0

// Package tui implements the interactive conflict prompter: a terminal
// dialog presenting one conflict's two sides and blocking until the user
// picks one or abandons the prompt.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minitranslate/vocabsync/internal/conflict"
	"github.com/minitranslate/vocabsync/models"
)

// Prompter presents conflicts through a terminal dialog. It satisfies
// [conflict.Prompter] for interactive hosts; headless hosts use
// [conflict.HeadlessPrompter] instead.
type Prompter struct{}

func NewPrompter() *Prompter {
	return &Prompter{}
}

// Choose runs the chooser dialog for one conflict. An abandoned dialog
// (esc, q, ctrl+c) surfaces as [conflict.ErrResolutionCancelled], which the
// engine treats as terminal for the cycle.
func (p *Prompter) Choose(ctx context.Context, c models.Conflict) (models.ResolutionChoice, bool, error) {
	finalModel, err := tea.NewProgram(newChooserModel(c), tea.WithContext(ctx)).Run()
	if err != nil {
		return "", false, err
	}

	result, ok := finalModel.(chooserModel)
	if !ok {
		return "", false, tea.ErrProgramKilled
	}
	if result.quit || !result.chosen {
		return "", false, conflict.ErrResolutionCancelled
	}

	return result.choice(), true, nil
}
