// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minitranslate/vocabsync/models"
)

// chooserModel is the two-option dialog shown for one conflict: keep the
// local value or take the cloud value.
type chooserModel struct {
	conflict models.Conflict
	idx      int
	chosen   bool
	quit     bool
}

func newChooserModel(c models.Conflict) chooserModel {
	return chooserModel{conflict: c}
}

func (m chooserModel) Init() tea.Cmd { return nil }

func (m chooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k", "down", "j", "tab":
		m.idx = 1 - m.idx
	case "enter":
		m.chosen = true
		return m, tea.Quit
	case "esc", "q", "ctrl+c":
		m.quit = true
		return m, tea.Quit
	}

	return m, nil
}

func (m chooserModel) choice() models.ResolutionChoice {
	if m.idx == 1 {
		return models.ChooseRemote
	}
	return models.ChooseLocal
}

func (m chooserModel) View() string {
	content := titleStyle.Render("Sync conflict") + "\n\n"
	content += labelStyle.Render(string(m.conflict.Category)) + "  " + m.conflict.Key + "\n\n"
	content += fmt.Sprintf("%s local:  %s\n", cursor(m.idx == 0), renderValue(m.conflict.Local))
	content += fmt.Sprintf("%s cloud:  %s\n", cursor(m.idx == 1), renderValue(m.conflict.Remote))
	content += "\n" + helpStyle.Render("↑/↓ select  enter confirm  esc cancel")
	return boxStyle.Render(content)
}

func cursor(active bool) string {
	if active {
		return ">"
	}
	return " "
}

// renderValue formats one side of a conflict for display. Vocabulary sides
// show the translation, scalar sides their value; an absent side shows as
// (not set).
func renderValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "(not set)"
	case *models.VocabularyItem:
		if value == nil {
			return "(not set)"
		}
		return fmt.Sprintf("%s (modified %d)", value.Translation, value.LastModified)
	case models.VocabularyItem:
		return fmt.Sprintf("%s (modified %d)", value.Translation, value.LastModified)
	default:
		return fmt.Sprintf("%v", value)
	}
}
