// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a yes/no question. Enter accepts, esc declines.
type confirmModel struct {
	message string

	answered bool
	yes      bool
}

func newConfirmModel(message string) confirmModel {
	return confirmModel{message: message}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes), key.Matches(keyMsg, keys.enter):
		m.answered, m.yes = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.answered, m.yes = true, false
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		answer := "No"
		if m.yes {
			answer = "Yes"
		}
		return renderAnswer(m.message, answer)
	}

	return confirmStyle.Render(m.message+"\n\n"+helpStyle.Render("y/enter: yes    n/esc: no")) + "\n"
}
