// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	title string
	input textinput.Model

	submitted bool
	cancelled bool
}

func newInputModel(title, def string) inputModel {
	in := textinput.New()
	in.Width = 40
	in.SetValue(def)
	in.CursorEnd()
	in.Focus()

	return inputModel{title: title, input: in}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.submitted = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) value() string {
	return m.input.Value()
}

func (m inputModel) View() string {
	if m.submitted {
		return renderAnswer(m.title, m.value())
	}
	if m.cancelled {
		return renderAnswer(m.title, "(cancelled)")
	}

	return renderPrompt(m.title, m.input.View(), "enter: submit │ esc: cancel")
}
