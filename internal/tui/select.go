// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type selectModel struct {
	title   string
	options []string
	idx     int

	chosen    bool
	cancelled bool
}

func newSelectModel(title string, options []string) selectModel {
	return selectModel{title: title, options: options}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.options)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.options) == 0 {
			m.cancelled = true
		} else {
			m.chosen = true
		}
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.chosen {
		return renderAnswer(m.title, m.options[m.idx])
	}
	if m.cancelled {
		return renderAnswer(m.title, "(cancelled)")
	}

	var b strings.Builder
	for i, option := range m.options {
		b.WriteString(cursor(i == m.idx))
		b.WriteString(option)
		b.WriteString("\n")
	}

	return renderPrompt(m.title, b.String(), "↑/↓: move │ enter: select │ esc: cancel")
}
