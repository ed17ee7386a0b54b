// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type checkboxModel struct {
	title   string
	options []string
	checked []bool
	idx     int

	submitted bool
	cancelled bool
}

func newCheckboxModel(title string, options []string) checkboxModel {
	return checkboxModel{title: title, options: options, checked: make([]bool, len(options))}
}

func (m checkboxModel) Init() tea.Cmd {
	return nil
}

func (m checkboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case key.Matches(keyMsg, keys.toggle):
		if len(m.checked) > 0 {
			checked := make([]bool, len(m.checked))
			copy(checked, m.checked)
			checked[m.idx] = !checked[m.idx]
			m.checked = checked
		}
	case key.Matches(keyMsg, keys.enter):
		m.submitted = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

func (m checkboxModel) selected() []int {
	var out []int
	for i, c := range m.checked {
		if c {
			out = append(out, i)
		}
	}
	return out
}

func (m checkboxModel) View() string {
	if m.cancelled {
		return renderAnswer(m.title, "(cancelled)")
	}
	if m.submitted {
		names := make([]string, 0, len(m.options))
		for _, i := range m.selected() {
			names = append(names, m.options[i])
		}
		return renderAnswer(m.title, strings.Join(names, ", "))
	}

	var b strings.Builder
	for i, option := range m.options {
		b.WriteString(cursor(i == m.idx))
		if m.checked[i] {
			b.WriteString("[x] ")
		} else {
			b.WriteString("[ ] ")
		}
		b.WriteString(option)
		b.WriteString("\n")
	}

	return renderPrompt(m.title, b.String(), "↑/↓: move │ space: toggle │ enter: done │ esc: cancel")
}
