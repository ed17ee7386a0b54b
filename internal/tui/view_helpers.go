// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
)

// renderPrompt lays out a question, its body and a hot key line.
func renderPrompt(title, body, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("? " + title))
	b.WriteString("\n")

	if strings.TrimSpace(body) != "" {
		b.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			b.WriteString("\n")
		}
	}

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}

	return b.String()
}

// renderAnswer is what stays on screen once a prompt is done.
func renderAnswer(title, answer string) string {
	return titleStyle.Render("? "+title) + " " + answerStyle.Render(answer) + "\n"
}

func cursor(selected bool) string {
	if selected {
		return cursorStyle.Render("> ")
	}
	return "  "
}
