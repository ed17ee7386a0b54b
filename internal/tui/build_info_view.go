// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-myweblog/models"
)

// RenderBuildInfo formats the build metadata of the binary called name.
func RenderBuildInfo(name string, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(name))
	b.WriteString("\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date:    ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit:  ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return buildBoxStyle.Render(b.String())
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
