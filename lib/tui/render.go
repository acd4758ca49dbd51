// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one label/value row of a field block.
type Field struct {
	Label string
	Value string
	Tone  Tone
}

// RenderFields renders title above fields with labels padded to a
// common width. Styled output is framed in a rounded border.
func RenderFields(theme Theme, title string, fields []Field, styled bool) string {
	labelWidth := 0
	for _, field := range fields {
		labelWidth = max(labelWidth, lipgloss.Width(field.Label))
	}

	if !styled {
		var builder strings.Builder
		if title != "" {
			builder.WriteString(title)
			builder.WriteByte('\n')
		}
		for _, field := range fields {
			builder.WriteString(padRight(field.Label+":", labelWidth+1))
			builder.WriteString("  ")
			builder.WriteString(field.Value)
			builder.WriteByte('\n')
		}
		return builder.String()
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.Label).Width(labelWidth + 2)
	lines := make([]string, 0, len(fields)+1)
	if title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(theme.Title).Render(title))
	}
	for _, field := range fields {
		value := lipgloss.NewStyle().Foreground(theme.color(field.Tone)).Render(field.Value)
		lines = append(lines, labelStyle.Render(field.Label)+value)
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	return frame.Render(strings.Join(lines, "\n")) + "\n"
}

// RenderTable renders rows under headers with columns padded to their
// widest cell. tones, when non-nil, gives the tone per column.
func RenderTable(theme Theme, headers []string, rows [][]string, tones []Tone, styled bool) string {
	widths := make([]int, len(headers))
	for column, header := range headers {
		widths[column] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for column := range min(len(row), len(widths)) {
			widths[column] = max(widths[column], lipgloss.Width(row[column]))
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Label)
	var builder strings.Builder
	writeRow := func(cells []string, style func(column int) lipgloss.Style) {
		for column, width := range widths {
			cell := ""
			if column < len(cells) {
				cell = cells[column]
			}
			last := column == len(widths)-1
			if !last {
				cell = padRight(cell, width)
			}
			if styled {
				cell = style(column).Render(cell)
			}
			builder.WriteString(cell)
			if !last {
				builder.WriteString("  ")
			}
		}
		builder.WriteByte('\n')
	}

	writeRow(headers, func(int) lipgloss.Style { return headerStyle })
	for _, row := range rows {
		writeRow(row, func(column int) lipgloss.Style {
			tone := ToneNormal
			if column < len(tones) {
				tone = tones[column]
			}
			return lipgloss.NewStyle().Foreground(theme.color(tone))
		})
	}
	return builder.String()
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
