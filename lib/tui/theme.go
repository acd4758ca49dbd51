// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for blobkit's terminal output. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Title is the heading of a field block.
	Title lipgloss.Color

	// Label is the left column of a field block and table headers.
	Label lipgloss.Color

	// Value is ordinary values.
	Value lipgloss.Color

	// Faint is secondary values (absent names, default settings).
	Faint lipgloss.Color

	// Accent highlights identifiers: refs, digests.
	Accent lipgloss.Color

	// Warning marks values that need attention (encrypted, mismatched).
	Warning lipgloss.Color

	// Border is the frame around a field block.
	Border lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	Title:   lipgloss.Color("255"),
	Label:   lipgloss.Color("245"),
	Value:   lipgloss.Color("252"),
	Faint:   lipgloss.Color("240"),
	Accent:  lipgloss.Color("75"),  // blue
	Warning: lipgloss.Color("220"), // amber
	Border:  lipgloss.Color("240"),
}

// Tone selects the color a value is rendered in.
type Tone int

const (
	ToneNormal Tone = iota
	ToneFaint
	ToneAccent
	ToneWarning
)

// color returns the theme color for tone.
func (theme Theme) color(tone Tone) lipgloss.Color {
	switch tone {
	case ToneFaint:
		return theme.Faint
	case ToneAccent:
		return theme.Accent
	case ToneWarning:
		return theme.Warning
	default:
		return theme.Value
	}
}
