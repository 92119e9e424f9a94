// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

package roomui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the room view. All colors are
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Top status bar (rendered reverse-video style).
	HeaderForeground lipgloss.Color
	HeaderBackground lipgloss.Color

	// Panel title rows.
	SelfTitle  lipgloss.Color
	OtherTitle lipgloss.Color

	// Local cursor cell.
	CursorForeground lipgloss.Color
	CursorBackground lipgloss.Color

	// Fatal error view.
	ErrorText lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("235"),
	HeaderBackground: lipgloss.Color("252"),

	SelfTitle:  lipgloss.Color("114"), // green
	OtherTitle: lipgloss.Color("75"),  // blue

	CursorForeground: lipgloss.Color("235"),
	CursorBackground: lipgloss.Color("252"),

	ErrorText: lipgloss.Color("196"), // bright red
}
