// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

package roomui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model. Layout: a reverse-video status bar on
// the top row, then one panel per participant in layout order, each
// a bold title row over the trailing lines of that participant's
// buffer, bottom-aligned so the in-progress line sits at the panel
// bottom. Degenerate terminal sizes clip content instead of erroring.
func (model Model) View() string {
	if model.quitting {
		return ""
	}

	if model.errorMessage != "" {
		return model.renderError()
	}

	if !model.ready {
		return "Connecting..."
	}
	if !model.state.Ready() {
		return lipgloss.Place(model.width, model.height,
			lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("Waiting for room..."))
	}

	header := model.renderHeader()

	panelHeight := model.height - 1
	count := len(model.state.Order)
	if panelHeight <= 0 || count == 0 || model.width < count {
		return header
	}

	// Divide width evenly; the last panel absorbs the remainder.
	panelWidth := model.width / count
	panels := make([]string, 0, count)
	for index, id := range model.state.Order {
		width := panelWidth
		if index == count-1 {
			width = model.width - panelWidth*(count-1)
		}
		panels = append(panels, model.renderPanel(id, width, panelHeight))
	}

	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

// renderHeader draws the top status bar.
func (model Model) renderHeader() string {
	text := fmt.Sprintf(" Room: %s  You: %s  Participants: %d ",
		model.state.RoomID, shortID(model.state.SelfID), len(model.state.Order))
	return lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Background(model.theme.HeaderBackground).
		Width(model.width).
		MaxWidth(model.width).
		Render(ansi.Truncate(text, model.width, ""))
}

// renderPanel draws one participant column: title row plus the
// trailing buffer lines that fit, bottom-aligned with blank padding
// above. Zero or negative usable space renders nothing.
func (model Model) renderPanel(id string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	isSelf := id == model.state.SelfID
	title := shortID(id)
	titleColor := model.theme.OtherTitle
	if isSelf {
		title = "You"
		titleColor = model.theme.SelfTitle
	}

	rows := make([]string, 0, height)
	rows = append(rows, lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor).
		Width(width).
		MaxWidth(width).
		Align(lipgloss.Center).
		Render(ansi.Truncate(title, width, "")))

	visible := height - 1
	if visible <= 0 {
		return strings.Join(rows, "\n")
	}

	buffer := model.state.Buffers[id]
	tail := buffer.Tail(visible)
	lineStyle := lipgloss.NewStyle().
		Foreground(model.theme.NormalText).
		Width(width).
		MaxWidth(width)

	for padding := visible - len(tail); padding > 0; padding-- {
		rows = append(rows, lineStyle.Render(""))
	}
	for index, line := range tail {
		current := index == len(tail)-1
		if isSelf && current {
			rows = append(rows, model.renderCursorLine(line, width))
			continue
		}
		rows = append(rows, lineStyle.Render(ansi.Truncate(line, width, "")))
	}

	return strings.Join(rows, "\n")
}

// renderCursorLine draws the self in-progress line with a visible
// cursor cell at the tracked rune offset: before-cursor text, the
// rune under the cursor in reverse colors (a space when the cursor
// sits at end of line), then the rest, all clipped to the panel.
func (model Model) renderCursorLine(line string, width int) string {
	runes := []rune(line)
	position := model.cursor
	if position > len(runes) {
		position = len(runes)
	}

	before := string(runes[:position])
	at := " "
	after := ""
	if position < len(runes) {
		at = string(runes[position])
		after = string(runes[position+1:])
	}

	cursorStyle := lipgloss.NewStyle().
		Foreground(model.theme.CursorForeground).
		Background(model.theme.CursorBackground)

	text := before + cursorStyle.Render(at) + after
	return lipgloss.NewStyle().
		Foreground(model.theme.NormalText).
		Width(width).
		MaxWidth(width).
		Render(ansi.Truncate(text, width, ""))
}

// renderError fills the screen with the fatal error message. Shown
// for the dwell period before the program exits.
func (model Model) renderError() string {
	message := lipgloss.NewStyle().
		Foreground(model.theme.ErrorText).
		Render(model.errorMessage)
	if !model.ready {
		return message
	}
	return lipgloss.Place(model.width, model.height,
		lipgloss.Center, lipgloss.Center, message)
}

// shortID abbreviates a participant id for display, the same four
// leading characters the original clients and servers use in titles
// and join notices.
func shortID(id string) string {
	if len(id) > 4 {
		return id[:4]
	}
	return id
}
