//go:build !wasm
// +build !wasm

package main

import "github.com/charmbracelet/lipgloss"

var (
	activeColor = lipgloss.Color("#04B575")
	mutedColor  = lipgloss.Color("#666666")
	accentColor = lipgloss.Color("#7D56F4")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	scrollStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(activeColor)

	idleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4B4B"))
)

// paint renders text with style unless colors are disabled.
func paint(style lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
