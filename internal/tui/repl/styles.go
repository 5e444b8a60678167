// ============================================================================
// summa - Sum Expression Parser
// ============================================================================
//
// Package:     repl
// Description: Styles for the interactive REPL
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/summa/internal/printer"
)

var (
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorBorder    = lipgloss.Color("#334155") // Slate 700
)

var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(printer.ColorPrimary).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	InputLineStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(printer.ColorSecondary).
			Bold(true)

	ResultStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)
