// ============================================================================
// summa - Sum Expression Parser
// ============================================================================
//
// Package:     printer
// Description: Styles for colored token and tree output
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package printer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/summa/foundation/summa/lexer"
)

// Color Palette - shared with the REPL
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
)

var (
	NodeStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NumberStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	AddStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	WhitespaceStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SumStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// TokenStyle returns the style for a token kind
func TokenStyle(kind lexer.Kind) lipgloss.Style {
	switch kind {
	case lexer.KindNumber:
		return NumberStyle
	case lexer.KindAdd:
		return AddStyle
	default:
		return WhitespaceStyle
	}
}
