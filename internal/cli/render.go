// internal/cli/render.go
//
// Terminal rendering for hints and banners.
// Hint format: one '+' per exact match followed by one '-' per value match,
// nothing for misses. (2 exact, 1 partial) renders as "++-".

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codebreaker/internal/game"
)

const (
	exactMarker   = "+"
	partialMarker = "-"
)

var (
	exactStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	partialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	revealStyle  = lipgloss.NewStyle().Bold(true)
)

// renderHint renders the marker string for a hint. Markers are ordered
// exact-first; a hint with no matches renders empty.
func renderHint(h game.Hint, color bool) string {
	exact := strings.Repeat(exactMarker, h.Exact)
	partial := strings.Repeat(partialMarker, h.Partial)
	if !color {
		return exact + partial
	}
	var b strings.Builder
	if exact != "" {
		b.WriteString(exactStyle.Render(exact))
	}
	if partial != "" {
		b.WriteString(partialStyle.Render(partial))
	}
	return b.String()
}

// styled applies a lipgloss style only when color output is enabled.
func styled(s lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}
	return s.Render(text)
}
