// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import "github.com/charmbracelet/lipgloss"

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Common text transformation helpers.
var (
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)
