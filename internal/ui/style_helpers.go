package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// surface paints header and command-bar segments onto the bar's background.
// lipgloss resets the background after every styled run, so the gaps
// between words and segments are painted separately.
type surface struct {
	fill lipgloss.Style
	gap  string
}

func newSurface(color string) surface {
	fill := lipgloss.NewStyle().Background(lipgloss.Color(color))
	return surface{fill: fill, gap: fill.Render(" ")}
}

// Render draws text in style on the bar background, word by word.
func (s surface) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Background(s.fill.GetBackground())
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, s.gap)
}

// Space is one painted blank.
func (s surface) Space() string { return s.gap }

// Spaces returns n painted blanks.
func (s surface) Spaces(n int) string {
	return s.fill.Render(strings.Repeat(" ", n))
}

// Sep paints a literal separator such as ":".
func (s surface) Sep(sep string) string { return s.fill.Render(sep) }

// Join concatenates header segments with a painted separator.
func (s surface) Join(parts []string, sep string) string {
	return strings.Join(parts, s.Sep(sep))
}
