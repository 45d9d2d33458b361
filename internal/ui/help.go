package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pinmon/internal/category"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Bold(true).Render("Categories"))
	b.WriteString("\n")
	b.WriteString(m.categoryLegend())

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// categoryLegend lists the number key for each category, marking the
// selected ones.
func (m Model) categoryLegend() string {
	styles := m.theme.Styles()
	selected := make(map[int]bool)
	if m.ctl != nil {
		for _, k := range m.ctl.Settings().Categories {
			selected[int(k)] = true
		}
	}

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	var lines []string
	for i, c := range category.All() {
		mark := styles.FaintText.Render("[ ]")
		if selected[int(c.Key)] {
			mark = styles.SuccessText.Render("[x]")
		}
		lines = append(lines, keyStyle.Render(string(rune('1'+i)))+" "+mark+" "+styles.Text.Render(c.Label))
	}
	return strings.Join(lines, "\n")
}
