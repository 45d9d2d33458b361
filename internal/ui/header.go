package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: run state, source and poll health.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newSurface(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("pinmon", styles.Logo)}

	switch {
	case m.starting:
		parts = append(parts, bg.Render("◌ STARTING", styles.WarningText.Bold(true)))
	case m.running:
		parts = append(parts, bg.Render("● RUNNING", styles.SuccessText))
	default:
		parts = append(parts, bg.Render("○ IDLE", styles.MutedText))
	}

	if warning := m.healthWarning(); warning != "" {
		style := styles.WarningText
		if m.health.IsStale() {
			style = styles.DangerText
		}
		parts = append(parts, bg.Render(warning, style))
	}

	if m.hasBatch {
		parts = append(parts,
			bg.Render("Samples:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", m.batch.Total), styles.Text))
		if m.batch.Rejected > 0 {
			parts = append(parts,
				bg.Render("Rejected:", styles.MutedText)+bg.Space()+
					bg.Render(fmt.Sprintf("%d", m.batch.Rejected), styles.WarningText))
		}
		if n := len(m.batch.Orphans); n > 0 && !compact {
			parts = append(parts,
				bg.Render("Unknown keys:", styles.MutedText)+bg.Space()+
					bg.Render(fmt.Sprintf("%d", n), styles.FaintText))
		}
		if !m.batch.At.IsZero() {
			parts = append(parts, bg.Render(m.batch.At.Format("15:04:05"), styles.FaintText))
		}
	}

	if m.ctl != nil && !compact {
		if path := m.ctl.Settings().SourcePath; path != "" {
			parts = append(parts, bg.Render(truncateMiddle(path, 50), styles.MutedText))
		}
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// healthWarning describes poll trouble, or returns "" when polls succeed.
func (m Model) healthWarning() string {
	if m.health.LastError == nil || m.health.ConsecutiveFailures == 0 {
		return ""
	}
	if m.health.IsStale() {
		return fmt.Sprintf("SOURCE UNREADABLE (%d failed polls)", m.health.ConsecutiveFailures)
	}
	return "read error, retrying"
}

// renderCommandBar renders the key hints and the current window settings.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newSurface(m.theme.Surface)
	colon := bg.Sep(":")

	bindings := m.keys.ShortHelp()
	segments := make([]string, 0, len(bindings)+3)
	for _, b := range bindings {
		h := b.Help()
		segments = append(segments,
			bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
	}

	if m.ctl != nil {
		s := m.ctl.Settings()
		segments = append(segments,
			bg.Render("W", styles.AccentText)+colon+bg.Render(fmt.Sprintf("%d", s.WindowSize), styles.Text),
			bg.Render("Max", styles.AccentText)+colon+bg.Render(fmt.Sprintf("%g", s.MaxValue), styles.Text))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderNotice renders a blocking error until any key is pressed.
func (m Model) renderNotice() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Cannot start monitoring"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(m.notice))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Press any key to continue"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Width(min(60, max(m.width-4, 20)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal.Render(b.String()))
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// truncateMiddle truncates a string in the middle, preserving start and end.
func truncateMiddle(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 5 {
		return s[:max]
	}
	// Keep more of the end (file name) than the start
	endLen := (max - 3) * 2 / 3
	startLen := max - 3 - endLen
	return s[:startLen] + "..." + s[len(s)-endLen:]
}
