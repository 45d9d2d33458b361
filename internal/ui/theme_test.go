package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGetTheme_CycleIsRegistered(t *testing.T) {
	for _, name := range themeOrder {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q, want %q", name, got, name)
		}
		if len(GetTheme(name).CategoryColors) == 0 {
			t.Fatalf("theme %s has no category colors", name)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox", got)
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.in); got != tt.want {
			t.Fatalf("NextTheme(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestCategoryColorCycles(t *testing.T) {
	th := GetTheme("Nightfox")
	n := len(th.CategoryColors)
	if n == 0 {
		t.Fatalf("Nightfox has no category colors")
	}
	if got := th.CategoryColor(n + 1); got != th.CategoryColors[1] {
		t.Fatalf("CategoryColor(%d) = %q, want %q", n+1, got, th.CategoryColors[1])
	}
	if got := (Theme{Accent: "#fff"}).CategoryColor(3); got != "#fff" {
		t.Fatalf("CategoryColor without palette = %q, want accent", got)
	}
}

func TestSurfaceRenderKeepsSpacing(t *testing.T) {
	bar := newSurface(GetTheme("Nightfox").Surface)
	text := "Unknown keys:  3"
	got := bar.Render(text, lipgloss.NewStyle())
	if w := lipgloss.Width(got); w != len(text) {
		t.Fatalf("Render width = %d, want %d", w, len(text))
	}
	if bar.Render("", lipgloss.NewStyle()) != "" {
		t.Fatal("Render of empty text should be empty")
	}
	if w := lipgloss.Width(bar.Spaces(4)); w != 4 {
		t.Fatalf("Spaces(4) width = %d, want 4", w)
	}
	if w := lipgloss.Width(bar.Join([]string{"a", "b"}, "  ")); w != 4 {
		t.Fatalf("Join width = %d, want 4", w)
	}
}
