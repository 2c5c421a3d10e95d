package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App           lipgloss.Style
	Title         lipgloss.Style
	Count         lipgloss.Style
	SearchPrompt  lipgloss.Style
	Item          lipgloss.Style
	ItemSelected  lipgloss.Style
	ItemHighlight lipgloss.Style
	URL           lipgloss.Style
	TagBadge      lipgloss.Style
	FormLabel     lipgloss.Style
	FormBox       lipgloss.Style
	Error         lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Empty         lipgloss.Style
	HintKey       lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc      lipgloss.Style // Description portion of hints (e.g., "confirm", "move")
	Modal         lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent,
// plus an amber flash for freshly created or saved entries.
func DefaultStyles() Styles {
	// Industrial color palette
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}   // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}    // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}    // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}    // inactive borders
	highlight := lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#F39C12"} // new-entry flash
	danger := lipgloss.AdaptiveColor{Light: "#A03030", Dark: "#E74C3C"}    // errors

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Count: lipgloss.NewStyle().
			Foreground(subtle),

		SearchPrompt: lipgloss.NewStyle().
			Foreground(accent),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		ItemHighlight: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(highlight).
			Foreground(lipgloss.Color("#1A1A1A")),

		URL: lipgloss.NewStyle().
			Foreground(subtle),

		TagBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Padding(0, 1),

		FormLabel: lipgloss.NewStyle().
			Foreground(subtle),

		FormBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(accent).
			PaddingLeft(1),

		Error: lipgloss.NewStyle().
			Foreground(danger),

		Status: lipgloss.NewStyle().
			Foreground(subtle),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(1, 2),
	}
}
