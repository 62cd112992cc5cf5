package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/theme"
)

// Styles holds the lipgloss styles derived from a palette.
type Styles struct {
	Name     lipgloss.Style
	Tagline  lipgloss.Style
	Heading  lipgloss.Style
	Link     lipgloss.Style
	Muted    lipgloss.Style
	Card     lipgloss.Style
	CardHead lipgloss.Style
	Item     lipgloss.Style

	StatusBar lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style

	chroma string
}

// NewStyles creates styles from a palette.
func NewStyles(p theme.Palette) Styles {
	return Styles{
		Name: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Fg)).
			Bold(true),
		Tagline: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.MutedFg)),
		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.AccentFg)).
			Bold(true).
			Underline(true),
		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.LinkFg)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.MutedFg)),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.CardBorder)).
			Padding(0, 1),
		CardHead: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Fg)).
			Bold(true),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Fg)),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(p.CardBg)).
			Foreground(lipgloss.Color(p.MutedFg)),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.AccentFg)).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.MutedFg)),

		chroma: p.ChromaStyle,
	}
}

// faint returns the content styles dimmed, for blocks still entering.
func (s Styles) faint() Styles {
	for _, st := range []*lipgloss.Style{&s.Name, &s.Tagline, &s.Heading, &s.Link, &s.Muted, &s.Card, &s.CardHead, &s.Item} {
		*st = st.Faint(true)
	}
	return s
}
