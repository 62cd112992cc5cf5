package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/page"
)

// View composition and block rendering.

// lineRange is the half-open span of content lines a section occupies.
type lineRange struct {
	start, end int
}

func (r lineRange) overlaps(top, bottom int) bool {
	return r.start < bottom && r.end > top
}

// View is empty until the first frame, so nothing theme-dependent is drawn
// before the theme is known.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.renderHelpBar())
}

func (m Model) render() (string, []lineRange) {
	var lines []string
	ranges := make([]lineRange, len(m.sections))
	for i, sec := range m.sections {
		start := len(lines)
		for _, b := range sec.Blocks {
			lines = append(lines, strings.Split(m.renderBlock(b), "\n")...)
		}
		ranges[i] = lineRange{start: start, end: len(lines)}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n"), ranges
}

// renderBlock keeps a block's height the same in every visibility state so
// revealing it never moves the blocks below.
func (m Model) renderBlock(b page.Block) string {
	switch m.visible[b.ID] {
	case hidden:
		return strings.Repeat("\n", lipgloss.Height(m.drawBlock(b, m.styles))-1)
	case entering:
		return m.drawBlock(b, m.styles.faint())
	default:
		return m.drawBlock(b, m.styles)
	}
}

func (m Model) blockWidth() int {
	return max(20, m.width-4)
}

func (m Model) drawBlock(b page.Block, s Styles) string {
	w := m.blockWidth()
	switch b.Kind {
	case page.KindName:
		return s.Name.Render(b.Title)
	case page.KindTagline:
		return s.Tagline.Render(b.Title)
	case page.KindLinks:
		links := make([]string, len(b.Links))
		for i, l := range b.Links {
			links[i] = s.Link.Render(l.Label + " <" + l.URL + ">")
		}
		return lipgloss.NewStyle().Width(w).Render(strings.Join(links, "  "))
	case page.KindHeading:
		return "\n" + s.Heading.Render(b.Title)
	case page.KindSkills:
		return card(s, w, s.CardHead.Render(b.Title), s.Item.Render(strings.Join(b.Items, " · ")))
	case page.KindJob:
		return card(s, w, s.CardHead.Render(b.Title), s.Muted.Render(b.Subtitle), s.Item.Render(b.Body))
	case page.KindProject:
		parts := []string{s.CardHead.Render(b.Title), s.Muted.Render(b.Body)}
		if p := b.Project; p != nil {
			if p.URL != "" {
				parts = append(parts, s.Link.Render(p.URL))
			}
			if p.Snippet != nil {
				parts = append(parts, "", content.HighlightTerminal(*p.Snippet, s.chroma))
			}
		}
		return card(s, w, parts...)
	case page.KindContact:
		return card(s, w, s.CardHead.Render(b.Title), s.Muted.Render(b.Subtitle), s.Link.Render(b.Email))
	default:
		return card(s, w, s.CardHead.Render(b.Title), s.Muted.Render(b.Subtitle), s.Item.Render(b.Body))
	}
}

func card(s Styles, w int, parts ...string) string {
	return s.Card.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) renderHelpBar() string {
	e, _ := m.resolver.View()
	keys := []struct{ key, desc string }{
		{"t", "theme"},
		{"j/k", "scroll"},
		{"g/G", "top/bottom"},
		{"q", "quit"},
	}
	var parts []string
	for _, k := range keys {
		parts = append(parts, m.styles.HelpKey.Render(k.key)+" "+m.styles.HelpDesc.Render(k.desc))
	}
	bar := strings.Join(parts, "  ") + "  " + m.styles.HelpDesc.Render(e.String()+" ("+m.resolver.Preference().String()+")")
	return m.styles.StatusBar.Width(m.width).Render(bar)
}
