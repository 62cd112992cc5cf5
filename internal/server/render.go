package server

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/page"
	"github.com/Zachkp/folio/internal/reveal"
	"github.com/Zachkp/folio/internal/theme"
)

type sectionView struct {
	Name    string
	Trigger string
	Blocks  []blockView
}

type blockView struct {
	page.Block
	Attrs   reveal.Attrs
	Snippet template.HTML
}

// themeView is what templates may know about the theme. Effective is only
// set once the client has painted.
type themeView struct {
	Ready      bool
	Effective  string
	Preference string
	Next       string
}

func newThemeView(r *theme.Resolver) themeView {
	e, ok := r.View()
	if !ok {
		return themeView{}
	}
	return themeView{
		Ready:      true,
		Effective:  e.String(),
		Preference: r.Preference().String(),
		Next:       e.Opposite().String(),
	}
}

func buildSections(sections []page.Section) ([]sectionView, error) {
	out := make([]sectionView, 0, len(sections))
	for _, sec := range sections {
		schedule, err := sec.Schedule()
		if err != nil {
			return nil, err
		}
		sv := sectionView{Name: sec.Name, Trigger: sec.Trigger.String()}
		for i, b := range sec.Blocks {
			bv := blockView{Block: b, Attrs: reveal.AttrsFor(sec.Trigger, schedule[i])}
			if b.Project != nil && b.Project.Snippet != nil {
				bv.Snippet = content.HighlightHTML(*b.Project.Snippet)
			}
			sv.Blocks = append(sv.Blocks, bv)
		}
		out = append(out, sv)
	}
	return out, nil
}

// buildThemeCSS renders both palettes as CSS variables. Before the client
// has painted <html> carries no theme class, so the OS preference decides.
func buildThemeCSS() (string, error) {
	var b strings.Builder
	light, dark := theme.LightPalette(), theme.DarkPalette()

	writeVars(&b, ":root, html.light", light)
	b.WriteString("@media (prefers-color-scheme: dark) {\n")
	writeVars(&b, "html:not(.light)", dark)
	b.WriteString("}\n")
	writeVars(&b, "html.dark", dark)

	lightCSS, err := content.HighlightCSS(light.ChromaStyle, "html:not(.dark)")
	if err != nil {
		return "", err
	}
	darkCSS, err := content.HighlightCSS(dark.ChromaStyle, "html.dark")
	if err != nil {
		return "", err
	}
	b.WriteString(lightCSS)
	b.WriteString(darkCSS)
	return b.String(), nil
}

func writeVars(b *strings.Builder, selector string, p theme.Palette) {
	fmt.Fprintf(b, "%s {\n", selector)
	fmt.Fprintf(b, "  --bg: %s;\n", p.Bg)
	fmt.Fprintf(b, "  --fg: %s;\n", p.Fg)
	fmt.Fprintf(b, "  --muted: %s;\n", p.MutedFg)
	fmt.Fprintf(b, "  --card-bg: %s;\n", p.CardBg)
	fmt.Fprintf(b, "  --card-border: %s;\n", p.CardBorder)
	fmt.Fprintf(b, "  --accent: %s;\n", p.AccentFg)
	fmt.Fprintf(b, "  --link: %s;\n", p.LinkFg)
	b.WriteString("}\n")
}
