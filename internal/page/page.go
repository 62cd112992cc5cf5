// Package page turns portfolio content into the ordered sections every
// renderer draws. Each section is one reveal group; each block in it is one
// reveal element.
package page

import (
	"fmt"
	"time"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/reveal"
)

// Kind is how a block is drawn.
type Kind string

const (
	KindName    Kind = "name"
	KindTagline Kind = "tagline"
	KindLinks   Kind = "links"
	KindHeading Kind = "heading"
	KindCard    Kind = "card"
	KindSkills  Kind = "skills"
	KindJob     Kind = "job"
	KindProject Kind = "project"
	KindContact Kind = "contact"
)

// Block is one animated element of a section.
type Block struct {
	ID       string
	Kind     Kind
	Title    string
	Subtitle string
	Body     string
	Items    []string
	Links    []content.Link
	Project  *content.Project
	Email    string
}

// Section is a group of blocks revealed together.
type Section struct {
	Name    string
	Trigger reveal.Trigger
	Stagger time.Duration
	Blocks  []Block
}

// Elements returns one FadeInUp element per block.
func (s Section) Elements() []reveal.Element {
	els := make([]reveal.Element, len(s.Blocks))
	for i, b := range s.Blocks {
		els[i] = reveal.FadeInUp(b.ID)
	}
	return els
}

// Schedule computes the section's reveal timing.
func (s Section) Schedule() ([]reveal.Transition, error) {
	return reveal.Build(s.Name, s.Elements(), s.Stagger)
}

// Register adds the section to an engine as a reveal group.
func (s Section) Register(e *reveal.Engine, apply reveal.ApplyFunc) (*reveal.Handle, error) {
	return e.RegisterGroup(s.Name, s.Elements(), s.Trigger, s.Stagger, apply)
}

// Build lays out the portfolio. The hero reveals on mount; every other
// section reveals once when it first scrolls into view. Empty sections are
// left out.
func Build(p content.Portfolio) []Section {
	sections := []Section{hero(p)}
	if p.About.Title != "" || p.About.Body != "" {
		sections = append(sections, single("about", Block{
			ID:       "about/card",
			Kind:     KindCard,
			Title:    p.About.Title,
			Subtitle: p.About.Description,
			Body:     p.About.Body,
		}))
	}
	if len(p.Skills) > 0 {
		blocks := []Block{heading("skills", "Technical Skills")}
		for i, g := range p.Skills {
			blocks = append(blocks, Block{
				ID:    fmt.Sprintf("skills/%d", i),
				Kind:  KindSkills,
				Title: g.Title,
				Items: g.Skills,
			})
		}
		sections = append(sections, staggered("skills", blocks))
	}
	if len(p.Experience) > 0 {
		blocks := []Block{heading("experience", "Professional Experience")}
		for i, j := range p.Experience {
			blocks = append(blocks, Block{
				ID:       fmt.Sprintf("experience/%d", i),
				Kind:     KindJob,
				Title:    j.Title,
				Subtitle: j.Company + " | " + j.Period,
				Body:     j.Description,
			})
		}
		sections = append(sections, staggered("experience", blocks))
	}
	if len(p.Projects) > 0 {
		blocks := []Block{heading("projects", "Projects")}
		for i := range p.Projects {
			pr := p.Projects[i]
			blocks = append(blocks, Block{
				ID:      fmt.Sprintf("projects/%d", i),
				Kind:    KindProject,
				Title:   pr.Name,
				Body:    pr.Description,
				Project: &pr,
			})
		}
		sections = append(sections, staggered("projects", blocks))
	}
	if p.Contact.Title != "" || p.Contact.Email != "" {
		sections = append(sections, single("contact", Block{
			ID:       "contact/card",
			Kind:     KindContact,
			Title:    p.Contact.Title,
			Subtitle: p.Contact.Description,
			Email:    p.Contact.Email,
		}))
	}
	return sections
}

func hero(p content.Portfolio) Section {
	blocks := []Block{
		{ID: "hero/name", Kind: KindName, Title: p.Name},
		{ID: "hero/title", Kind: KindTagline, Title: p.Title},
	}
	if len(p.Links) > 0 {
		blocks = append(blocks, Block{ID: "hero/links", Kind: KindLinks, Links: p.Links})
	}
	return Section{Name: "hero", Trigger: reveal.OnMount, Stagger: reveal.DefaultStagger, Blocks: blocks}
}

func heading(section, title string) Block {
	return Block{ID: section + "/heading", Kind: KindHeading, Title: title}
}

func staggered(name string, blocks []Block) Section {
	return Section{Name: name, Trigger: reveal.OnFirstIntersect, Stagger: reveal.DefaultStagger, Blocks: blocks}
}

func single(name string, b Block) Section {
	return Section{Name: name, Trigger: reveal.OnFirstIntersect, Blocks: []Block{b}}
}
