// Package preview draws the portfolio in the terminal, revealing each section
// the way the browser does.
package preview

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/folio/internal/page"
	"github.com/Zachkp/folio/internal/reveal"
	"github.com/Zachkp/folio/internal/theme"
)

const helpHeight = 1

type visibility int

const (
	hidden visibility = iota
	entering
	shown
)

// Messages
type revealMsg reveal.Transition

type settledMsg struct {
	id string
}

// Model is the Bubble Tea model for the terminal preview.
type Model struct {
	sections []page.Section
	handles  []*reveal.Handle
	engine   *reveal.Engine
	resolver *theme.Resolver
	events   chan reveal.Transition

	visible map[string]visibility
	ranges  []lineRange
	styles  Styles

	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewModel registers every section with engine. Nothing is revealed until
// the first window size arrives, which is when the first frame is drawn.
func NewModel(sections []page.Section, resolver *theme.Resolver, engine *reveal.Engine) (Model, error) {
	total := 0
	for _, s := range sections {
		total += len(s.Blocks)
	}
	// Each transition is delivered once, so a buffer of total never fills
	// and apply never blocks.
	events := make(chan reveal.Transition, total)
	apply := func(tr reveal.Transition) {
		select {
		case events <- tr:
		default:
		}
	}

	m := Model{
		sections: sections,
		engine:   engine,
		resolver: resolver,
		events:   events,
		visible:  make(map[string]visibility, total),
	}
	for _, s := range sections {
		h, err := s.Register(engine, apply)
		if err != nil {
			engine.DetachAll()
			return Model{}, err
		}
		m.handles = append(m.handles, h)
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return waitForReveal(m.events)
}

func waitForReveal(events <-chan reveal.Transition) tea.Cmd {
	return func() tea.Msg {
		tr, ok := <-events
		if !ok {
			return nil
		}
		return revealMsg(tr)
	}
}

func settleAfter(tr reveal.Transition) tea.Cmd {
	return tea.Tick(tr.Duration, func(time.Time) tea.Msg {
		return settledMsg{id: tr.Element.ID}
	})
}

// Update dispatches messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case revealMsg:
		tr := reveal.Transition(msg)
		m.visible[tr.Element.ID] = entering
		m.refresh()
		return m, tea.Batch(settleAfter(tr), waitForReveal(m.events))
	case settledMsg:
		m.visible[msg.id] = shown
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.checkIntersections()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	first := !m.ready
	if first {
		m.viewport = viewport.New(m.width, m.contentHeight())
		m.ready = true
		m.resolver.MarkPainted()
		m.restyle()
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = m.contentHeight()
	}
	m.refresh()
	if first {
		for _, h := range m.handles {
			h.Attach()
		}
	}
	m.checkIntersections()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.engine.DetachAll()
		return m, tea.Quit
	case "t":
		if !m.ready {
			return m, nil
		}
		m.resolver.Toggle()
		m.restyle()
		m.refresh()
		return m, nil
	case "g", "home":
		m.viewport.GotoTop()
	case "G", "end":
		m.viewport.GotoBottom()
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.checkIntersections()
		return m, cmd
	}
	m.checkIntersections()
	return m, nil
}

func (m Model) contentHeight() int {
	return max(1, m.height-helpHeight)
}

func (m *Model) restyle() {
	e, ok := m.resolver.View()
	if !ok {
		return
	}
	m.styles = NewStyles(theme.PaletteFor(e))
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	var body string
	body, m.ranges = m.render()
	m.viewport.SetContent(body)
}

// checkIntersections reports every section whose lines overlap the visible
// window. Handles ignore all but the first report.
func (m Model) checkIntersections() {
	if !m.ready {
		return
	}
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	for i, r := range m.ranges {
		if i < len(m.handles) && r.overlaps(top, bottom) {
			m.handles[i].Intersect()
		}
	}
}
