package preview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/page"
	"github.com/Zachkp/folio/internal/reveal"
	"github.com/Zachkp/folio/internal/theme"
)

func newTestModel(t *testing.T, store theme.Store, env theme.Effective) (Model, *reveal.ManualClock) {
	t.Helper()
	clock := reveal.NewManualClock()
	r := theme.NewResolver(store, theme.NewStaticEnvironment(env))
	t.Cleanup(r.Close)
	m, err := NewModel(page.Build(content.Default()), r, reveal.NewEngine(clock))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m, clock
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func resize(m Model, w, h int) Model {
	m, _ = update(m, tea.WindowSizeMsg{Width: w, Height: h})
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain delivers every queued transition to the model.
func drain(m Model) Model {
	for {
		select {
		case tr := <-m.events:
			m, _ = update(m, revealMsg(tr))
		default:
			return m
		}
	}
}

func handle(t *testing.T, m Model, name string) *reveal.Handle {
	t.Helper()
	for i, s := range m.sections {
		if s.Name == name {
			return m.handles[i]
		}
	}
	t.Fatalf("no section %q", name)
	return nil
}

func TestModel_BlankUntilFirstFrame(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t, theme.NewMemoryStore("dark"), theme.EffectiveLight)
	if got := m.View(); got != "" {
		t.Errorf("View() before first frame = %q, want empty", got)
	}
	if m.resolver.Hydration() != theme.NotReady {
		t.Error("resolver should not be ready before the first frame")
	}
	for _, h := range m.handles {
		if h.State() != reveal.Registered {
			t.Errorf("%s state=%v before first frame", h.Name(), h.State())
		}
	}

	m = resize(m, 80, 10)
	if m.resolver.Hydration() != theme.Ready {
		t.Error("first frame should commit the paint")
	}
	if m.View() == "" {
		t.Error("View() should draw after the first frame")
	}
}

func TestModel_HeroRevealsOnMount(t *testing.T) {
	t.Parallel()
	m, clock := newTestModel(t, theme.NewMemoryStore(), theme.EffectiveDark)
	name := content.Default().Name
	m = resize(m, 80, 10)

	if got := handle(t, m, "hero").State(); got != reveal.Active {
		t.Fatalf("hero state=%v, want active", got)
	}
	if strings.Contains(m.View(), name) {
		t.Error("name should stay hidden until its transition begins")
	}

	clock.Advance(0)
	m = drain(m)
	if m.visible["hero/name"] != entering {
		t.Errorf("hero/name=%v, want entering", m.visible["hero/name"])
	}
	if m.visible["hero/title"] != hidden {
		t.Errorf("hero/title=%v, want hidden before 100ms", m.visible["hero/title"])
	}
	if !strings.Contains(m.View(), name) {
		t.Error("name should be drawn once entering")
	}

	clock.Advance(200 * time.Millisecond)
	m = drain(m)
	for _, id := range []string{"hero/name", "hero/title", "hero/links"} {
		if m.visible[id] != entering {
			t.Errorf("%s=%v, want entering", id, m.visible[id])
		}
	}

	m, _ = update(m, settledMsg{id: "hero/name"})
	if m.visible["hero/name"] != shown {
		t.Errorf("hero/name=%v, want shown", m.visible["hero/name"])
	}
}

func TestModel_BelowFoldWaitsForScroll(t *testing.T) {
	t.Parallel()
	m, clock := newTestModel(t, theme.NewMemoryStore(), theme.EffectiveDark)
	m = resize(m, 80, 10)

	if got := handle(t, m, "about").State(); got != reveal.Active {
		t.Errorf("about state=%v, want active inside the first screen", got)
	}
	contact := handle(t, m, "contact")
	if got := contact.State(); got != reveal.Attached {
		t.Fatalf("contact state=%v, want attached", got)
	}

	m, _ = update(m, key("G"))
	if got := contact.State(); got != reveal.Active {
		t.Fatalf("contact state=%v after scrolling, want active", got)
	}

	clock.Advance(time.Second)
	m = drain(m)
	if m.visible["contact/card"] != entering {
		t.Errorf("contact/card=%v, want entering", m.visible["contact/card"])
	}

	m, _ = update(m, key("g"))
	m, _ = update(m, key("G"))
	if n := len(m.events); n != 0 {
		t.Errorf("scrolling back should not replay, got %d events", n)
	}
}

func TestModel_RevealKeepsLayout(t *testing.T) {
	t.Parallel()
	m, clock := newTestModel(t, theme.NewMemoryStore(), theme.EffectiveLight)
	m = resize(m, 80, 10)
	_, before := m.render()

	for _, h := range m.handles {
		h.Activate()
	}
	clock.Advance(time.Second)
	m = drain(m)
	_, during := m.render()
	for id := range m.visible {
		m, _ = update(m, settledMsg{id: id})
	}
	_, after := m.render()

	for i := range before {
		if before[i] != during[i] || before[i] != after[i] {
			t.Errorf("section %d moved: %v / %v / %v", i, before[i], during[i], after[i])
		}
	}
}

func TestModel_ToggleTheme(t *testing.T) {
	t.Parallel()
	store := theme.NewMemoryStore()
	m, _ := newTestModel(t, store, theme.EffectiveDark)

	m, _ = update(m, key("t"))
	if _, err := store.Load(); err == nil {
		t.Error("toggle before the first frame should be ignored")
	}

	m = resize(m, 80, 10)
	m, _ = update(m, key("t"))
	if got := m.resolver.EffectiveTheme(); got != theme.EffectiveLight {
		t.Errorf("effective=%v, want light", got)
	}
	if got, _ := store.Load(); got != "light" {
		t.Errorf("stored=%q, want light", got)
	}
	if !strings.Contains(m.View(), "light (light)") {
		t.Error("help bar should report the new theme")
	}
}

func TestModel_QuitDetachesGroups(t *testing.T) {
	t.Parallel()
	m, clock := newTestModel(t, theme.NewMemoryStore(), theme.EffectiveDark)
	m = resize(m, 80, 10)
	hero := handle(t, m, "hero")

	m, cmd := update(m, key("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if n := len(m.engine.Groups()); n != 0 {
		t.Errorf("%d groups left after quit", n)
	}
	clock.Advance(time.Second)
	if hero.Applied() != 0 || len(m.events) != 0 {
		t.Error("no transition should begin after quit")
	}
}

func TestNewModel_DuplicateSection(t *testing.T) {
	t.Parallel()
	sec := page.Section{Name: "dup", Trigger: reveal.OnMount, Blocks: []page.Block{{ID: "dup/0", Kind: page.KindCard}}}
	engine := reveal.NewEngine(reveal.NewManualClock())
	r := theme.NewResolver(theme.NewMemoryStore(), nil)
	if _, err := NewModel([]page.Section{sec, sec}, r, engine); err == nil {
		t.Fatal("expected an error for a repeated section name")
	}
	if n := len(engine.Groups()); n != 0 {
		t.Errorf("%d groups left registered after failure", n)
	}
}

func TestLineRange_Overlaps(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		r           lineRange
		top, bottom int
		want        bool
	}{
		{"inside", lineRange{2, 4}, 0, 10, true},
		{"above", lineRange{0, 3}, 3, 10, false},
		{"below", lineRange{10, 12}, 0, 10, false},
		{"straddles_top", lineRange{0, 5}, 4, 10, true},
		{"straddles_bottom", lineRange{8, 20}, 0, 10, true},
		{"covers", lineRange{0, 50}, 10, 20, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.r.overlaps(tt.top, tt.bottom); got != tt.want {
				t.Errorf("overlaps(%d, %d)=%v, want %v", tt.top, tt.bottom, got, tt.want)
			}
		})
	}
}
