package page

import (
	"testing"
	"time"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/reveal"
)

func TestBuild_DefaultSections(t *testing.T) {
	t.Parallel()
	sections := Build(content.Default())
	want := []string{"hero", "about", "skills", "experience", "projects", "contact"}
	if len(sections) != len(want) {
		t.Fatalf("len(sections)=%d, want %d", len(sections), len(want))
	}
	for i, s := range sections {
		if s.Name != want[i] {
			t.Errorf("sections[%d]=%q, want %q", i, s.Name, want[i])
		}
		if _, err := s.Schedule(); err != nil {
			t.Errorf("%s: Schedule: %v", s.Name, err)
		}
	}
	if sections[0].Trigger != reveal.OnMount {
		t.Error("hero should reveal on mount")
	}
	for _, s := range sections[1:] {
		if s.Trigger != reveal.OnFirstIntersect {
			t.Errorf("%s should reveal on first intersection", s.Name)
		}
	}
}

func TestBuild_HeroOffsets(t *testing.T) {
	t.Parallel()
	hero := Build(content.Default())[0]
	schedule, err := hero.Schedule()
	if err != nil {
		t.Fatal(err)
	}
	want := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}
	if len(schedule) != len(want) {
		t.Fatalf("len=%d, want %d", len(schedule), len(want))
	}
	for i, tr := range schedule {
		if tr.Start != want[i] {
			t.Errorf("Start[%d]=%s, want %s", i, tr.Start, want[i])
		}
	}
}

func TestBuild_OmitsEmptySections(t *testing.T) {
	t.Parallel()
	sections := Build(content.Portfolio{Name: "Ada", Title: "Engineer"})
	if len(sections) != 1 || sections[0].Name != "hero" {
		t.Fatalf("sections=%+v", sections)
	}
	if len(sections[0].Blocks) != 2 {
		t.Errorf("hero without links should have 2 blocks, got %d", len(sections[0].Blocks))
	}
}

func TestBuild_BlockIDsUnique(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, s := range Build(content.Default()) {
		for _, b := range s.Blocks {
			if seen[b.ID] {
				t.Errorf("duplicate block id %q", b.ID)
			}
			seen[b.ID] = true
		}
	}
}

func TestSection_Register(t *testing.T) {
	t.Parallel()
	e := reveal.NewEngine(reveal.NewManualClock())
	for _, s := range Build(content.Default()) {
		if _, err := s.Register(e, nil); err != nil {
			t.Fatalf("%s: %v", s.Name, err)
		}
	}
	if len(e.Groups()) != 6 {
		t.Errorf("Groups()=%d, want 6", len(e.Groups()))
	}
}
