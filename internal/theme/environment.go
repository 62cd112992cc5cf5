package theme

import (
	"sync"

	"github.com/muesli/termenv"
)

// Environment reports the host's light/dark preference and notifies
// watchers when it changes.
type Environment interface {
	Prefers() Effective
	Watch(fn func(Effective)) (stop func())
}

// StaticEnvironment holds a settable preference.
type StaticEnvironment struct {
	mu       sync.Mutex
	value    Effective
	watchers map[int]func(Effective)
	next     int
}

// NewStaticEnvironment returns an environment reporting e.
func NewStaticEnvironment(e Effective) *StaticEnvironment {
	return &StaticEnvironment{value: e, watchers: map[int]func(Effective){}}
}

func (s *StaticEnvironment) Prefers() Effective {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set changes the reported preference and notifies watchers if it differs.
func (s *StaticEnvironment) Set(e Effective) {
	s.mu.Lock()
	if s.value == e {
		s.mu.Unlock()
		return
	}
	s.value = e
	fns := make([]func(Effective), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}

func (s *StaticEnvironment) Watch(fn func(Effective)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.watchers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.watchers, id)
	}
}

// DetectTerminal queries the terminal background color. Terminals that do not
// answer the query are reported as dark.
func DetectTerminal(out *termenv.Output) *StaticEnvironment {
	if out == nil || out.HasDarkBackground() {
		return NewStaticEnvironment(EffectiveDark)
	}
	return NewStaticEnvironment(EffectiveLight)
}
