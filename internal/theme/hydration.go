package theme

import "sync"

// HydrationState tracks whether the render target has committed its first frame.
type HydrationState int

const (
	NotReady HydrationState = iota
	Ready
)

func (h HydrationState) String() string {
	if h == Ready {
		return "ready"
	}
	return "not-ready"
}

// Gate is a one-way NotReady -> Ready latch.
type Gate struct {
	once  sync.Once
	mu    sync.RWMutex
	state HydrationState
}

// State returns the current hydration state.
func (g *Gate) State() HydrationState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Ready reports whether the first paint has been committed.
func (g *Gate) Ready() bool { return g.State() == Ready }

// Open moves the gate to Ready. It returns true only for the call that made
// the transition.
func (g *Gate) Open() bool {
	opened := false
	g.once.Do(func() {
		g.mu.Lock()
		g.state = Ready
		g.mu.Unlock()
		opened = true
	})
	return opened
}
