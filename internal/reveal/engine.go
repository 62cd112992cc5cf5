package reveal

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrDuplicateGroup is returned when a group name is already registered.
var ErrDuplicateGroup = errors.New("reveal group already registered")

// State is a group's lifecycle position.
type State int

const (
	Registered State = iota
	Attached
	Active
	Detached
)

func (s State) String() string {
	switch s {
	case Attached:
		return "attached"
	case Active:
		return "active"
	case Detached:
		return "detached"
	default:
		return "registered"
	}
}

// ApplyFunc receives each transition as it begins. It runs while the group
// is locked, so it must not block or call back into the handle.
type ApplyFunc func(Transition)

// Engine owns the groups of one page view.
type Engine struct {
	clock Clock

	mu     sync.Mutex
	groups map[string]*Handle
	order  []string
}

// NewEngine returns an engine scheduling on clock. A nil clock uses real time.
func NewEngine(clock Clock) *Engine {
	if clock == nil {
		clock = RealClock{}
	}
	return &Engine{clock: clock, groups: map[string]*Handle{}}
}

// RegisterGroup builds a group's schedule. Nothing runs until the group is
// activated.
func (e *Engine) RegisterGroup(name string, elements []Element, trigger Trigger, stagger time.Duration, apply ApplyFunc) (*Handle, error) {
	schedule, err := Build(name, elements, stagger)
	if err != nil {
		return nil, err
	}
	if apply == nil {
		apply = func(Transition) {}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.groups[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateGroup, name)
	}
	h := &Handle{
		engine:   e,
		name:     name,
		trigger:  trigger,
		stagger:  stagger,
		schedule: schedule,
		apply:    apply,
		done:     make(chan struct{}),
	}
	e.groups[name] = h
	e.order = append(e.order, name)
	return h, nil
}

// Activate starts h's sequence. See Handle.Activate.
func (e *Engine) Activate(h *Handle) bool {
	return h.Activate()
}

// Group returns a registered group by name.
func (e *Engine) Group(name string) (*Handle, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	h, ok := e.groups[name]
	return h, ok
}

// Groups returns the live groups in registration order.
func (e *Engine) Groups() []*Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Handle, 0, len(e.order))
	for _, name := range e.order {
		out = append(out, e.groups[name])
	}
	return out
}

// DetachAll tears down every group, as when navigating away.
func (e *Engine) DetachAll() {
	for _, h := range e.Groups() {
		h.Detach()
	}
}

func (e *Engine) forget(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.groups, name)
	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Handle is a registered group.
type Handle struct {
	engine   *Engine
	name     string
	trigger  Trigger
	stagger  time.Duration
	schedule []Transition
	apply    ApplyFunc

	mu         sync.Mutex
	state      State
	activated  bool
	timers     []Timer
	next       int
	done       chan struct{}
	doneClosed bool
}

func (h *Handle) Name() string           { return h.name }
func (h *Handle) Trigger() Trigger       { return h.trigger }
func (h *Handle) Stagger() time.Duration { return h.stagger }

// Schedule returns a copy of the group's transitions.
func (h *Handle) Schedule() []Transition {
	return append([]Transition(nil), h.schedule...)
}

// State returns the group's lifecycle state.
func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Applied returns how many transitions have begun.
func (h *Handle) Applied() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.next
}

// Done is closed once every transition has begun or the group is detached.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Attach places the group in the render tree. OnMount groups activate
// immediately. It reports whether this call activated the group.
func (h *Handle) Attach() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != Registered {
		return false
	}
	h.state = Attached
	if h.trigger == OnMount {
		return h.activateLocked()
	}
	return false
}

// Intersect reports that the group entered the viewport. Only the first
// intersection of an attached OnFirstIntersect group activates it.
func (h *Handle) Intersect() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.trigger != OnFirstIntersect || h.state != Attached {
		return false
	}
	return h.activateLocked()
}

// Activate starts the sequence regardless of trigger. A group activates at
// most once and never after Detach.
func (h *Handle) Activate() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.activateLocked()
}

func (h *Handle) activateLocked() bool {
	if h.activated || h.state == Detached {
		return false
	}
	h.activated = true
	h.state = Active
	if len(h.schedule) == 0 {
		h.closeDoneLocked()
		return true
	}
	h.timers = make([]Timer, len(h.schedule))
	for i, tr := range h.schedule {
		idx := i
		h.timers[i] = h.engine.clock.AfterFunc(tr.Start, func() { h.fire(idx) })
	}
	return true
}

// fire begins every transition up to idx that has not begun, so transitions
// always begin in index order even if timers race.
func (h *Handle) fire(idx int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == Detached {
		return
	}
	for h.next <= idx {
		h.apply(h.schedule[h.next])
		h.next++
	}
	if h.next == len(h.schedule) {
		h.closeDoneLocked()
	}
}

// Detach cancels every pending transition. Once Detach returns no further
// transition begins.
func (h *Handle) Detach() {
	h.mu.Lock()
	if h.state == Detached {
		h.mu.Unlock()
		return
	}
	h.state = Detached
	for _, t := range h.timers {
		if t != nil {
			t.Stop()
		}
	}
	h.timers = nil
	h.closeDoneLocked()
	h.mu.Unlock()

	h.engine.forget(h.name)
}

func (h *Handle) closeDoneLocked() {
	if !h.doneClosed {
		close(h.done)
		h.doneClosed = true
	}
}
