package theme

import (
	"log"
	"sync"
)

// Change is delivered to subscribers whenever the effective theme is
// recomputed.
type Change struct {
	Preference Preference
	Effective  Effective
}

// Resolver is the session's theme state cell. The preference is read from
// the store once, at construction, and written through on every change.
type Resolver struct {
	store Store
	env   Environment
	gate  Gate

	mu     sync.Mutex
	pref   Preference
	subs   map[int]func(Change)
	nextID int

	stopWatch func()
}

// NewResolver loads the persisted preference from store. A missing or
// unreadable value resolves to System.
func NewResolver(store Store, env Environment) *Resolver {
	if store == nil {
		store = NewMemoryStore()
	}
	if env == nil {
		env = NewStaticEnvironment(EffectiveLight)
	}
	r := &Resolver{
		store: store,
		env:   env,
		pref:  loadPreference(store),
		subs:  map[int]func(Change){},
	}
	r.stopWatch = env.Watch(r.environmentChanged)
	return r
}

func loadPreference(store Store) Preference {
	raw, err := store.Load()
	if err != nil {
		return System
	}
	p, err := ParsePreference(raw)
	if err != nil {
		return System
	}
	return p
}

// Preference returns the current preference.
func (r *Resolver) Preference() Preference {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pref
}

// EffectiveTheme resolves the current preference against the environment.
func (r *Resolver) EffectiveTheme() Effective {
	return Resolve(r.Preference(), r.env)
}

// SetPreference stores p and notifies subscribers. Write failures are logged
// and otherwise ignored; p stays in effect for this session.
func (r *Resolver) SetPreference(p Preference) {
	r.mu.Lock()
	r.pref = p
	r.mu.Unlock()

	if err := r.store.Save(p.String()); err != nil {
		log.Printf("Error saving theme preference: %v", err)
	}
	r.notify()
}

// Toggle pins the opposite of the current effective theme.
func (r *Resolver) Toggle() Effective {
	next := r.EffectiveTheme().Opposite()
	r.SetPreference(next.Preference())
	return next
}

// View returns the effective theme once the first paint has been committed.
// Before that it returns false and callers render theme-neutral output.
func (r *Resolver) View() (Effective, bool) {
	if !r.gate.Ready() {
		return "", false
	}
	return r.EffectiveTheme(), true
}

// Hydration returns the current hydration state.
func (r *Resolver) Hydration() HydrationState {
	return r.gate.State()
}

// MarkPainted is the one-time paint-commit signal. Subscribers receive the
// current state on the transition; later calls do nothing.
func (r *Resolver) MarkPainted() {
	if r.gate.Open() {
		r.notify()
	}
}

// Subscribe registers fn for change notifications. Notifications are held
// back until the first paint has been committed.
func (r *Resolver) Subscribe(fn func(Change)) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

// Close stops watching the environment.
func (r *Resolver) Close() {
	if r.stopWatch != nil {
		r.stopWatch()
	}
}

func (r *Resolver) environmentChanged(Effective) {
	if r.Preference() != System {
		return
	}
	r.notify()
}

func (r *Resolver) notify() {
	if !r.gate.Ready() {
		return
	}
	r.mu.Lock()
	change := Change{Preference: r.pref, Effective: Resolve(r.pref, r.env)}
	fns := make([]func(Change), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
}
