// Package reveal schedules staged entrance animations for groups of elements.
//
// A group is registered with an ordered list of elements, a trigger and a
// stagger interval. When the group activates, element i starts its transition
// i*stagger after activation and runs for the element's duration. Groups
// triggered by intersection activate once, the first time they become
// visible; detaching a group cancels every transition that has not started.
package reveal

import (
	"errors"
	"time"
)

// Trigger decides when a group activates.
type Trigger int

const (
	// OnMount activates as soon as the group is attached.
	OnMount Trigger = iota
	// OnFirstIntersect activates the first time the group enters the viewport.
	OnFirstIntersect
)

func (t Trigger) String() string {
	if t == OnFirstIntersect {
		return "intersect"
	}
	return "mount"
}

// VisualState is the animated part of an element's appearance.
type VisualState struct {
	OffsetY float64 // px below the resting position
	Opacity float64 // 0..1
}

// Element is one animated item within a group.
type Element struct {
	ID       string
	Initial  VisualState
	Target   VisualState
	Duration time.Duration
}

// Transition is an element's scheduled animation, relative to activation.
type Transition struct {
	Group    string
	Index    int
	Element  Element
	Start    time.Duration
	Duration time.Duration
}

// End is the offset at which the transition completes.
func (t Transition) End() time.Duration { return t.Start + t.Duration }

var (
	// ErrStagger is returned when a multi-element group has a non-positive
	// stagger interval, which would make start times tie.
	ErrStagger = errors.New("stagger interval must be positive")
	// ErrDuration is returned for a negative element duration.
	ErrDuration = errors.New("transition duration must not be negative")
)

const (
	// DefaultStagger is the offset between consecutive elements.
	DefaultStagger = 100 * time.Millisecond
	// DefaultDuration is the length of a FadeInUp transition.
	DefaultDuration = 600 * time.Millisecond
)

// FadeInUp returns an element that rises 20px while fading in.
func FadeInUp(id string) Element {
	return Element{
		ID:       id,
		Initial:  VisualState{OffsetY: 20, Opacity: 0},
		Target:   VisualState{OffsetY: 0, Opacity: 1},
		Duration: DefaultDuration,
	}
}

// FadeInUpAll returns a FadeInUp element per id.
func FadeInUpAll(ids ...string) []Element {
	els := make([]Element, len(ids))
	for i, id := range ids {
		els[i] = FadeInUp(id)
	}
	return els
}
