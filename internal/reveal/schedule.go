package reveal

import (
	"fmt"
	"time"
)

// Build computes the transition schedule for a group: element i starts at
// i*stagger.
func Build(group string, elements []Element, stagger time.Duration) ([]Transition, error) {
	if len(elements) > 1 && stagger <= 0 {
		return nil, fmt.Errorf("group %q: %w (got %s)", group, ErrStagger, stagger)
	}
	schedule := make([]Transition, len(elements))
	for i, el := range elements {
		if el.Duration < 0 {
			return nil, fmt.Errorf("group %q element %q: %w", group, el.ID, ErrDuration)
		}
		schedule[i] = Transition{
			Group:    group,
			Index:    i,
			Element:  el,
			Start:    time.Duration(i) * stagger,
			Duration: el.Duration,
		}
	}
	return schedule, nil
}

// Total is the time from activation until the last transition completes.
func Total(schedule []Transition) time.Duration {
	var total time.Duration
	for _, tr := range schedule {
		if end := tr.End(); end > total {
			total = end
		}
	}
	return total
}
