// Package theme resolves the site's light/dark theme from a persisted user
// preference and the host environment's reported color scheme.
package theme

import (
	"fmt"
	"strings"
)

// Preference is the user's persisted choice.
type Preference string

const (
	System Preference = "system"
	Light  Preference = "light"
	Dark   Preference = "dark"
)

// Effective is the theme actually rendered. It is never "system".
type Effective string

const (
	EffectiveLight Effective = "light"
	EffectiveDark  Effective = "dark"
)

// ParsePreference converts a stored or submitted value into a Preference.
func ParsePreference(s string) (Preference, error) {
	switch p := Preference(strings.ToLower(strings.TrimSpace(s))); p {
	case System, Light, Dark:
		return p, nil
	default:
		return System, fmt.Errorf("unknown theme preference %q", s)
	}
}

// ParseEffective converts a color scheme name into an Effective theme.
func ParseEffective(s string) (Effective, bool) {
	switch e := Effective(strings.ToLower(strings.TrimSpace(s))); e {
	case EffectiveLight, EffectiveDark:
		return e, true
	default:
		return EffectiveLight, false
	}
}

func (p Preference) String() string { return string(p) }

func (e Effective) String() string { return string(e) }

// Opposite returns the other effective theme.
func (e Effective) Opposite() Effective {
	if e == EffectiveDark {
		return EffectiveLight
	}
	return EffectiveDark
}

// Preference returns the concrete preference that pins this theme.
func (e Effective) Preference() Preference {
	if e == EffectiveDark {
		return Dark
	}
	return Light
}

// Resolve computes the effective theme for p, asking env only when p is System.
func Resolve(p Preference, env Environment) Effective {
	switch p {
	case Light:
		return EffectiveLight
	case Dark:
		return EffectiveDark
	}
	if env == nil {
		return EffectiveLight
	}
	if env.Prefers() == EffectiveDark {
		return EffectiveDark
	}
	return EffectiveLight
}
