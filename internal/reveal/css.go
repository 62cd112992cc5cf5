package reveal

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

// Attrs carries a transition to the browser: the trigger goes in a
// data-reveal attribute, the timing and visual states in CSS custom
// properties read by static/reveal.js and site.css.
type Attrs struct {
	Trigger string
	Group   string
	Index   int
	Style   template.CSS
}

// AttrsFor renders tr for a group with the given trigger.
func AttrsFor(trigger Trigger, tr Transition) Attrs {
	return Attrs{
		Trigger: trigger.String(),
		Group:   tr.Group,
		Index:   tr.Index,
		Style:   Style(tr),
	}
}

// Style renders tr's timing and visual states as CSS custom properties.
func Style(tr Transition) template.CSS {
	var b strings.Builder
	fmt.Fprintf(&b, "--reveal-delay:%dms;", tr.Start.Milliseconds())
	fmt.Fprintf(&b, "--reveal-duration:%dms;", tr.Duration.Milliseconds())
	fmt.Fprintf(&b, "--reveal-from-y:%spx;", formatFloat(tr.Element.Initial.OffsetY))
	fmt.Fprintf(&b, "--reveal-from-opacity:%s;", formatFloat(tr.Element.Initial.Opacity))
	fmt.Fprintf(&b, "--reveal-to-y:%spx;", formatFloat(tr.Element.Target.OffsetY))
	fmt.Fprintf(&b, "--reveal-to-opacity:%s", formatFloat(tr.Element.Target.Opacity))
	return template.CSS(b.String())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
