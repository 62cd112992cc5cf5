package theme

// Palette defines color values for one effective theme. All values are hex
// color strings.
type Palette struct {
	Bg string
	Fg string

	// Secondary text (descriptions, periods, list items)
	MutedFg string

	// Cards
	CardBg     string
	CardBorder string

	// Accent
	AccentFg string
	LinkFg   string

	// Chroma syntax theme name
	ChromaStyle string
}

// Palettes is the registry of built-in palettes.
var Palettes = map[Effective]Palette{
	EffectiveDark:  DarkPalette(),
	EffectiveLight: LightPalette(),
}

// PaletteFor returns the palette for e.
func PaletteFor(e Effective) Palette {
	if e == EffectiveDark {
		return DarkPalette()
	}
	return LightPalette()
}

// DarkPalette returns the dark palette.
func DarkPalette() Palette {
	return Palette{
		Bg: "#0a0a0a",
		Fg: "#fafafa",

		MutedFg: "#a1a1aa",

		CardBg:     "#111113",
		CardBorder: "#27272a",

		AccentFg: "#60a5fa",
		LinkFg:   "#93c5fd",

		ChromaStyle: "github-dark",
	}
}

// LightPalette returns the light palette.
func LightPalette() Palette {
	return Palette{
		Bg: "#ffffff",
		Fg: "#09090b",

		MutedFg: "#71717a",

		CardBg:     "#ffffff",
		CardBorder: "#e4e4e7",

		AccentFg: "#2563eb",
		LinkFg:   "#1d4ed8",

		ChromaStyle: "github",
	}
}
