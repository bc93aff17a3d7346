// Package tokens exports the design-token constant tables: color palettes,
// type scale, spacing and radii. The tables are reference data consumed
// alongside the component definitions; they are never validated and never
// mutated after initialization.
package tokens

// Modes enumerates the color modes the palette tables are keyed by.
var Modes = []string{"light", "dark"}

// Palette is the full color set for one mode.
type Palette struct {
	Primary       string
	Secondary     string
	Accent        string
	Success       string
	Warning       string
	Error         string
	Info          string
	Background    string
	Surface       string
	TextPrimary   string
	TextSecondary string
	TextMuted     string
}

// Colors maps a mode to its palette. Hex values are part of the published
// contract; downstream products reference them pixel-for-pixel.
var Colors = map[string]Palette{
	"light": {
		Primary:       "#6366F1",
		Secondary:     "#8B5CF6",
		Accent:        "#F59E0B",
		Success:       "#10B981",
		Warning:       "#F59E0B",
		Error:         "#EF4444",
		Info:          "#3B82F6",
		Background:    "#F9FAFB",
		Surface:       "#FFFFFF",
		TextPrimary:   "#111827",
		TextSecondary: "#4B5563",
		TextMuted:     "#9CA3AF",
	},
	"dark": {
		Primary:       "#818CF8",
		Secondary:     "#A78BFA",
		Accent:        "#FBBF24",
		Success:       "#34D399",
		Warning:       "#FBBF24",
		Error:         "#F87171",
		Info:          "#60A5FA",
		Background:    "#111827",
		Surface:       "#1F2937",
		TextPrimary:   "#F9FAFB",
		TextSecondary: "#D1D5DB",
		TextMuted:     "#6B7280",
	},
}

// FontSizes maps a type-scale token to its pixel size.
var FontSizes = map[string]int{
	"xs":  12,
	"sm":  14,
	"md":  16,
	"lg":  18,
	"xl":  20,
	"2xl": 24,
	"3xl": 30,
}

// Spacing maps a spacing token to its pixel value.
var Spacing = map[string]int{
	"xs":  4,
	"sm":  8,
	"md":  16,
	"lg":  24,
	"xl":  32,
	"2xl": 48,
}

// Radii maps a corner-radius token to its pixel value.
var Radii = map[string]int{
	"none": 0,
	"sm":   4,
	"md":   8,
	"lg":   12,
	"full": 9999,
}
