package chart

// Palette identifiers accepted by ChartProps.palette.
const (
	PaletteDefault = "default"
	PaletteOcean   = "ocean"
	PaletteSunset  = "sunset"
	PaletteMono    = "mono"
)

// PaletteNames lists the palette identifiers in presentation order.
var PaletteNames = []string{PaletteDefault, PaletteOcean, PaletteSunset, PaletteMono}

// Palettes maps a palette identifier to its ordered series colors. Consumers
// cycle through the list when a series does not pin its own color; the hex
// values are part of the published contract and must not drift.
var Palettes = map[string][]string{
	PaletteDefault: {"#6366F1", "#8B5CF6", "#F59E0B", "#10B981", "#EF4444", "#3B82F6", "#EC4899", "#14B8A6"},
	PaletteOcean:   {"#0EA5E9", "#06B6D4", "#14B8A6", "#3B82F6", "#6366F1", "#0F766E"},
	PaletteSunset:  {"#F59E0B", "#F97316", "#EF4444", "#EC4899", "#8B5CF6", "#7C2D12"},
	PaletteMono:    {"#111827", "#374151", "#6B7280", "#9CA3AF", "#D1D5DB", "#F3F4F6"},
}
