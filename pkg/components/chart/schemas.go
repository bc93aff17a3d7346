// Package chart declares the schema definitions for the charting components:
// chart props, axis configuration, data series and points, legends, padding
// and tooltips.
package chart

import "github.com/goliatone/go-uispec/pkg/schema"

// Closed literal sets referenced by the chart definitions.
var (
	ChartTypes      = []string{"line", "bar", "area", "pie", "donut"}
	AxisTypes       = []string{"linear", "time", "category", "log"}
	LegendPositions = []string{"top", "right", "bottom", "left"}
)

// Register installs the chart definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:   "AxisConfig",
		Title:  "Axis configuration",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "type", Kind: schema.KindEnum, Required: true, Enum: AxisTypes},
			{Name: "label", Kind: schema.KindString},
			// min/max ordering is intentionally not cross-validated.
			{Name: "min", Kind: schema.KindNumber},
			{Name: "max", Kind: schema.KindNumber},
			{Name: "showGrid", Kind: schema.KindBoolean, Default: true},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "DataPoint",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "x", Kind: schema.KindUnion, Required: true, Branches: []schema.Field{
				{Kind: schema.KindNumber},
				{Kind: schema.KindDateTime},
				{Kind: schema.KindString},
			}},
			{Name: "y", Kind: schema.KindNumber, Required: true},
			{Name: "label", Kind: schema.KindString},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "DataSeries",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "name", Kind: schema.KindString, Required: true},
			{Name: "data", Kind: schema.KindArray, Required: true, Elem: &schema.Field{Kind: schema.KindObject, Ref: "DataPoint"}},
			{Name: "visible", Kind: schema.KindBoolean, Default: true},
			{Name: "color", Kind: schema.KindString, Format: schema.FormatColor},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "LegendConfig",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "position", Kind: schema.KindEnum, Enum: LegendPositions, Default: "bottom"},
			{Name: "show", Kind: schema.KindBoolean, Default: true},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "PaddingConfig",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "top", Kind: schema.KindNumber, Default: 16, Min: schema.Num(0)},
			{Name: "right", Kind: schema.KindNumber, Default: 16, Min: schema.Num(0)},
			{Name: "bottom", Kind: schema.KindNumber, Default: 16, Min: schema.Num(0)},
			{Name: "left", Kind: schema.KindNumber, Default: 16, Min: schema.Num(0)},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "TooltipConfig",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "show", Kind: schema.KindBoolean, Default: true},
			{Name: "format", Kind: schema.KindString},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "ChartProps",
		Title:  "Chart",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "type", Kind: schema.KindEnum, Required: true, Enum: ChartTypes},
			{Name: "series", Kind: schema.KindArray, Required: true, Elem: &schema.Field{Kind: schema.KindObject, Ref: "DataSeries"}},
			{Name: "xAxis", Kind: schema.KindObject, Ref: "AxisConfig"},
			{Name: "yAxis", Kind: schema.KindObject, Ref: "AxisConfig"},
			{Name: "legend", Kind: schema.KindObject, Ref: "LegendConfig"},
			{Name: "padding", Kind: schema.KindObject, Ref: "PaddingConfig"},
			{Name: "tooltip", Kind: schema.KindObject, Ref: "TooltipConfig"},
			{Name: "palette", Kind: schema.KindEnum, Enum: PaletteNames, Default: PaletteDefault},
			{Name: "height", Kind: schema.KindNumber, Default: 320, Min: schema.Num(120), Max: schema.Num(2000)},
			{Name: "animate", Kind: schema.KindBoolean, Default: true},
		},
	})
}
