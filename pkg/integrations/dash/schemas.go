// Package dash declares the campaign dashboard shapes. WidgetConfig is a
// discriminated union keyed by "widget" so each widget kind carries exactly
// the configuration it needs.
package dash

import "github.com/goliatone/go-uispec/pkg/schema"

var (
	WidgetKinds = []string{"chart", "stat", "table", "feed"}
	ChartKinds  = []string{"line", "bar", "area"}
	Comparisons = []string{"previous_period", "previous_year"}
	Themes      = []string{"light", "dark", "system"}
)

// Register installs the dashboard definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:         "WidgetConfig",
		Title:        "Dashboard widget",
		Kind:         schema.KindDiscriminated,
		Strict:       true,
		Discriminant: "widget",
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "title", Kind: schema.KindString, Required: true},
			{Name: "gridSpan", Kind: schema.KindInteger, Default: 1, Min: schema.Num(1), Max: schema.Num(4)},
		},
		Variants: []schema.Variant{
			{Tag: "chart", Fields: []schema.Field{
				{Name: "chartType", Kind: schema.KindEnum, Required: true, Enum: ChartKinds},
				{Name: "metric", Kind: schema.KindString, Required: true},
			}},
			{Tag: "stat", Fields: []schema.Field{
				{Name: "metric", Kind: schema.KindString, Required: true},
				{Name: "comparison", Kind: schema.KindEnum, Enum: Comparisons},
			}},
			{Tag: "table", Fields: []schema.Field{
				{Name: "columns", Kind: schema.KindArray, Required: true, Elem: &schema.Field{Kind: schema.KindString}},
				{Name: "pageSize", Kind: schema.KindInteger, Default: 10, Min: schema.Num(1), Max: schema.Num(100)},
			}},
			{Tag: "feed", Fields: []schema.Field{
				{Name: "limit", Kind: schema.KindInteger, Default: 20, Min: schema.Num(1), Max: schema.Num(100)},
			}},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:  "DashboardSettings",
		Title: "Dashboard settings",
		Kind:  schema.KindObject,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "widgets", Kind: schema.KindArray, Elem: &schema.Field{Kind: schema.KindObject, Ref: "WidgetConfig"}},
			{Name: "theme", Kind: schema.KindEnum, Enum: Themes, Default: "system"},
			{Name: "refreshSeconds", Kind: schema.KindInteger, Default: 300, Min: schema.Num(30), Max: schema.Num(3600)},
		},
	})
}
