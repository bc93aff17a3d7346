// Package card declares the card and stat-card definitions.
package card

import "github.com/goliatone/go-uispec/pkg/schema"

var (
	PaddingTokens = []string{"none", "sm", "md", "lg"}
	Trends        = []string{"up", "down", "flat"}
)

// Register installs the card definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:   "CardProps",
		Title:  "Card",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "title", Kind: schema.KindString},
			{Name: "subtitle", Kind: schema.KindString},
			{Name: "padding", Kind: schema.KindEnum, Enum: PaddingTokens, Default: "md"},
			{Name: "elevated", Kind: schema.KindBoolean, Default: false},
			{Name: "interactive", Kind: schema.KindBoolean, Default: false},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "StatCardProps",
		Title:  "Stat card",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "label", Kind: schema.KindString, Required: true},
			{Name: "value", Kind: schema.KindString, Required: true},
			{Name: "delta", Kind: schema.KindNumber},
			{Name: "trend", Kind: schema.KindEnum, Enum: Trends, Default: "flat"},
			{Name: "icon", Kind: schema.KindString, Format: schema.FormatSVG},
		},
	})
}
