// Package loading declares spinner, skeleton, progress and overlay
// definitions plus the spinner size token table.
package loading

import "github.com/goliatone/go-uispec/pkg/schema"

var (
	SizeTokens       = []string{"xs", "sm", "md", "lg", "xl"}
	SkeletonVariants = []string{"text", "circle", "rect"}
)

// SpinnerSizes maps a size token to its pixel dimension.
var SpinnerSizes = map[string]int{
	"xs": 12,
	"sm": 16,
	"md": 24,
	"lg": 32,
	"xl": 48,
}

// Register installs the loading-state definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:   "SpinnerProps",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "size", Kind: schema.KindEnum, Enum: SizeTokens, Default: "md"},
			{Name: "color", Kind: schema.KindString, Format: schema.FormatColor},
			{Name: "label", Kind: schema.KindString},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "SkeletonProps",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "variant", Kind: schema.KindEnum, Enum: SkeletonVariants, Default: "text"},
			{Name: "width", Kind: schema.KindNumber, Min: schema.Num(0)},
			{Name: "height", Kind: schema.KindNumber, Min: schema.Num(0)},
			{Name: "animate", Kind: schema.KindBoolean, Default: true},
			{Name: "lines", Kind: schema.KindInteger, Default: 1, Min: schema.Num(1), Max: schema.Num(20)},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "ProgressBarProps",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "value", Kind: schema.KindNumber, Required: true, Min: schema.Num(0), Max: schema.Num(100)},
			{Name: "indeterminate", Kind: schema.KindBoolean, Default: false},
			{Name: "label", Kind: schema.KindString},
			{Name: "showPercent", Kind: schema.KindBoolean, Default: false},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "LoadingOverlayProps",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "visible", Kind: schema.KindBoolean, Default: false},
			{Name: "message", Kind: schema.KindString},
			{Name: "blur", Kind: schema.KindBoolean, Default: true},
		},
	})
}
