// Package controls declares the interactive control definitions: buttons,
// inputs, chips and segmented controls.
package controls

import "github.com/goliatone/go-uispec/pkg/schema"

var (
	ButtonVariants = []string{"primary", "secondary", "outline", "ghost", "destructive"}
	ButtonSizes    = []string{"sm", "md", "lg"}
	InputTypes     = []string{"text", "email", "password", "search", "url"}
)

// Register installs the control definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:   "ButtonProps",
		Title:  "Button",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "label", Kind: schema.KindString, Required: true},
			{Name: "variant", Kind: schema.KindEnum, Enum: ButtonVariants, Default: "primary"},
			{Name: "size", Kind: schema.KindEnum, Enum: ButtonSizes, Default: "md"},
			{Name: "disabled", Kind: schema.KindBoolean, Default: false},
			{Name: "loading", Kind: schema.KindBoolean, Default: false},
			{Name: "icon", Kind: schema.KindString, Format: schema.FormatSVG},
			{Name: "fullWidth", Kind: schema.KindBoolean, Default: false},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "InputProps",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "name", Kind: schema.KindString, Required: true},
			{Name: "label", Kind: schema.KindString},
			{Name: "placeholder", Kind: schema.KindString},
			{Name: "type", Kind: schema.KindEnum, Enum: InputTypes, Default: "text"},
			{Name: "disabled", Kind: schema.KindBoolean, Default: false},
			{Name: "maxLength", Kind: schema.KindInteger, Min: schema.Num(1)},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "ChipProps",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "label", Kind: schema.KindString, Required: true},
			{Name: "selected", Kind: schema.KindBoolean, Default: false},
			{Name: "removable", Kind: schema.KindBoolean, Default: false},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "SegmentItem",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "value", Kind: schema.KindString, Required: true},
			{Name: "label", Kind: schema.KindString, Required: true},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "SegmentedControlProps",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "segments", Kind: schema.KindArray, Required: true, Elem: &schema.Field{Kind: schema.KindObject, Ref: "SegmentItem"}},
			{Name: "value", Kind: schema.KindString},
		},
	})
}
