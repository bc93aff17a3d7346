// Package display declares the passive display definitions: badges, avatars
// and empty states.
package display

import "github.com/goliatone/go-uispec/pkg/schema"

var (
	BadgeVariants = []string{"neutral", "success", "warning", "error", "info"}
	AvatarSizes   = []string{"xs", "sm", "md", "lg", "xl"}
)

// Register installs the display definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:   "BadgeProps",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "label", Kind: schema.KindString, Required: true},
			{Name: "variant", Kind: schema.KindEnum, Enum: BadgeVariants, Default: "neutral"},
			{Name: "dot", Kind: schema.KindBoolean, Default: false},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "AvatarProps",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "imageUrl", Kind: schema.KindString, Format: schema.FormatURL},
			{Name: "initials", Kind: schema.KindString, Pattern: `^[A-Z]{1,3}$`},
			{Name: "size", Kind: schema.KindEnum, Enum: AvatarSizes, Default: "md"},
			{Name: "showStatus", Kind: schema.KindBoolean, Default: false},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "EmptyStateProps",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "title", Kind: schema.KindString, Required: true},
			{Name: "description", Kind: schema.KindString},
			{Name: "icon", Kind: schema.KindString, Format: schema.FormatSVG},
			{Name: "actionLabel", Kind: schema.KindString},
		},
	})
}
