// Package modal declares modal and confirm-dialog definitions plus the size
// token table.
package modal

import "github.com/goliatone/go-uispec/pkg/schema"

// SizeTokens accepted by ModalProps.size.
var SizeTokens = []string{"sm", "md", "lg", "xl", "full"}

// Sizes maps a size token to the modal's max width in pixels. A value of 0
// means unbounded (full-screen).
var Sizes = map[string]int{
	"sm":   384,
	"md":   512,
	"lg":   640,
	"xl":   768,
	"full": 0,
}

// Register installs the modal definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:   "ModalProps",
		Title:  "Modal",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "title", Kind: schema.KindString, Required: true},
			{Name: "description", Kind: schema.KindString},
			{Name: "size", Kind: schema.KindEnum, Enum: SizeTokens, Default: "md"},
			{Name: "closeOnBackdrop", Kind: schema.KindBoolean, Default: true},
			{Name: "showClose", Kind: schema.KindBoolean, Default: true},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "ConfirmDialogProps",
		Title:  "Confirm dialog",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "title", Kind: schema.KindString, Required: true},
			{Name: "message", Kind: schema.KindString, Required: true},
			{Name: "confirmLabel", Kind: schema.KindString, Default: "Confirm"},
			{Name: "cancelLabel", Kind: schema.KindString, Default: "Cancel"},
			{Name: "destructive", Kind: schema.KindBoolean, Default: false},
		},
	})
}
