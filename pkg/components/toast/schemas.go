// Package toast declares the toast notification definitions and the per
// variant style table consumers index with ToastProps.variant.
package toast

import "github.com/goliatone/go-uispec/pkg/schema"

// Variant literals accepted by ToastProps.variant.
const (
	VariantSuccess = "success"
	VariantError   = "error"
	VariantWarning = "warning"
	VariantInfo    = "info"
)

// Variants lists the toast variants in severity order.
var Variants = []string{VariantSuccess, VariantError, VariantWarning, VariantInfo}

// Positions a toast stack can anchor to.
var Positions = []string{"top-right", "top-left", "bottom-right", "bottom-left", "top-center", "bottom-center"}

// VariantStyle bundles the presentation constants for one toast variant.
type VariantStyle struct {
	Accent     string
	Icon       string
	DurationMs int
}

// VariantStyles maps a variant to its accent color, icon name and default
// auto-dismiss duration. Errors linger the longest so they are not missed.
var VariantStyles = map[string]VariantStyle{
	VariantSuccess: {Accent: "#10B981", Icon: "check-circle", DurationMs: 4000},
	VariantInfo:    {Accent: "#3B82F6", Icon: "info", DurationMs: 5000},
	VariantWarning: {Accent: "#F59E0B", Icon: "alert-triangle", DurationMs: 6000},
	VariantError:   {Accent: "#EF4444", Icon: "alert-octagon", DurationMs: 8000},
}

// Register installs the toast definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:   "ToastProps",
		Title:  "Toast",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "variant", Kind: schema.KindEnum, Required: true, Enum: Variants},
			{Name: "title", Kind: schema.KindString, Required: true},
			{Name: "description", Kind: schema.KindString},
			{Name: "dismissible", Kind: schema.KindBoolean, Default: true},
			// autoDismiss has no schema-level default; the effective behavior
			// comes from VariantStyles when the caller leaves it unset.
			{Name: "autoDismiss", Kind: schema.KindBoolean},
			{Name: "durationMs", Kind: schema.KindNumber, Min: schema.Num(0)},
			{Name: "position", Kind: schema.KindEnum, Enum: Positions, Default: "top-right"},
		},
	})
}
