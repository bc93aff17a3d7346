// Package form declares the form component definitions. FormFieldProps is a
// discriminated union keyed by the "type" field: each input type carries its
// own constraint fields on top of the shared ones, and unknown keys are
// rejected so a select field cannot smuggle a text-only constraint.
package form

import "github.com/goliatone/go-uispec/pkg/schema"

// FieldTypes lists the discriminant literals accepted by FormFieldProps.
var FieldTypes = []string{"text", "email", "password", "number", "textarea", "select", "checkbox", "date"}

// Layouts accepted by FormProps.layout.
var Layouts = []string{"vertical", "horizontal", "inline"}

// ValidationStates a field can surface next to its control.
var ValidationStates = []string{"valid", "invalid", "pending"}

// StateColors maps a validation state to the accent color consumers render
// the control border and helper text with.
var StateColors = map[string]string{
	"valid":   "#10B981",
	"invalid": "#EF4444",
	"pending": "#F59E0B",
}

// Register installs the form definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:   "SelectOption",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "value", Kind: schema.KindString, Required: true},
			{Name: "label", Kind: schema.KindString, Required: true},
			{Name: "disabled", Kind: schema.KindBoolean, Default: false},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:         "FormFieldProps",
		Title:        "Form field",
		Kind:         schema.KindDiscriminated,
		Strict:       true,
		Discriminant: "type",
		Fields: []schema.Field{
			{Name: "name", Kind: schema.KindString, Required: true},
			{Name: "label", Kind: schema.KindString, Required: true},
			{Name: "placeholder", Kind: schema.KindString},
			{Name: "helpText", Kind: schema.KindString},
			{Name: "disabled", Kind: schema.KindBoolean, Default: false},
			{Name: "required", Kind: schema.KindBoolean, Default: false},
			{Name: "state", Kind: schema.KindEnum, Enum: ValidationStates},
			{Name: "errorText", Kind: schema.KindString},
		},
		Variants: []schema.Variant{
			{Tag: "text", Fields: []schema.Field{
				{Name: "minLength", Kind: schema.KindInteger, Min: schema.Num(0)},
				{Name: "maxLength", Kind: schema.KindInteger, Min: schema.Num(1)},
				{Name: "pattern", Kind: schema.KindString},
			}},
			{Tag: "email"},
			{Tag: "password", Fields: []schema.Field{
				{Name: "minLength", Kind: schema.KindInteger, Min: schema.Num(0)},
				{Name: "maxLength", Kind: schema.KindInteger, Min: schema.Num(1)},
			}},
			{Tag: "number", Fields: []schema.Field{
				{Name: "min", Kind: schema.KindNumber},
				{Name: "max", Kind: schema.KindNumber},
				{Name: "step", Kind: schema.KindNumber, Min: schema.Num(0)},
			}},
			{Tag: "textarea", Fields: []schema.Field{
				{Name: "rows", Kind: schema.KindInteger, Default: 4, Min: schema.Num(1), Max: schema.Num(40)},
			}},
			{Tag: "select", Fields: []schema.Field{
				{Name: "options", Kind: schema.KindArray, Required: true, Elem: &schema.Field{Kind: schema.KindObject, Ref: "SelectOption"}},
				{Name: "multiple", Kind: schema.KindBoolean, Default: false},
			}},
			{Tag: "checkbox", Fields: []schema.Field{
				{Name: "checked", Kind: schema.KindBoolean, Default: false},
			}},
			{Tag: "date", Fields: []schema.Field{
				{Name: "minDate", Kind: schema.KindDateTime},
				{Name: "maxDate", Kind: schema.KindDateTime},
			}},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "FormProps",
		Title:  "Form",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "fields", Kind: schema.KindArray, Required: true, Elem: &schema.Field{Kind: schema.KindObject, Ref: "FormFieldProps"}},
			{Name: "layout", Kind: schema.KindEnum, Enum: Layouts, Default: "vertical"},
			{Name: "submitLabel", Kind: schema.KindString, Default: "Submit"},
			{Name: "showReset", Kind: schema.KindBoolean, Default: false},
		},
	})
}
