package presets

import (
	"fmt"

	"github.com/goliatone/go-uispec/pkg/schema"
)

// Apply derives a new registry from base with the store's default overrides
// in place. The base registry is left untouched. Overriding a field that does
// not exist is an error, and overrides must satisfy the field's own
// constraints — the derived registry is resolved before it is returned.
func (s *Store) Apply(base *schema.Registry) (*schema.Registry, error) {
	derived := schema.NewRegistry()
	for _, name := range base.Names() {
		def, _ := base.Definition(name)
		if defaults, ok := s.Defaults(name); ok {
			overridden, err := overrideDefaults(def, defaults)
			if err != nil {
				return nil, err
			}
			def = overridden
		}
		if err := derived.Register(def); err != nil {
			return nil, err
		}
	}
	for _, name := range s.Definitions() {
		if _, ok := base.Definition(name); !ok {
			return nil, fmt.Errorf("uispec presets: override targets unknown definition %q", name)
		}
	}
	if err := derived.Resolve(); err != nil {
		return nil, err
	}
	return derived, nil
}

func overrideDefaults(def schema.Definition, defaults map[string]any) (schema.Definition, error) {
	// A field name can recur across variants (text and password both carry
	// minLength), so matches are tracked instead of consumed.
	matched := make(map[string]bool, len(defaults))

	def.Fields = overrideFieldList(def.Fields, defaults, matched)
	if len(def.Variants) > 0 {
		variants := make([]schema.Variant, len(def.Variants))
		for i, variant := range def.Variants {
			variant.Fields = overrideFieldList(variant.Fields, defaults, matched)
			variants[i] = variant
		}
		def.Variants = variants
	}

	for field := range defaults {
		if !matched[field] {
			return schema.Definition{}, fmt.Errorf("uispec presets: definition %q has no field %q to override", def.Name, field)
		}
	}
	return def, nil
}

func overrideFieldList(fields []schema.Field, defaults map[string]any, matched map[string]bool) []schema.Field {
	if len(fields) == 0 {
		return fields
	}
	out := make([]schema.Field, len(fields))
	copy(out, fields)
	for i, field := range out {
		if value, ok := defaults[field.Name]; ok {
			out[i].Default = value
			matched[field.Name] = true
		}
	}
	return out
}
