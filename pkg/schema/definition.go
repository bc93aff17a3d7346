package schema

// Variant is one concrete shape of a discriminated definition. Tag is the
// literal the discriminant field must carry to select it; Fields lists the
// members that exist only for this variant, on top of the definition's common
// fields.
type Variant struct {
	Tag    string  `json:"tag"`
	Fields []Field `json:"fields,omitempty"`
}

// Definition describes one named data shape. Kind is KindObject, KindArray or
// KindDiscriminated; the remaining structural slots follow the same exclusive
// convention as Field. Strict definitions reject input keys that are not
// declared.
type Definition struct {
	Name         string    `json:"name"`
	Title        string    `json:"title,omitempty"`
	Description  string    `json:"description,omitempty"`
	Kind         Kind      `json:"kind"`
	Strict       bool      `json:"strict,omitempty"`
	Fields       []Field   `json:"fields,omitempty"`
	Elem         *Field    `json:"elem,omitempty"`
	Discriminant string    `json:"discriminant,omitempty"`
	Variants     []Variant `json:"variants,omitempty"`
}

// Variant returns the variant selected by the supplied discriminant literal.
func (d Definition) Variant(tag string) (Variant, bool) {
	for _, variant := range d.Variants {
		if variant.Tag == tag {
			return variant, true
		}
	}
	return Variant{}, false
}

// VariantTags lists the declared discriminant literals in declaration order.
func (d Definition) VariantTags() []string {
	if len(d.Variants) == 0 {
		return nil
	}
	tags := make([]string, 0, len(d.Variants))
	for _, variant := range d.Variants {
		tags = append(tags, variant.Tag)
	}
	return tags
}

// Field returns the named common field.
func (d Definition) Field(name string) (Field, bool) {
	for _, field := range d.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
