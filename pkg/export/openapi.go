// Package export bridges the in-Go definition tables and OpenAPI documents:
// it emits the registry as an OpenAPI 3 document for consumers that generate
// types in other languages, and loads such documents back into definitions
// for consumers that ship their contracts as documents rather than Go code.
package export

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-uispec/pkg/schema"
)

const schemaRefPrefix = "#/components/schemas/"

// DocumentInfo carries the top-level metadata stamped onto emitted documents.
type DocumentInfo struct {
	Title   string
	Version string
}

// OpenAPIDocument emits every definition in the registry as a component
// schema of an OpenAPI 3 document. Discriminated definitions become a oneOf
// with a discriminator plus one synthesized component schema per variant
// (named "<Definition>_<tag>").
func OpenAPIDocument(reg *schema.Registry, info DocumentInfo) (*openapi3.T, error) {
	if info.Title == "" {
		info.Title = "go-uispec definitions"
	}
	if info.Version == "" {
		info.Version = "1.0.0"
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   info.Title,
			Version: info.Version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas),
		},
	}

	for _, name := range reg.Names() {
		def, _ := reg.Definition(name)
		if err := emitDefinition(doc.Components.Schemas, def); err != nil {
			return nil, fmt.Errorf("uispec export: definition %q: %w", name, err)
		}
	}
	return doc, nil
}

func emitDefinition(schemas openapi3.Schemas, def schema.Definition) error {
	switch def.Kind {
	case schema.KindObject:
		out, err := emitObject(def.Fields, def.Strict)
		if err != nil {
			return err
		}
		out.Title = def.Title
		out.Description = def.Description
		schemas[def.Name] = openapi3.NewSchemaRef("", out)
		return nil
	case schema.KindArray:
		elem, err := emitField(*def.Elem)
		if err != nil {
			return err
		}
		out := &openapi3.Schema{
			Type:        &openapi3.Types{"array"},
			Title:       def.Title,
			Description: def.Description,
			Items:       elem,
		}
		schemas[def.Name] = openapi3.NewSchemaRef("", out)
		return nil
	case schema.KindDiscriminated:
		return emitDiscriminated(schemas, def)
	}
	return fmt.Errorf("unsupported definition kind %q", def.Kind)
}

func emitDiscriminated(schemas openapi3.Schemas, def schema.Definition) error {
	oneOf := make(openapi3.SchemaRefs, 0, len(def.Variants))
	mapping := make(map[string]string, len(def.Variants))

	for _, variant := range def.Variants {
		fields := make([]schema.Field, 0, len(def.Fields)+len(variant.Fields))
		fields = append(fields, def.Fields...)
		fields = append(fields, variant.Fields...)

		out, err := emitObject(fields, def.Strict)
		if err != nil {
			return fmt.Errorf("variant %q: %w", variant.Tag, err)
		}
		out.Properties[def.Discriminant] = openapi3.NewSchemaRef("", &openapi3.Schema{
			Type: &openapi3.Types{"string"},
			Enum: []any{variant.Tag},
		})
		out.Required = append(out.Required, def.Discriminant)
		sort.Strings(out.Required)

		variantName := def.Name + "_" + variant.Tag
		schemas[variantName] = openapi3.NewSchemaRef("", out)
		oneOf = append(oneOf, openapi3.NewSchemaRef(schemaRefPrefix+variantName, nil))
		mapping[variant.Tag] = schemaRefPrefix + variantName
	}

	schemas[def.Name] = openapi3.NewSchemaRef("", &openapi3.Schema{
		Title:       def.Title,
		Description: def.Description,
		OneOf:       oneOf,
		Discriminator: &openapi3.Discriminator{
			PropertyName: def.Discriminant,
			Mapping:      mapping,
		},
	})
	return nil
}

func emitObject(fields []schema.Field, strict bool) (*openapi3.Schema, error) {
	out := &openapi3.Schema{
		Type:       &openapi3.Types{"object"},
		Properties: make(openapi3.Schemas, len(fields)),
	}
	for _, field := range fields {
		ref, err := emitField(field)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, err)
		}
		out.Properties[field.Name] = ref
		if field.Required {
			out.Required = append(out.Required, field.Name)
		}
	}
	sort.Strings(out.Required)
	if strict {
		disallow := false
		out.AdditionalProperties = openapi3.AdditionalProperties{Has: &disallow}
	}
	return out, nil
}

func emitField(field schema.Field) (*openapi3.SchemaRef, error) {
	switch field.Kind {
	case schema.KindString:
		out := &openapi3.Schema{
			Type:        &openapi3.Types{"string"},
			Format:      field.Format,
			Pattern:     field.Pattern,
			Default:     field.Default,
			Description: field.Description,
		}
		if field.MinLength != nil {
			out.MinLength = uint64(*field.MinLength)
		}
		if field.MaxLength != nil {
			value := uint64(*field.MaxLength)
			out.MaxLength = &value
		}
		return openapi3.NewSchemaRef("", out), nil
	case schema.KindNumber, schema.KindInteger:
		kind := "number"
		if field.Kind == schema.KindInteger {
			kind = "integer"
		}
		out := &openapi3.Schema{
			Type:        &openapi3.Types{kind},
			Default:     field.Default,
			Description: field.Description,
			Min:         field.Min,
			Max:         field.Max,
		}
		return openapi3.NewSchemaRef("", out), nil
	case schema.KindBoolean:
		return openapi3.NewSchemaRef("", &openapi3.Schema{
			Type:        &openapi3.Types{"boolean"},
			Default:     field.Default,
			Description: field.Description,
		}), nil
	case schema.KindDateTime:
		return openapi3.NewSchemaRef("", &openapi3.Schema{
			Type:        &openapi3.Types{"string"},
			Format:      "date-time",
			Default:     field.Default,
			Description: field.Description,
		}), nil
	case schema.KindEnum:
		members := make([]any, 0, len(field.Enum))
		for _, member := range field.Enum {
			members = append(members, member)
		}
		return openapi3.NewSchemaRef("", &openapi3.Schema{
			Type:        &openapi3.Types{"string"},
			Enum:        members,
			Default:     field.Default,
			Description: field.Description,
		}), nil
	case schema.KindObject:
		if field.Ref != "" {
			return openapi3.NewSchemaRef(schemaRefPrefix+field.Ref, nil), nil
		}
		out, err := emitObject(field.Fields, false)
		if err != nil {
			return nil, err
		}
		out.Description = field.Description
		return openapi3.NewSchemaRef("", out), nil
	case schema.KindArray:
		elem, err := emitField(*field.Elem)
		if err != nil {
			return nil, err
		}
		return openapi3.NewSchemaRef("", &openapi3.Schema{
			Type:        &openapi3.Types{"array"},
			Items:       elem,
			Description: field.Description,
		}), nil
	case schema.KindUnion:
		oneOf := make(openapi3.SchemaRefs, 0, len(field.Branches))
		for _, branch := range field.Branches {
			ref, err := emitField(branch)
			if err != nil {
				return nil, err
			}
			oneOf = append(oneOf, ref)
		}
		return openapi3.NewSchemaRef("", &openapi3.Schema{
			OneOf:       oneOf,
			Description: field.Description,
		}), nil
	}
	return nil, fmt.Errorf("unsupported field kind %q", field.Kind)
}
