package export

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-uispec/pkg/schema"
)

// Load parses an OpenAPI document and reconstructs a resolved registry from
// its component schemas. It is the inverse of OpenAPIDocument for everything
// the definition model expresses; component schemas synthesized for
// discriminated variants fold back into their parent definition.
func Load(ctx context.Context, raw []byte) (*schema.Registry, error) {
	if len(raw) == 0 {
		return nil, errors.New("uispec export: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("uispec export: load document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("uispec export: document declares no component schemas")
	}

	schemas := doc.Components.Schemas
	variantTargets := collectVariantTargets(schemas)

	reg := schema.NewRegistry()
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if variantTargets[name] {
			continue
		}
		def, err := definitionFromSchema(name, schemas[name], schemas)
		if err != nil {
			return nil, fmt.Errorf("uispec export: schema %q: %w", name, err)
		}
		if err := reg.Register(def); err != nil {
			return nil, err
		}
	}
	if err := reg.Resolve(); err != nil {
		return nil, err
	}
	return reg, nil
}

func collectVariantTargets(schemas openapi3.Schemas) map[string]bool {
	targets := make(map[string]bool)
	for _, ref := range schemas {
		if ref == nil || ref.Value == nil || ref.Value.Discriminator == nil {
			continue
		}
		for _, mapped := range ref.Value.Discriminator.Mapping {
			targets[refName(mapped)] = true
		}
	}
	return targets
}

func definitionFromSchema(name string, ref *openapi3.SchemaRef, schemas openapi3.Schemas) (schema.Definition, error) {
	if ref == nil || ref.Value == nil {
		return schema.Definition{}, errors.New("schema has no value")
	}
	src := ref.Value

	if src.Discriminator != nil && len(src.OneOf) > 0 {
		return discriminatedFromSchema(name, src, schemas)
	}

	switch firstType(src.Type) {
	case "array":
		if src.Items == nil {
			return schema.Definition{}, errors.New("array schema requires items")
		}
		elem, err := fieldFromRef("", src.Items)
		if err != nil {
			return schema.Definition{}, err
		}
		return schema.Definition{
			Name:        name,
			Title:       src.Title,
			Description: src.Description,
			Kind:        schema.KindArray,
			Elem:        &elem,
		}, nil
	case "object", "":
		fields, err := fieldsFromProperties(src)
		if err != nil {
			return schema.Definition{}, err
		}
		return schema.Definition{
			Name:        name,
			Title:       src.Title,
			Description: src.Description,
			Kind:        schema.KindObject,
			Strict:      isStrict(src),
			Fields:      fields,
		}, nil
	}
	return schema.Definition{}, fmt.Errorf("unsupported top-level type %q", firstType(src.Type))
}

func discriminatedFromSchema(name string, src *openapi3.Schema, schemas openapi3.Schemas) (schema.Definition, error) {
	discriminant := src.Discriminator.PropertyName
	tags := make([]string, 0, len(src.Discriminator.Mapping))
	for tag := range src.Discriminator.Mapping {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	def := schema.Definition{
		Name:         name,
		Title:        src.Title,
		Description:  src.Description,
		Kind:         schema.KindDiscriminated,
		Discriminant: discriminant,
	}

	for _, tag := range tags {
		target, ok := schemas[refName(src.Discriminator.Mapping[tag])]
		if !ok || target.Value == nil {
			return schema.Definition{}, fmt.Errorf("variant %q maps to an unknown schema", tag)
		}
		variantSrc := target.Value
		fields, err := fieldsFromProperties(variantSrc)
		if err != nil {
			return schema.Definition{}, fmt.Errorf("variant %q: %w", tag, err)
		}
		kept := fields[:0]
		for _, field := range fields {
			if field.Name != discriminant {
				kept = append(kept, field)
			}
		}
		def.Variants = append(def.Variants, schema.Variant{Tag: tag, Fields: kept})
		if isStrict(variantSrc) {
			def.Strict = true
		}
	}
	return def, nil
}

func fieldsFromProperties(src *openapi3.Schema) ([]schema.Field, error) {
	names := make([]string, 0, len(src.Properties))
	for name := range src.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]schema.Field, 0, len(names))
	for _, name := range names {
		field, err := fieldFromRef(name, src.Properties[name])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		field.Required = contains(src.Required, name)
		fields = append(fields, field)
	}
	return fields, nil
}

func fieldFromRef(name string, ref *openapi3.SchemaRef) (schema.Field, error) {
	if ref == nil {
		return schema.Field{}, errors.New("property has no schema")
	}
	if ref.Ref != "" {
		return schema.Field{Name: name, Kind: schema.KindObject, Ref: refName(ref.Ref)}, nil
	}
	src := ref.Value
	if src == nil {
		return schema.Field{}, errors.New("property has no value")
	}

	if len(src.OneOf) > 0 {
		branches := make([]schema.Field, 0, len(src.OneOf))
		for _, branchRef := range src.OneOf {
			branch, err := fieldFromRef("", branchRef)
			if err != nil {
				return schema.Field{}, err
			}
			branches = append(branches, branch)
		}
		return schema.Field{Name: name, Kind: schema.KindUnion, Branches: branches, Description: src.Description}, nil
	}

	field := schema.Field{Name: name, Default: src.Default, Description: src.Description}
	switch firstType(src.Type) {
	case "string":
		if len(src.Enum) > 0 {
			members, err := enumMembers(src.Enum)
			if err != nil {
				return schema.Field{}, err
			}
			field.Kind = schema.KindEnum
			field.Enum = members
			return field, nil
		}
		if src.Format == "date-time" {
			field.Kind = schema.KindDateTime
			return field, nil
		}
		field.Kind = schema.KindString
		field.Format = normalizeFormat(src.Format)
		field.Pattern = src.Pattern
		if src.MinLength > 0 {
			field.MinLength = schema.Len(int(src.MinLength))
		}
		if src.MaxLength != nil {
			field.MaxLength = schema.Len(int(*src.MaxLength))
		}
		return field, nil
	case "number", "integer":
		field.Kind = schema.KindNumber
		if firstType(src.Type) == "integer" {
			field.Kind = schema.KindInteger
		}
		field.Min = src.Min
		field.Max = src.Max
		return field, nil
	case "boolean":
		field.Kind = schema.KindBoolean
		return field, nil
	case "array":
		if src.Items == nil {
			return schema.Field{}, errors.New("array property requires items")
		}
		elem, err := fieldFromRef("", src.Items)
		if err != nil {
			return schema.Field{}, err
		}
		field.Kind = schema.KindArray
		field.Elem = &elem
		return field, nil
	case "object", "":
		fields, err := fieldsFromProperties(src)
		if err != nil {
			return schema.Field{}, err
		}
		field.Kind = schema.KindObject
		field.Fields = fields
		return field, nil
	}
	return schema.Field{}, fmt.Errorf("unsupported property type %q", firstType(src.Type))
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}

func enumMembers(raw []any) ([]string, error) {
	members := make([]string, 0, len(raw))
	for _, member := range raw {
		text, ok := member.(string)
		if !ok {
			return nil, fmt.Errorf("non-string enum member %v", member)
		}
		members = append(members, text)
	}
	return members, nil
}

func normalizeFormat(format string) string {
	switch format {
	case "uri", "url":
		return schema.FormatURL
	default:
		return format
	}
}

func isStrict(src *openapi3.Schema) bool {
	return src.AdditionalProperties.Has != nil && !*src.AdditionalProperties.Has
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func refName(pointer string) string {
	trimmed := strings.TrimPrefix(pointer, schemaRefPrefix)
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return trimmed
}
