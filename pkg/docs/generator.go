package docs

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-uispec/pkg/schema"
)

// Generator renders reference pages from a registry.
type Generator struct {
	engine *Engine
}

// NewGenerator constructs a Generator with the supplied engine options.
func NewGenerator(options ...Option) (*Generator, error) {
	engine, err := NewEngine(options...)
	if err != nil {
		return nil, err
	}
	return &Generator{engine: engine}, nil
}

// Page renders the reference page for one definition.
func (g *Generator) Page(def schema.Definition) (string, error) {
	return g.engine.Render("definition.md", pageContext(def))
}

// Pages renders every definition in the registry, keyed by definition name.
func (g *Generator) Pages(reg *schema.Registry) (map[string]string, error) {
	out := make(map[string]string)
	for _, name := range reg.Names() {
		def, _ := reg.Definition(name)
		page, err := g.Page(def)
		if err != nil {
			return nil, fmt.Errorf("uispec docs: definition %q: %w", name, err)
		}
		out[name] = page
	}
	return out, nil
}

func pageContext(def schema.Definition) map[string]any {
	title := def.Title
	if title == "" {
		title = def.Name
	}
	ctx := map[string]any{
		"title":        title,
		"description":  def.Description,
		"kind":         string(def.Kind),
		"strict":       def.Strict,
		"discriminant": def.Discriminant,
		"rows":         fieldRows(def.Fields),
	}
	if def.Kind == schema.KindArray && def.Elem != nil {
		ctx["rows"] = fieldRows([]schema.Field{withName(*def.Elem, "(element)")})
	}
	if len(def.Variants) > 0 {
		variants := make([]map[string]any, 0, len(def.Variants))
		for _, variant := range def.Variants {
			variants = append(variants, map[string]any{
				"tag":  variant.Tag,
				"rows": fieldRows(variant.Fields),
			})
		}
		ctx["variants"] = variants
	}
	return ctx
}

func withName(field schema.Field, name string) schema.Field {
	field.Name = name
	return field
}

func fieldRows(fields []schema.Field) []map[string]any {
	if len(fields) == 0 {
		return nil
	}
	rows := make([]map[string]any, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, map[string]any{
			"name":        field.Name,
			"kind":        kindLabel(field),
			"required":    yesNo(field.Required),
			"default":     defaultLabel(field),
			"constraints": constraintSummary(field),
		})
	}
	return rows
}

func kindLabel(field schema.Field) string {
	switch field.Kind {
	case schema.KindObject:
		if field.Ref != "" {
			return "[" + field.Ref + "](" + field.Ref + ".md)"
		}
		return "object"
	case schema.KindArray:
		if field.Elem != nil {
			return "array of " + kindLabel(*field.Elem)
		}
		return "array"
	case schema.KindUnion:
		kinds := make([]string, 0, len(field.Branches))
		for _, branch := range field.Branches {
			kinds = append(kinds, kindLabel(branch))
		}
		return "one of " + strings.Join(kinds, ", ")
	}
	return string(field.Kind)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func defaultLabel(field schema.Field) string {
	if field.Default == nil {
		return "—"
	}
	return fmt.Sprintf("`%v`", field.Default)
}

func constraintSummary(field schema.Field) string {
	parts := make([]string, 0, 4)
	if len(field.Enum) > 0 {
		parts = append(parts, "one of: "+strings.Join(field.Enum, ", "))
	}
	if field.Min != nil {
		parts = append(parts, fmt.Sprintf("min %v", *field.Min))
	}
	if field.Max != nil {
		parts = append(parts, fmt.Sprintf("max %v", *field.Max))
	}
	if field.MinLength != nil {
		parts = append(parts, fmt.Sprintf("minLength %d", *field.MinLength))
	}
	if field.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("maxLength %d", *field.MaxLength))
	}
	if field.Pattern != "" {
		parts = append(parts, "pattern `"+field.Pattern+"`")
	}
	if field.Format != "" {
		parts = append(parts, "format "+field.Format)
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, "; ")
}
