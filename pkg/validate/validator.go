// Package validate implements the validate-with-defaults contract shared by
// every definition in go-uispec: walk the field specification, substitute
// declared defaults for absent members, and collect every violation instead
// of stopping at the first one. Validation is pure; the caller owns logging
// and presentation of the returned issues.
package validate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/goliatone/go-uispec/pkg/sanitize"
	"github.com/goliatone/go-uispec/pkg/schema"
)

// Validate checks input against the named definition. The returned error is
// reserved for caller mistakes (unknown definition name); data problems are
// reported through Result.Issues. Defaulting happens only on omission — a
// provided value, including an explicit null, is never overridden.
func Validate(reg *schema.Registry, name string, input any) (Result, error) {
	def, ok := reg.Definition(name)
	if !ok {
		return Result{}, fmt.Errorf("uispec validate: unknown definition %q", name)
	}
	w := &walker{reg: reg}
	value, ok := w.definition(def, input, "")
	result := Result{Valid: len(w.issues) == 0, Issues: w.issues}
	if result.Valid && ok {
		result.Value = value
	}
	return result, nil
}

type walker struct {
	reg    *schema.Registry
	issues []Issue
}

func (w *walker) report(path string, kind IssueKind, format string, args ...any) {
	w.issues = append(w.issues, Issue{Path: path, Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func (w *walker) definition(def schema.Definition, input any, path string) (any, bool) {
	switch def.Kind {
	case schema.KindArray:
		items, ok := input.([]any)
		if !ok {
			w.report(path, IssueTypeMismatch, "expected an array for %s", def.Name)
			return nil, false
		}
		out := make([]any, 0, len(items))
		valid := true
		for i, item := range items {
			value, ok := w.value(*def.Elem, item, indexPath(path, i))
			if !ok {
				valid = false
				continue
			}
			out = append(out, value)
		}
		return out, valid
	case schema.KindDiscriminated:
		in, ok := input.(map[string]any)
		if !ok {
			w.report(path, IssueTypeMismatch, "expected an object for %s", def.Name)
			return nil, false
		}
		return w.discriminated(def, in, path)
	default:
		in, ok := input.(map[string]any)
		if !ok {
			w.report(path, IssueTypeMismatch, "expected an object for %s", def.Name)
			return nil, false
		}
		return w.object(def.Fields, def.Strict, in, path)
	}
}

func (w *walker) discriminated(def schema.Definition, in map[string]any, path string) (any, bool) {
	tagPath := joinPath(path, def.Discriminant)
	raw, present := in[def.Discriminant]
	if !present {
		w.report(tagPath, IssueMissingRequired, "discriminant %q is missing", def.Discriminant)
		return nil, false
	}
	tag, ok := raw.(string)
	if !ok {
		w.report(tagPath, IssueTypeMismatch, "discriminant %q must be a string", def.Discriminant)
		return nil, false
	}
	variant, ok := def.Variant(tag)
	if !ok {
		w.report(tagPath, IssueUnknownVariant, "%q is not a known variant (expected one of %s)", tag, strings.Join(def.VariantTags(), ", "))
		return nil, false
	}

	fields := make([]schema.Field, 0, len(def.Fields)+len(variant.Fields))
	fields = append(fields, def.Fields...)
	fields = append(fields, variant.Fields...)

	// The discriminant participates in the field walk so strict definitions
	// accept it and the output carries it through unchanged.
	rest := make(map[string]any, len(in))
	for key, value := range in {
		if key == def.Discriminant {
			continue
		}
		rest[key] = value
	}
	out, valid := w.object(fields, def.Strict, rest, path)
	if out != nil {
		out[def.Discriminant] = tag
	}
	return out, valid
}

func (w *walker) object(fields []schema.Field, strict bool, in map[string]any, path string) (map[string]any, bool) {
	out := make(map[string]any, len(fields))
	valid := true
	declared := make(map[string]bool, len(fields))

	for _, field := range fields {
		declared[field.Name] = true
		fieldPath := joinPath(path, field.Name)
		raw, present := in[field.Name]
		if !present {
			if field.Default != nil {
				out[field.Name] = cloneValue(field.Default)
			} else if field.Required {
				w.report(fieldPath, IssueMissingRequired, "required field is missing")
				valid = false
			}
			continue
		}
		value, ok := w.value(field, raw, fieldPath)
		if !ok {
			valid = false
			continue
		}
		out[field.Name] = value
	}

	if strict {
		extras := make([]string, 0)
		for key := range in {
			if !declared[key] {
				extras = append(extras, key)
			}
		}
		sort.Strings(extras)
		for _, key := range extras {
			w.report(joinPath(path, key), IssueUnrecognizedField, "field is not declared by this definition")
			valid = false
		}
	}

	return out, valid
}

func (w *walker) value(field schema.Field, raw any, path string) (any, bool) {
	if raw == nil {
		w.report(path, IssueTypeMismatch, "null is not a valid %s", field.Kind)
		return nil, false
	}

	switch field.Kind {
	case schema.KindString:
		return w.stringValue(field, raw, path)
	case schema.KindNumber:
		value, ok := asFloat(raw)
		if !ok {
			w.report(path, IssueTypeMismatch, "expected a number")
			return nil, false
		}
		return raw, w.checkRange(field, value, path)
	case schema.KindInteger:
		value, ok := asFloat(raw)
		if !ok || math.Trunc(value) != value {
			w.report(path, IssueTypeMismatch, "expected an integer")
			return nil, false
		}
		return raw, w.checkRange(field, value, path)
	case schema.KindBoolean:
		if _, ok := raw.(bool); !ok {
			w.report(path, IssueTypeMismatch, "expected a boolean")
			return nil, false
		}
		return raw, true
	case schema.KindDateTime:
		text, ok := raw.(string)
		if !ok {
			w.report(path, IssueTypeMismatch, "expected an RFC 3339 date-time string")
			return nil, false
		}
		if !isDateTime(text) {
			w.report(path, IssuePatternViolation, "%q is not a valid RFC 3339 date-time", text)
			return nil, false
		}
		return raw, true
	case schema.KindEnum:
		text, ok := raw.(string)
		if !ok {
			w.report(path, IssueTypeMismatch, "expected a string")
			return nil, false
		}
		for _, member := range field.Enum {
			if member == text {
				return raw, true
			}
		}
		w.report(path, IssueEnumViolation, "%q is not one of %s", text, strings.Join(field.Enum, ", "))
		return nil, false
	case schema.KindObject:
		in, ok := raw.(map[string]any)
		if !ok {
			w.report(path, IssueTypeMismatch, "expected an object")
			return nil, false
		}
		if field.Ref != "" {
			def, ok := w.reg.Definition(field.Ref)
			if !ok {
				w.report(path, IssueNestedFailure, "reference to unknown definition %q", field.Ref)
				return nil, false
			}
			return w.definition(def, in, path)
		}
		return w.object(field.Fields, false, in, path)
	case schema.KindArray:
		items, ok := raw.([]any)
		if !ok {
			w.report(path, IssueTypeMismatch, "expected an array")
			return nil, false
		}
		out := make([]any, 0, len(items))
		valid := true
		for i, item := range items {
			value, ok := w.value(*field.Elem, item, indexPath(path, i))
			if !ok {
				valid = false
				continue
			}
			out = append(out, value)
		}
		return out, valid
	case schema.KindUnion:
		return w.union(field, raw, path)
	}
	w.report(path, IssueTypeMismatch, "unsupported field kind %q", field.Kind)
	return nil, false
}

func (w *walker) union(field schema.Field, raw any, path string) (any, bool) {
	kinds := make([]string, 0, len(field.Branches))
	for _, branch := range field.Branches {
		kinds = append(kinds, string(branch.Kind))
		scratch := &walker{reg: w.reg}
		value, ok := scratch.value(branch, raw, path)
		if ok && len(scratch.issues) == 0 {
			return value, true
		}
	}
	w.report(path, IssueNestedFailure, "value matches none of the union branches (%s)", strings.Join(kinds, ", "))
	return nil, false
}

func (w *walker) stringValue(field schema.Field, raw any, path string) (any, bool) {
	text, ok := raw.(string)
	if !ok {
		w.report(path, IssueTypeMismatch, "expected a string")
		return nil, false
	}
	valid := true
	if field.MinLength != nil && len(text) < *field.MinLength {
		w.report(path, IssueRangeViolation, "length %d is below the minimum of %d", len(text), *field.MinLength)
		valid = false
	}
	if field.MaxLength != nil && len(text) > *field.MaxLength {
		w.report(path, IssueRangeViolation, "length %d exceeds the maximum of %d", len(text), *field.MaxLength)
		valid = false
	}
	if field.Pattern != "" {
		re, err := compiledPattern(field.Pattern)
		if err != nil || !re.MatchString(text) {
			w.report(path, IssuePatternViolation, "%q does not match the required pattern", text)
			valid = false
		}
	}
	switch field.Format {
	case schema.FormatURL:
		if !isURL(text) {
			w.report(path, IssuePatternViolation, "%q is not a valid URL", text)
			valid = false
		}
	case schema.FormatDateTime:
		if !isDateTime(text) {
			w.report(path, IssuePatternViolation, "%q is not a valid RFC 3339 date-time", text)
			valid = false
		}
	case schema.FormatColor:
		if !isHexColor(text) {
			w.report(path, IssuePatternViolation, "%q is not a hex color", text)
			valid = false
		}
	case schema.FormatSVG:
		cleaned := sanitize.SVG(text)
		if cleaned == "" {
			w.report(path, IssuePatternViolation, "icon markup is empty after sanitization")
			return nil, false
		}
		if valid {
			return cleaned, true
		}
	}
	if !valid {
		return nil, false
	}
	return text, true
}

func (w *walker) checkRange(field schema.Field, value float64, path string) bool {
	valid := true
	if field.Min != nil && value < *field.Min {
		w.report(path, IssueRangeViolation, "%v is below the minimum of %v", value, *field.Min)
		valid = false
	}
	if field.Max != nil && value > *field.Max {
		w.report(path, IssueRangeViolation, "%v exceeds the maximum of %v", value, *field.Max)
		valid = false
	}
	return valid
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

func indexPath(base string, index int) string {
	return fmt.Sprintf("%s[%d]", base, index)
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	default:
		return value
	}
}
