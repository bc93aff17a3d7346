package schema

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"
)

var (
	errDefinitionNameMissing = errors.New("uispec registry: definition name is required")
	errRegistryResolved      = errors.New("uispec registry: cannot register after resolve")
)

// Registry holds the named definitions a validator can dispatch on. Register
// all definitions up front, call Resolve once, and treat the registry as
// read-only afterwards; resolved registries are safe for concurrent readers.
// References between definitions (including self references such as
// SidebarItem.children) are resolved lazily by name, so registration order
// does not matter.
type Registry struct {
	mu       sync.RWMutex
	defs     map[string]Definition
	resolved bool
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds a definition. Registering a duplicate name or registering
// after Resolve is an error.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return errDefinitionNameMissing
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved {
		return errRegistryResolved
	}
	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("uispec registry: duplicate definition %q", def.Name)
	}
	r.defs[def.Name] = def
	return nil
}

// MustRegister is Register for package init paths where a failure is a
// programming error.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Definition looks up a definition by name.
func (r *Registry) Definition(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the registered definition names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolved reports whether Resolve completed successfully.
func (r *Registry) Resolved() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolved
}

// Resolve verifies the registry is internally consistent: every reference
// points at a registered definition, composite fields carry their structural
// slot, enum fields declare members, patterns compile, and declared defaults
// satisfy their own field constraints. After a successful resolve the
// registry rejects further registrations.
func (r *Registry) Resolve() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved {
		return nil
	}
	for _, name := range sortedNames(r.defs) {
		if err := r.checkDefinition(r.defs[name]); err != nil {
			return fmt.Errorf("uispec registry: definition %q: %w", name, err)
		}
	}
	r.resolved = true
	return nil
}

// MustResolve panics when Resolve fails; intended for compiled-in registries
// where an inconsistency is a programming error.
func (r *Registry) MustResolve() {
	if err := r.Resolve(); err != nil {
		panic(err)
	}
}

func sortedNames(defs map[string]Definition) []string {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) checkDefinition(def Definition) error {
	switch def.Kind {
	case KindObject:
		return r.checkFields(def.Fields)
	case KindArray:
		if def.Elem == nil {
			return errors.New("array definition requires an element spec")
		}
		return r.checkField(*def.Elem)
	case KindDiscriminated:
		if def.Discriminant == "" {
			return errors.New("discriminated definition requires a discriminant")
		}
		if len(def.Variants) == 0 {
			return errors.New("discriminated definition requires variants")
		}
		seen := make(map[string]bool, len(def.Variants))
		for _, variant := range def.Variants {
			if variant.Tag == "" {
				return errors.New("variant tag is required")
			}
			if seen[variant.Tag] {
				return fmt.Errorf("duplicate variant %q", variant.Tag)
			}
			seen[variant.Tag] = true
			if err := r.checkFields(variant.Fields); err != nil {
				return fmt.Errorf("variant %q: %w", variant.Tag, err)
			}
		}
		return r.checkFields(def.Fields)
	default:
		return fmt.Errorf("unsupported definition kind %q", def.Kind)
	}
}

func (r *Registry) checkFields(fields []Field) error {
	seen := make(map[string]bool, len(fields))
	for _, field := range fields {
		if field.Name == "" {
			return errors.New("field name is required")
		}
		if seen[field.Name] {
			return fmt.Errorf("duplicate field %q", field.Name)
		}
		seen[field.Name] = true
		if err := r.checkField(field); err != nil {
			return fmt.Errorf("field %q: %w", field.Name, err)
		}
	}
	return nil
}

func (r *Registry) checkField(field Field) error {
	switch field.Kind {
	case KindString, KindNumber, KindInteger, KindBoolean, KindDateTime:
	case KindEnum:
		if len(field.Enum) == 0 {
			return errors.New("enum field requires members")
		}
	case KindObject:
		if field.Ref != "" {
			if _, ok := r.defs[field.Ref]; !ok {
				return fmt.Errorf("reference to unknown definition %q", field.Ref)
			}
		} else if err := r.checkFields(field.Fields); err != nil {
			return err
		}
	case KindArray:
		if field.Elem == nil {
			return errors.New("array field requires an element spec")
		}
		if err := r.checkField(*field.Elem); err != nil {
			return err
		}
	case KindUnion:
		if len(field.Branches) == 0 {
			return errors.New("union field requires branches")
		}
		for _, branch := range field.Branches {
			if err := r.checkField(branch); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported field kind %q", field.Kind)
	}
	if field.Pattern != "" {
		if _, err := regexp.Compile(field.Pattern); err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}
	}
	if field.Default != nil {
		if err := checkDefault(field); err != nil {
			return err
		}
	}
	return nil
}

// checkDefault guards the declared default against the field's own
// constraints so a bad table entry fails at resolve time, not per call.
func checkDefault(field Field) error {
	switch field.Kind {
	case KindString:
		text, ok := field.Default.(string)
		if !ok {
			return fmt.Errorf("default %v is not a string", field.Default)
		}
		if field.MinLength != nil && len(text) < *field.MinLength {
			return fmt.Errorf("default %q shorter than minLength %d", text, *field.MinLength)
		}
		if field.MaxLength != nil && len(text) > *field.MaxLength {
			return fmt.Errorf("default %q longer than maxLength %d", text, *field.MaxLength)
		}
		if field.Pattern != "" {
			re := regexp.MustCompile(field.Pattern)
			if !re.MatchString(text) {
				return fmt.Errorf("default %q does not match pattern", text)
			}
		}
	case KindNumber, KindInteger:
		value, ok := asFloat(field.Default)
		if !ok {
			return fmt.Errorf("default %v is not numeric", field.Default)
		}
		if field.Min != nil && value < *field.Min {
			return fmt.Errorf("default %v below min %v", value, *field.Min)
		}
		if field.Max != nil && value > *field.Max {
			return fmt.Errorf("default %v above max %v", value, *field.Max)
		}
	case KindBoolean:
		if _, ok := field.Default.(bool); !ok {
			return fmt.Errorf("default %v is not a boolean", field.Default)
		}
	case KindEnum:
		text, ok := field.Default.(string)
		if !ok {
			return fmt.Errorf("default %v is not a string", field.Default)
		}
		for _, member := range field.Enum {
			if member == text {
				return nil
			}
		}
		return fmt.Errorf("default %q is not an enum member", text)
	}
	return nil
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
