package presets_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-uispec/pkg/presets"
	"github.com/goliatone/go-uispec/pkg/schema"
	"github.com/goliatone/go-uispec/pkg/validate"
)

const toastOverrides = `
definitions:
  ToastProps:
    defaults:
      dismissible: false
      position: bottom-right
`

func baseRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	reg := schema.NewRegistry()
	reg.MustRegister(schema.Definition{
		Name:   "ToastProps",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "dismissible", Kind: schema.KindBoolean, Default: true},
			{Name: "position", Kind: schema.KindEnum, Enum: []string{"top-right", "bottom-right"}, Default: "top-right"},
			{Name: "durationMs", Kind: schema.KindNumber, Min: schema.Num(0)},
		},
	})
	reg.MustRegister(schema.Definition{
		Name:         "FieldProps",
		Kind:         schema.KindDiscriminated,
		Discriminant: "type",
		Fields: []schema.Field{
			{Name: "name", Kind: schema.KindString, Required: true},
		},
		Variants: []schema.Variant{
			{Tag: "text", Fields: []schema.Field{
				{Name: "minLength", Kind: schema.KindInteger, Min: schema.Num(0)},
			}},
			{Tag: "password", Fields: []schema.Field{
				{Name: "minLength", Kind: schema.KindInteger, Min: schema.Num(0)},
			}},
		},
	})
	reg.MustResolve()
	return reg
}

func TestLoadFS_ParsesYAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"toast.yaml": &fstest.MapFile{Data: []byte(toastOverrides)},
		"field.json": &fstest.MapFile{Data: []byte(`{"definitions": {"FieldProps": {"defaults": {"minLength": 2}}}}`)},
		"notes.txt":  &fstest.MapFile{Data: []byte("ignored")},
	}
	store, err := presets.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Empty() {
		t.Fatalf("expected overrides")
	}
	names := store.Definitions()
	if len(names) != 2 || names[0] != "FieldProps" || names[1] != "ToastProps" {
		t.Fatalf("unexpected definitions: %v", names)
	}
	defaults, ok := store.Defaults("ToastProps")
	if !ok {
		t.Fatalf("expected ToastProps overrides")
	}
	if got := defaults["dismissible"]; got != false {
		t.Fatalf("dismissible override: %v", got)
	}
}

func TestLoadFS_DuplicateDefinitionAcrossFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte(toastOverrides)},
		"b.yaml": &fstest.MapFile{Data: []byte(toastOverrides)},
	}
	_, err := presets.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "overridden by both") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoadFS_NilAndEmpty(t *testing.T) {
	store, err := presets.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}

	if _, err := presets.LoadFS(fstest.MapFS{
		"empty.yaml": &fstest.MapFile{Data: []byte("   ")},
	}); err == nil {
		t.Fatalf("expected error for an empty preset file")
	}
}

func TestApply_OverridesDefaults(t *testing.T) {
	reg := baseRegistry(t)
	store, err := presets.LoadFS(fstest.MapFS{
		"toast.yaml": &fstest.MapFile{Data: []byte(toastOverrides)},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	derived, err := store.Apply(reg)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	result, err := validate.Validate(derived, "ToastProps", map[string]any{"id": "t1"})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid toast, got %+v", result.Issues)
	}
	value := result.Value.(map[string]any)
	if got := value["dismissible"]; got != false {
		t.Fatalf("dismissible should default to the override: %v", got)
	}
	if got := value["position"]; got != "bottom-right" {
		t.Fatalf("position should default to the override: %v", got)
	}

	// The base registry keeps its original defaults.
	result, err = validate.Validate(reg, "ToastProps", map[string]any{"id": "t1"})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got := result.Value.(map[string]any)["dismissible"]; got != true {
		t.Fatalf("base registry mutated: %v", got)
	}
}

func TestApply_VariantFieldOverriddenEverywhere(t *testing.T) {
	reg := baseRegistry(t)
	store, err := presets.LoadFS(fstest.MapFS{
		"field.yaml": &fstest.MapFile{Data: []byte(`
definitions:
  FieldProps:
    defaults:
      minLength: 8
`)},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	derived, err := store.Apply(reg)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	for _, tag := range []string{"text", "password"} {
		result, err := validate.Validate(derived, "FieldProps", map[string]any{
			"type": tag,
			"name": "secret",
		})
		if err != nil {
			t.Fatalf("validate: %v", err)
		}
		if !result.Valid {
			t.Fatalf("variant %q: %+v", tag, result.Issues)
		}
		if got := result.Value.(map[string]any)["minLength"]; got != 8 {
			t.Fatalf("variant %q minLength default: %v", tag, got)
		}
	}
}

func TestApply_RejectsUnknownTargets(t *testing.T) {
	reg := baseRegistry(t)

	store, err := presets.LoadFS(fstest.MapFS{
		"bad.yaml": &fstest.MapFile{Data: []byte(`
definitions:
  NoSuchDefinition:
    defaults:
      anything: 1
`)},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := store.Apply(reg); err == nil || !strings.Contains(err.Error(), "unknown definition") {
		t.Fatalf("expected unknown definition error, got %v", err)
	}

	store, err = presets.LoadFS(fstest.MapFS{
		"bad.yaml": &fstest.MapFile{Data: []byte(`
definitions:
  ToastProps:
    defaults:
      noSuchField: 1
`)},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := store.Apply(reg); err == nil || !strings.Contains(err.Error(), "no field") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestApply_RejectsConstraintViolatingOverride(t *testing.T) {
	reg := baseRegistry(t)
	store, err := presets.LoadFS(fstest.MapFS{
		"bad.yaml": &fstest.MapFile{Data: []byte(`
definitions:
  ToastProps:
    defaults:
      position: middle
`)},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := store.Apply(reg); err == nil {
		t.Fatalf("expected resolve to reject an override outside the enum")
	}
}
