package schema_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-uispec/pkg/schema"
)

func TestRegistry_RegisterRules(t *testing.T) {
	reg := schema.NewRegistry()

	if err := reg.Register(schema.Definition{Kind: schema.KindObject}); err == nil {
		t.Fatalf("expected error for a nameless definition")
	}

	def := schema.Definition{
		Name: "Thing",
		Kind: schema.KindObject,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
		},
	}
	if err := reg.Register(def); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(def); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	if err := reg.Resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !reg.Resolved() {
		t.Fatalf("registry should report resolved")
	}
	if err := reg.Register(schema.Definition{Name: "Late", Kind: schema.KindObject}); err == nil {
		t.Fatalf("expected error when registering after resolve")
	}
	// Resolve is idempotent.
	if err := reg.Resolve(); err != nil {
		t.Fatalf("second resolve: %v", err)
	}
}

func TestRegistry_ResolveFailures(t *testing.T) {
	cases := []struct {
		name string
		def  schema.Definition
		want string
	}{
		{
			name: "unknown reference",
			def: schema.Definition{
				Name: "Broken",
				Kind: schema.KindObject,
				Fields: []schema.Field{
					{Name: "child", Kind: schema.KindObject, Ref: "Missing"},
				},
			},
			want: "unknown definition",
		},
		{
			name: "enum without members",
			def: schema.Definition{
				Name: "Broken",
				Kind: schema.KindObject,
				Fields: []schema.Field{
					{Name: "mode", Kind: schema.KindEnum},
				},
			},
			want: "enum field requires members",
		},
		{
			name: "array without element",
			def: schema.Definition{
				Name: "Broken",
				Kind: schema.KindObject,
				Fields: []schema.Field{
					{Name: "items", Kind: schema.KindArray},
				},
			},
			want: "array field requires an element",
		},
		{
			name: "duplicate field",
			def: schema.Definition{
				Name: "Broken",
				Kind: schema.KindObject,
				Fields: []schema.Field{
					{Name: "id", Kind: schema.KindString},
					{Name: "id", Kind: schema.KindString},
				},
			},
			want: "duplicate field",
		},
		{
			name: "default outside range",
			def: schema.Definition{
				Name: "Broken",
				Kind: schema.KindObject,
				Fields: []schema.Field{
					{Name: "size", Kind: schema.KindInteger, Default: 0, Min: schema.Num(1)},
				},
			},
			want: "below min",
		},
		{
			name: "default not an enum member",
			def: schema.Definition{
				Name: "Broken",
				Kind: schema.KindObject,
				Fields: []schema.Field{
					{Name: "mode", Kind: schema.KindEnum, Enum: []string{"a", "b"}, Default: "c"},
				},
			},
			want: "not an enum member",
		},
		{
			name: "invalid pattern",
			def: schema.Definition{
				Name: "Broken",
				Kind: schema.KindObject,
				Fields: []schema.Field{
					{Name: "code", Kind: schema.KindString, Pattern: "("},
				},
			},
			want: "invalid pattern",
		},
		{
			name: "discriminated without variants",
			def: schema.Definition{
				Name:         "Broken",
				Kind:         schema.KindDiscriminated,
				Discriminant: "type",
			},
			want: "requires variants",
		},
		{
			name: "duplicate variant tag",
			def: schema.Definition{
				Name:         "Broken",
				Kind:         schema.KindDiscriminated,
				Discriminant: "type",
				Variants: []schema.Variant{
					{Tag: "a"},
					{Tag: "a"},
				},
			},
			want: "duplicate variant",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := schema.NewRegistry()
			if err := reg.Register(tc.def); err != nil {
				t.Fatalf("register: %v", err)
			}
			err := reg.Resolve()
			if err == nil {
				t.Fatalf("expected resolve to fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestRegistry_SelfReferenceResolves(t *testing.T) {
	reg := schema.NewRegistry()
	reg.MustRegister(schema.Definition{
		Name: "Node",
		Kind: schema.KindObject,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "children", Kind: schema.KindArray, Elem: &schema.Field{Kind: schema.KindObject, Ref: "Node"}},
		},
	})
	if err := reg.Resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := schema.NewRegistry()
	for _, name := range []string{"Zed", "Alpha", "Mid"} {
		reg.MustRegister(schema.Definition{Name: name, Kind: schema.KindObject})
	}
	names := reg.Names()
	want := []string{"Alpha", "Mid", "Zed"}
	if len(names) != len(want) {
		t.Fatalf("unexpected names: %v", names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestDefinition_VariantLookup(t *testing.T) {
	def := schema.Definition{
		Name:         "Widget",
		Kind:         schema.KindDiscriminated,
		Discriminant: "type",
		Variants: []schema.Variant{
			{Tag: "chart"},
			{Tag: "stat"},
		},
	}
	if _, ok := def.Variant("chart"); !ok {
		t.Fatalf("expected chart variant")
	}
	if _, ok := def.Variant("feed"); ok {
		t.Fatalf("unexpected feed variant")
	}
	tags := def.VariantTags()
	if len(tags) != 2 || tags[0] != "chart" || tags[1] != "stat" {
		t.Fatalf("unexpected tags: %v", tags)
	}
}
