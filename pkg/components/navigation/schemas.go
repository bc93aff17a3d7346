// Package navigation declares sidebar, breadcrumb and tab definitions.
// SidebarItem is self-referential: its children are sidebar items themselves,
// resolved lazily by name through the registry.
package navigation

import "github.com/goliatone/go-uispec/pkg/schema"

// TabVariants accepted by TabsProps.variant.
var TabVariants = []string{"underline", "pills", "enclosed"}

// Register installs the navigation definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:   "SidebarItem",
		Title:  "Sidebar item",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "label", Kind: schema.KindString, Required: true},
			{Name: "icon", Kind: schema.KindString, Format: schema.FormatSVG},
			{Name: "href", Kind: schema.KindString, Format: schema.FormatURL},
			{Name: "children", Kind: schema.KindArray, Elem: &schema.Field{Kind: schema.KindObject, Ref: "SidebarItem"}},
			{Name: "badgeCount", Kind: schema.KindInteger, Min: schema.Num(0)},
			{Name: "disabled", Kind: schema.KindBoolean, Default: false},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "SidebarProps",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "items", Kind: schema.KindArray, Required: true, Elem: &schema.Field{Kind: schema.KindObject, Ref: "SidebarItem"}},
			{Name: "collapsed", Kind: schema.KindBoolean, Default: false},
			{Name: "width", Kind: schema.KindNumber, Default: 260, Min: schema.Num(160), Max: schema.Num(480)},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "BreadcrumbItem",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "label", Kind: schema.KindString, Required: true},
			{Name: "href", Kind: schema.KindString, Format: schema.FormatURL},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "TabItem",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "label", Kind: schema.KindString, Required: true},
			{Name: "disabled", Kind: schema.KindBoolean, Default: false},
			{Name: "badge", Kind: schema.KindString},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "TabsProps",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "tabs", Kind: schema.KindArray, Required: true, Elem: &schema.Field{Kind: schema.KindObject, Ref: "TabItem"}},
			{Name: "activeTab", Kind: schema.KindString},
			{Name: "variant", Kind: schema.KindEnum, Enum: TabVariants, Default: "underline"},
		},
	})
}
