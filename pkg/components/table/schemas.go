// Package table declares the data-table component definitions.
package table

import "github.com/goliatone/go-uispec/pkg/schema"

var (
	DataTypes      = []string{"text", "number", "currency", "percent", "date", "badge", "actions"}
	Alignments     = []string{"left", "center", "right"}
	SortDirections = []string{"asc", "desc"}
)

// Register installs the table definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:   "ColumnDefinition",
		Title:  "Table column",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "header", Kind: schema.KindString, Required: true},
			{Name: "dataType", Kind: schema.KindEnum, Enum: DataTypes, Default: "text"},
			{Name: "sortable", Kind: schema.KindBoolean, Default: false},
			{Name: "width", Kind: schema.KindNumber, Min: schema.Num(0)},
			{Name: "align", Kind: schema.KindEnum, Enum: Alignments, Default: "left"},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "SortConfig",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "columnId", Kind: schema.KindString, Required: true},
			{Name: "direction", Kind: schema.KindEnum, Enum: SortDirections, Default: "asc"},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "PaginationConfig",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "pageSize", Kind: schema.KindInteger, Default: 25, Min: schema.Num(1), Max: schema.Num(500)},
			{Name: "page", Kind: schema.KindInteger, Default: 1, Min: schema.Num(1)},
			{Name: "totalRows", Kind: schema.KindInteger, Min: schema.Num(0)},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "RowAction",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "label", Kind: schema.KindString, Required: true},
			{Name: "icon", Kind: schema.KindString, Format: schema.FormatSVG},
			{Name: "destructive", Kind: schema.KindBoolean, Default: false},
		},
	})

	reg.MustRegister(schema.Definition{
		Name:   "TableProps",
		Title:  "Data table",
		Kind:   schema.KindObject,
		Strict: true,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "columns", Kind: schema.KindArray, Required: true, Elem: &schema.Field{Kind: schema.KindObject, Ref: "ColumnDefinition"}},
			{Name: "sort", Kind: schema.KindObject, Ref: "SortConfig"},
			{Name: "pagination", Kind: schema.KindObject, Ref: "PaginationConfig"},
			{Name: "rowActions", Kind: schema.KindArray, Elem: &schema.Field{Kind: schema.KindObject, Ref: "RowAction"}},
			{Name: "striped", Kind: schema.KindBoolean, Default: false},
			{Name: "stickyHeader", Kind: schema.KindBoolean, Default: false},
			{Name: "emptyMessage", Kind: schema.KindString, Default: "No data to display"},
		},
	})
}
