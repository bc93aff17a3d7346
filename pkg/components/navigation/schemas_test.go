package navigation_test

import (
	"testing"

	"github.com/goliatone/go-uispec/pkg/components/navigation"
	"github.com/goliatone/go-uispec/pkg/schema"
	"github.com/goliatone/go-uispec/pkg/validate"
)

func TestSidebarItem_NestedChildren(t *testing.T) {
	reg := schema.NewRegistry()
	navigation.Register(reg)
	if err := reg.Resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	result, err := validate.Validate(reg, "SidebarProps", map[string]any{
		"items": []any{
			map[string]any{
				"id":    "reports",
				"label": "Reports",
				"children": []any{
					map[string]any{"id": "weekly", "label": "Weekly", "href": "https://app.example.com/reports/weekly"},
					map[string]any{"id": "monthly", "label": "Monthly", "badgeCount": -1},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if result.Valid {
		t.Fatalf("negative badgeCount must fail")
	}
	if len(result.Issues) != 1 {
		t.Fatalf("expected one issue, got %+v", result.Issues)
	}
	issue := result.Issues[0]
	if issue.Kind != validate.IssueRangeViolation || issue.Path != "items[0].children[1].badgeCount" {
		t.Fatalf("unexpected issue: %+v", issue)
	}
}

func TestSidebarProps_WidthBounds(t *testing.T) {
	reg := schema.NewRegistry()
	navigation.Register(reg)
	if err := reg.Resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	result, err := validate.Validate(reg, "SidebarProps", map[string]any{"items": []any{}})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !result.Valid {
		t.Fatalf("empty sidebar must be valid, got %+v", result.Issues)
	}
	if got := result.Value.(map[string]any)["width"]; got != 260 {
		t.Fatalf("width default: %v", got)
	}

	result, err = validate.Validate(reg, "SidebarProps", map[string]any{"items": []any{}, "width": 100})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if result.Valid {
		t.Fatalf("width below 160 must fail")
	}
}
