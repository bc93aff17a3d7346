package uispec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	uispec "github.com/goliatone/go-uispec"
)

func TestDefaultRegistry_KnownDefinitions(t *testing.T) {
	names := uispec.Definitions()
	if len(names) == 0 {
		t.Fatalf("expected a populated registry")
	}
	want := []string{
		"AxisConfig", "AvatarProps", "BadgeProps", "BreadcrumbItem", "ButtonProps",
		"CampaignSettings", "CardProps", "ChartProps", "ChipProps", "ColumnDefinition",
		"ConfirmDialogProps", "DashboardQuery", "DashboardSettings", "DataPoint",
		"DataSeries", "EmptyStateProps", "FormFieldProps", "FormProps", "InputProps",
		"LegendConfig", "LoadingOverlayProps", "MetricSnapshot", "MetricsSettings",
		"ModalProps", "PaddingConfig", "PaginationConfig", "PostPerformance",
		"ProgressBarProps", "PublishQueueSettings", "RenderJobSettings", "RowAction",
		"SegmentItem", "SegmentedControlProps", "SelectOption", "SidebarItem",
		"SidebarProps", "SkeletonProps", "SortConfig", "SpinnerProps", "StatCardProps",
		"TabItem", "TableProps", "TabsProps", "ToastProps", "TooltipConfig",
		"WebhookSettings", "WidgetConfig",
	}
	index := make(map[string]bool, len(names))
	for _, name := range names {
		index[name] = true
	}
	for _, name := range want {
		if !index[name] {
			t.Errorf("definition %q is not registered", name)
		}
	}
}

func TestToastDefaults(t *testing.T) {
	result, err := uispec.Validate("ToastProps", map[string]any{
		"id":      "t1",
		"variant": "success",
		"title":   "Saved",
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid toast, got %+v", result.Issues)
	}
	value := result.Value.(map[string]any)
	if got := value["dismissible"]; got != true {
		t.Fatalf("dismissible default: %v", got)
	}
	if got := value["position"]; got != "top-right" {
		t.Fatalf("position default: %v", got)
	}
	if _, present := value["autoDismiss"]; present {
		t.Fatalf("autoDismiss has no default and must stay absent")
	}
}

func TestAxisConfig_OrderingNotValidated(t *testing.T) {
	result, err := uispec.Validate("AxisConfig", map[string]any{
		"type": "linear",
		"min":  100,
		"max":  0,
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !result.Valid {
		t.Fatalf("min above max is a caller concern, got %+v", result.Issues)
	}
}

func TestDataSeries_EmptyData(t *testing.T) {
	result, err := uispec.Validate("DataSeries", map[string]any{
		"id":   "s1",
		"name": "Revenue",
		"data": []any{},
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !result.Valid {
		t.Fatalf("empty data must be valid, got %+v", result.Issues)
	}
	if got := result.Value.(map[string]any)["visible"]; got != true {
		t.Fatalf("visible default: %v", got)
	}
}

func TestColumnDefinition_EnumClosure(t *testing.T) {
	result, err := uispec.Validate("ColumnDefinition", map[string]any{
		"id":       "price",
		"header":   "Price",
		"dataType": "curency",
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if result.Valid {
		t.Fatalf("misspelled dataType must fail")
	}
	if len(result.Issues) != 1 {
		t.Fatalf("expected exactly one issue, got %+v", result.Issues)
	}
	issue := result.Issues[0]
	if issue.Kind != uispec.IssueEnumViolation || issue.Path != "dataType" {
		t.Fatalf("unexpected issue: %+v", issue)
	}

	for _, member := range []string{"text", "number", "currency", "percent", "date", "badge", "actions"} {
		result, err := uispec.Validate("ColumnDefinition", map[string]any{
			"id":       "c",
			"header":   "C",
			"dataType": member,
		})
		if err != nil {
			t.Fatalf("validate: %v", err)
		}
		if !result.Valid {
			t.Fatalf("dataType %q must be accepted, got %+v", member, result.Issues)
		}
	}
}

func TestPostPerformance_EngagementRateRange(t *testing.T) {
	payload := map[string]any{
		"postId":         "p1",
		"platform":       "tiktok",
		"publishedAt":    "2026-08-27T09:30:00Z",
		"impressions":    1200,
		"likes":          80,
		"comments":       12,
		"shares":         4,
		"engagementRate": 1.5,
	}
	result, err := uispec.Validate("PostPerformance", payload)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if result.Valid {
		t.Fatalf("engagementRate above 1 must fail")
	}
	if len(result.Issues) != 1 {
		t.Fatalf("expected exactly one issue, got %+v", result.Issues)
	}
	issue := result.Issues[0]
	if issue.Kind != uispec.IssueRangeViolation || issue.Path != "engagementRate" {
		t.Fatalf("unexpected issue: %+v", issue)
	}

	payload["engagementRate"] = 1.0
	result, err = uispec.Validate("PostPerformance", payload)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !result.Valid {
		t.Fatalf("engagementRate of exactly 1 is inclusive, got %+v", result.Issues)
	}
}

func TestFormField_VariantExclusivity(t *testing.T) {
	result, err := uispec.Validate("FormFieldProps", map[string]any{
		"type":      "select",
		"name":      "country",
		"label":     "Country",
		"minLength": 2,
		"options": []any{
			map[string]any{"value": "us", "label": "United States"},
		},
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if result.Valid {
		t.Fatalf("minLength is a text constraint and must be rejected on select")
	}
	issue := result.Issues[0]
	if issue.Kind != uispec.IssueUnrecognizedField || issue.Path != "minLength" {
		t.Fatalf("unexpected issue: %+v", issue)
	}

	result, err = uispec.Validate("FormFieldProps", map[string]any{
		"type":  "textarea",
		"name":  "bio",
		"label": "Bio",
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid textarea, got %+v", result.Issues)
	}
	value := result.Value.(map[string]any)
	if got := value["rows"]; got != 4 {
		t.Fatalf("rows default: %v", got)
	}
	if got := value["type"]; got != "textarea" {
		t.Fatalf("discriminant must round-trip: %v", got)
	}
}

func TestChart_NestedPaths(t *testing.T) {
	result, err := uispec.Validate("ChartProps", map[string]any{
		"id":   "c1",
		"type": "line",
		"series": []any{
			map[string]any{"id": "s1", "name": "A", "data": []any{}},
			map[string]any{"id": "s2", "name": "B", "data": []any{}},
			map[string]any{"id": "s3", "name": "C", "data": []any{
				map[string]any{"x": 1, "y": "not a number"},
			}},
		},
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if result.Valid {
		t.Fatalf("expected failure for non-numeric y")
	}
	if len(result.Issues) != 1 {
		t.Fatalf("expected exactly one issue, got %+v", result.Issues)
	}
	if got := result.Issues[0].Path; got != "series[2].data[0].y" {
		t.Fatalf("unexpected path: %q", got)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	first, err := uispec.Validate("ChartProps", map[string]any{
		"id":   "c1",
		"type": "bar",
		"series": []any{
			map[string]any{"id": "s1", "name": "A", "data": []any{
				map[string]any{"x": "2026-01-01T00:00:00Z", "y": 42.0},
			}},
		},
		"padding": map[string]any{"top": 8.0},
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !first.Valid {
		t.Fatalf("expected valid chart, got %+v", first.Issues)
	}
	second, err := uispec.Validate("ChartProps", first.Value)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !second.Valid {
		t.Fatalf("re-validation failed: %+v", second.Issues)
	}
	if diff := cmp.Diff(first.Value, second.Value); diff != "" {
		t.Fatalf("re-validation changed the value (-first +second):\n%s", diff)
	}
}
