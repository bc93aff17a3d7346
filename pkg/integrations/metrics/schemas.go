// Package metrics declares the payload shapes the analytics polling service
// exchanges with the dashboard: account settings, metric snapshots and
// dashboard queries. Integration payloads are deliberately non-strict so a
// newer producer can add fields without breaking older consumers.
package metrics

import "github.com/goliatone/go-uispec/pkg/schema"

var (
	Platforms     = []string{"youtube", "tiktok", "instagram", "facebook"}
	Ranges        = []string{"24h", "7d", "30d", "90d", "custom"}
	Granularities = []string{"hour", "day", "week"}
)

// Register installs the metrics payload definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:  "MetricsSettings",
		Title: "Metrics polling settings",
		Kind:  schema.KindObject,
		Fields: []schema.Field{
			{Name: "accountId", Kind: schema.KindString, Required: true},
			{Name: "pollIntervalMinutes", Kind: schema.KindInteger, Default: 60, Min: schema.Num(5), Max: schema.Num(1440)},
			{Name: "timezone", Kind: schema.KindString, Default: "UTC"},
			{Name: "platforms", Kind: schema.KindArray, Elem: &schema.Field{Kind: schema.KindEnum, Enum: Platforms}},
			{Name: "backfillDays", Kind: schema.KindInteger, Default: 30, Min: schema.Num(0), Max: schema.Num(365)},
		},
	})

	reg.MustRegister(schema.Definition{
		Name: "MetricSnapshot",
		Kind: schema.KindObject,
		Fields: []schema.Field{
			{Name: "capturedAt", Kind: schema.KindDateTime, Required: true},
			{Name: "followers", Kind: schema.KindInteger, Min: schema.Num(0)},
			{Name: "views", Kind: schema.KindInteger, Min: schema.Num(0)},
			{Name: "engagementRate", Kind: schema.KindNumber, Min: schema.Num(0), Max: schema.Num(1)},
		},
	})

	reg.MustRegister(schema.Definition{
		Name: "DashboardQuery",
		Kind: schema.KindObject,
		Fields: []schema.Field{
			{Name: "range", Kind: schema.KindEnum, Enum: Ranges, Default: "7d"},
			// from/to ordering is not cross-validated.
			{Name: "from", Kind: schema.KindDateTime},
			{Name: "to", Kind: schema.KindDateTime},
			{Name: "granularity", Kind: schema.KindEnum, Enum: Granularities, Default: "day"},
		},
	})
}
