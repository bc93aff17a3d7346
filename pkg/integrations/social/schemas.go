// Package social declares the publishing-queue payload shapes: per-post
// performance records and queue settings.
package social

import "github.com/goliatone/go-uispec/pkg/schema"

// Platforms a post can be published to.
var Platforms = []string{"youtube", "tiktok", "instagram", "facebook"}

// Register installs the social payload definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:  "PostPerformance",
		Title: "Post performance",
		Kind:  schema.KindObject,
		Fields: []schema.Field{
			{Name: "postId", Kind: schema.KindString, Required: true},
			{Name: "platform", Kind: schema.KindEnum, Required: true, Enum: Platforms},
			{Name: "publishedAt", Kind: schema.KindDateTime, Required: true},
			{Name: "impressions", Kind: schema.KindInteger, Required: true, Min: schema.Num(0)},
			{Name: "likes", Kind: schema.KindInteger, Required: true, Min: schema.Num(0)},
			{Name: "comments", Kind: schema.KindInteger, Required: true, Min: schema.Num(0)},
			{Name: "shares", Kind: schema.KindInteger, Required: true, Min: schema.Num(0)},
			{Name: "engagementRate", Kind: schema.KindNumber, Required: true, Min: schema.Num(0), Max: schema.Num(1)},
			{Name: "clickThroughRate", Kind: schema.KindNumber, Min: schema.Num(0), Max: schema.Num(1)},
			{Name: "permalink", Kind: schema.KindString, Format: schema.FormatURL},
		},
	})

	reg.MustRegister(schema.Definition{
		Name: "PublishQueueSettings",
		Kind: schema.KindObject,
		Fields: []schema.Field{
			{Name: "maxPerDay", Kind: schema.KindInteger, Default: 10, Min: schema.Num(1), Max: schema.Num(100)},
			{Name: "minGapMinutes", Kind: schema.KindInteger, Default: 90, Min: schema.Num(0)},
			{Name: "autoRequeueFailed", Kind: schema.KindBoolean, Default: true},
		},
	})
}
