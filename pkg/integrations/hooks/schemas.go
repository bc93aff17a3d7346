// Package hooks declares the webhook receiver settings shape.
package hooks

import "github.com/goliatone/go-uispec/pkg/schema"

// Events a webhook subscription can listen for.
var Events = []string{
	"post.published",
	"post.failed",
	"render.complete",
	"render.failed",
	"campaign.budget.exhausted",
}

// Register installs the webhook definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:  "WebhookSettings",
		Title: "Webhook settings",
		Kind:  schema.KindObject,
		Fields: []schema.Field{
			{Name: "url", Kind: schema.KindString, Required: true, Format: schema.FormatURL},
			{Name: "secret", Kind: schema.KindString, MinLength: schema.Len(16)},
			{Name: "events", Kind: schema.KindArray, Required: true, Elem: &schema.Field{Kind: schema.KindEnum, Enum: Events}},
			{Name: "active", Kind: schema.KindBoolean, Default: true},
			{Name: "maxRetries", Kind: schema.KindInteger, Default: 5, Min: schema.Num(0), Max: schema.Num(10)},
		},
	})
}
