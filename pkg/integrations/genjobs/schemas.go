// Package genjobs declares the video render queue payload shapes.
package genjobs

import "github.com/goliatone/go-uispec/pkg/schema"

var (
	Models       = []string{"sora", "veo3", "nano-banana"}
	AspectRatios = []string{"16:9", "9:16", "1:1"}
	Resolutions  = []string{"720p", "1080p", "4k"}
)

// Statuses a render job moves through; exported as reference data for badge
// rendering, not validated here.
var Statuses = []string{"queued", "generating", "polling", "downloading", "complete", "failed"}

// Register installs the render-job definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:  "RenderJobSettings",
		Title: "Render job settings",
		Kind:  schema.KindObject,
		Fields: []schema.Field{
			{Name: "model", Kind: schema.KindEnum, Required: true, Enum: Models},
			{Name: "aspectRatio", Kind: schema.KindEnum, Enum: AspectRatios, Default: "16:9"},
			// min/max duration ordering is not cross-validated.
			{Name: "minDurationSec", Kind: schema.KindInteger, Default: 4, Min: schema.Num(1), Max: schema.Num(60)},
			{Name: "maxDurationSec", Kind: schema.KindInteger, Default: 12, Min: schema.Num(1), Max: schema.Num(60)},
			{Name: "resolution", Kind: schema.KindEnum, Enum: Resolutions, Default: "1080p"},
			{Name: "maxAttempts", Kind: schema.KindInteger, Default: 3, Min: schema.Num(1), Max: schema.Num(10)},
		},
	})
}
