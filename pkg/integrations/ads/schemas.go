// Package ads declares the campaign manager payload shapes and the default
// campaign-type definition table.
package ads

import "github.com/goliatone/go-uispec/pkg/schema"

// Statuses a campaign can be in.
var Statuses = []string{"draft", "active", "paused", "archived"}

// CampaignType bundles the platform objective and default call to action for
// one campaign type.
type CampaignType struct {
	Objective  string
	DefaultCta string
}

// CampaignTypes is the default campaign-type definition table; its keys form
// the closed set accepted by CampaignSettings.campaignType.
var CampaignTypes = map[string]CampaignType{
	"conversion": {Objective: "OUTCOME_SALES", DefaultCta: "SHOP_NOW"},
	"traffic":    {Objective: "OUTCOME_TRAFFIC", DefaultCta: "LEARN_MORE"},
	"awareness":  {Objective: "OUTCOME_AWARENESS", DefaultCta: "LEARN_MORE"},
	"leads":      {Objective: "OUTCOME_LEADS", DefaultCta: "SIGN_UP"},
}

// TypeNames lists the campaign-type keys in presentation order.
var TypeNames = []string{"conversion", "traffic", "awareness", "leads"}

// Register installs the campaign definitions into the registry.
func Register(reg *schema.Registry) {
	reg.MustRegister(schema.Definition{
		Name:  "CampaignSettings",
		Title: "Campaign settings",
		Kind:  schema.KindObject,
		Fields: []schema.Field{
			{Name: "name", Kind: schema.KindString, Required: true},
			{Name: "campaignType", Kind: schema.KindEnum, Required: true, Enum: TypeNames},
			{Name: "dailyBudgetCents", Kind: schema.KindInteger, Required: true, Min: schema.Num(100)},
			{Name: "lifetimeBudgetCents", Kind: schema.KindInteger, Min: schema.Num(100)},
			{Name: "status", Kind: schema.KindEnum, Enum: Statuses, Default: "draft"},
			{Name: "startDate", Kind: schema.KindDateTime},
			{Name: "endDate", Kind: schema.KindDateTime},
		},
	})
}
