// Package uispec is the design-system specification package for the product
// suite: declarative schema definitions for UI component props and
// product-integration payloads, a validate-with-defaults engine, and the
// design-token constant tables. The package owns no rendering, no I/O and no
// state; every validation call is pure and independent.
package uispec

import (
	"sync"

	"github.com/goliatone/go-uispec/pkg/components/card"
	"github.com/goliatone/go-uispec/pkg/components/chart"
	"github.com/goliatone/go-uispec/pkg/components/controls"
	"github.com/goliatone/go-uispec/pkg/components/display"
	"github.com/goliatone/go-uispec/pkg/components/form"
	"github.com/goliatone/go-uispec/pkg/components/loading"
	"github.com/goliatone/go-uispec/pkg/components/modal"
	"github.com/goliatone/go-uispec/pkg/components/navigation"
	"github.com/goliatone/go-uispec/pkg/components/table"
	"github.com/goliatone/go-uispec/pkg/components/toast"
	"github.com/goliatone/go-uispec/pkg/integrations/ads"
	"github.com/goliatone/go-uispec/pkg/integrations/dash"
	"github.com/goliatone/go-uispec/pkg/integrations/genjobs"
	"github.com/goliatone/go-uispec/pkg/integrations/hooks"
	"github.com/goliatone/go-uispec/pkg/integrations/metrics"
	"github.com/goliatone/go-uispec/pkg/integrations/social"
	"github.com/goliatone/go-uispec/pkg/schema"
	"github.com/goliatone/go-uispec/pkg/validate"
)

// Result aliases validate.Result for callers that only import the root
// package.
type Result = validate.Result

// Issue aliases validate.Issue.
type Issue = validate.Issue

// IssueKind aliases validate.IssueKind.
type IssueKind = validate.IssueKind

// Issue kinds re-exported for callers that only import the root package.
const (
	IssueMissingRequired   = validate.IssueMissingRequired
	IssueUnrecognizedField = validate.IssueUnrecognizedField
	IssueTypeMismatch      = validate.IssueTypeMismatch
	IssueEnumViolation     = validate.IssueEnumViolation
	IssueRangeViolation    = validate.IssueRangeViolation
	IssuePatternViolation  = validate.IssuePatternViolation
	IssueUnknownVariant    = validate.IssueUnknownVariant
	IssueNestedFailure     = validate.IssueNestedFailure
)

var (
	registryOnce sync.Once
	registry     *schema.Registry
)

// DefaultRegistry returns the shared registry with every component and
// integration definition registered and resolved. The registry is built once
// and read-only afterwards, so it is safe to share across goroutines.
func DefaultRegistry() *schema.Registry {
	registryOnce.Do(func() {
		reg := schema.NewRegistry()
		chart.Register(reg)
		form.Register(reg)
		table.Register(reg)
		toast.Register(reg)
		navigation.Register(reg)
		loading.Register(reg)
		card.Register(reg)
		modal.Register(reg)
		controls.Register(reg)
		display.Register(reg)
		metrics.Register(reg)
		social.Register(reg)
		genjobs.Register(reg)
		ads.Register(reg)
		hooks.Register(reg)
		dash.Register(reg)
		reg.MustResolve()
		registry = reg
	})
	return registry
}

// Validate checks input against the named definition from the default
// registry. See validate.Validate for the contract.
func Validate(name string, input any) (Result, error) {
	return validate.Validate(DefaultRegistry(), name, input)
}

// Definitions lists the definition names available in the default registry.
func Definitions() []string {
	return DefaultRegistry().Names()
}
