package tokens

import (
	"fmt"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeName identifies the design-system theme exposed through go-theme.
const ThemeName = "uispec"

// Manifests builds one go-theme manifest per color mode, flattening the token
// tables into the manifest's Tokens map ("color.primary", "font.size.md",
// "spacing.lg", "radius.sm"). Renderer stacks that already consume go-theme
// pick the design system up without a custom integration.
func Manifests() map[string]*theme.Manifest {
	out := make(map[string]*theme.Manifest, len(Modes))
	for _, mode := range Modes {
		out[mode] = &theme.Manifest{
			Name:    ThemeName,
			Version: "1.0.0",
			Tokens:  flatTokens(mode),
		}
	}
	return out
}

func flatTokens(mode string) map[string]string {
	palette := Colors[mode]
	tokens := map[string]string{
		"color.primary":        palette.Primary,
		"color.secondary":      palette.Secondary,
		"color.accent":         palette.Accent,
		"color.success":        palette.Success,
		"color.warning":        palette.Warning,
		"color.error":          palette.Error,
		"color.info":           palette.Info,
		"color.background":     palette.Background,
		"color.surface":        palette.Surface,
		"color.text.primary":   palette.TextPrimary,
		"color.text.secondary": palette.TextSecondary,
		"color.text.muted":     palette.TextMuted,
	}
	for token, px := range FontSizes {
		tokens["font.size."+token] = strconv.Itoa(px)
	}
	for token, px := range Spacing {
		tokens["spacing."+token] = strconv.Itoa(px)
	}
	for token, px := range Radii {
		tokens["radius."+token] = strconv.Itoa(px)
	}
	return tokens
}

// Selector resolves theme selections against the built-in manifests. The
// variant selects the color mode; an empty variant falls back to light.
type Selector struct{}

var _ theme.ThemeSelector = Selector{}

// Select implements theme.ThemeSelector.
func (Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name != "" && name != ThemeName {
		return nil, fmt.Errorf("uispec tokens: unknown theme %q", name)
	}
	mode := strings.TrimSpace(variant)
	if mode == "" {
		mode = "light"
	}
	manifest, ok := Manifests()[mode]
	if !ok {
		return nil, fmt.Errorf("uispec tokens: unknown variant %q (expected one of %s)", variant, strings.Join(Modes, ", "))
	}
	return &theme.Selection{
		Theme:    ThemeName,
		Variant:  mode,
		Manifest: manifest,
	}, nil
}
