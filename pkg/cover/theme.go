// theme.go — Brand palette, font stacks, and optional TOML overrides.
package cover

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultWebsite is the label rendered in the bottom bar when none is given.
const DefaultWebsite = "mucteba.ir"

// Palette holds the brand colors referenced by the composer. Values are hex
// strings as they appear in the markup, including 8-digit alpha variants.
type Palette struct {
	Light      string `toml:"light"`
	LightGray  string `toml:"lightgray"`
	Gray       string `toml:"gray"`
	DarkGray   string `toml:"darkgray"`
	Dark       string `toml:"dark"`
	Secondary  string `toml:"secondary"`
	Tertiary   string `toml:"tertiary"`
	AccentDark string `toml:"accent_dark"`
}

// Theme bundles the palette with font stacks and the default website label.
type Theme struct {
	Palette Palette `toml:"palette"`
	// LatinFonts renders left-to-right text; RTLFonts replaces it for the
	// whole text block when any Persian/Arabic character is present.
	LatinFonts string `toml:"latin_fonts"`
	RTLFonts   string `toml:"rtl_fonts"`
	Website    string `toml:"website"`
}

// DefaultTheme returns the built-in brand theme.
func DefaultTheme() *Theme {
	return &Theme{
		Palette: Palette{
			Light:      "#100f0f",
			LightGray:  "#1a1918",
			Gray:       "#9f9898",
			DarkGray:   "#e8e6e3",
			Dark:       "#f8f7f5",
			Secondary:  "#a68adf",
			Tertiary:   "#846aff",
			AccentDark: "#5a4d8c",
		},
		LatinFonts: "Helvetica Neue, Helvetica, Arial, sans-serif",
		RTLFonts:   "Vazirmatn, Arial, sans-serif",
		Website:    DefaultWebsite,
	}
}

// LoadTheme reads a TOML theme file and merges it over the defaults: empty
// fields keep their built-in values, so a theme file only needs to name what
// it changes.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}

	var overrides Theme
	if err := toml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}

	theme := DefaultTheme()
	mergeTheme(theme, &overrides)
	return theme, nil
}

// mergeTheme copies non-empty override fields onto base.
func mergeTheme(base, overrides *Theme) {
	merge := func(dst *string, src string) {
		if strings.TrimSpace(src) != "" {
			*dst = src
		}
	}

	merge(&base.Palette.Light, overrides.Palette.Light)
	merge(&base.Palette.LightGray, overrides.Palette.LightGray)
	merge(&base.Palette.Gray, overrides.Palette.Gray)
	merge(&base.Palette.DarkGray, overrides.Palette.DarkGray)
	merge(&base.Palette.Dark, overrides.Palette.Dark)
	merge(&base.Palette.Secondary, overrides.Palette.Secondary)
	merge(&base.Palette.Tertiary, overrides.Palette.Tertiary)
	merge(&base.Palette.AccentDark, overrides.Palette.AccentDark)
	merge(&base.LatinFonts, overrides.LatinFonts)
	merge(&base.RTLFonts, overrides.RTLFonts)
	merge(&base.Website, overrides.Website)
}

// FontStack returns the font family list for the given direction flag.
func (t *Theme) FontStack(rtl bool) string {
	if rtl {
		return t.RTLFonts
	}
	return t.LatinFonts
}

// WebsiteLabel resolves the bottom bar label: an explicit request value wins,
// then the theme's website, then the built-in default.
func (t *Theme) WebsiteLabel(explicit string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	if strings.TrimSpace(t.Website) != "" {
		return t.Website
	}
	return DefaultWebsite
}
