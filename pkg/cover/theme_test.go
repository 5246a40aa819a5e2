package cover_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mucteba/podcover/pkg/cover"
)

func TestDefaultTheme(t *testing.T) {
	theme := cover.DefaultTheme()
	assert.Equal(t, "#846aff", theme.Palette.Tertiary)
	assert.Equal(t, cover.DefaultWebsite, theme.Website)
	assert.Contains(t, theme.LatinFonts, "Helvetica")
	assert.Contains(t, theme.RTLFonts, "Vazirmatn")
}

func TestWebsiteLabel(t *testing.T) {
	theme := cover.DefaultTheme()

	// Explicit request value wins over everything.
	assert.Equal(t, "example.com", theme.WebsiteLabel("example.com"))

	// Empty request value falls through to the theme.
	theme.Website = "override.example"
	assert.Equal(t, "override.example", theme.WebsiteLabel(""))
	assert.Equal(t, "override.example", theme.WebsiteLabel("   "))

	// A theme without a website keeps the built-in default.
	theme.Website = ""
	assert.Equal(t, cover.DefaultWebsite, theme.WebsiteLabel(""))
}

func TestFontStack(t *testing.T) {
	theme := cover.DefaultTheme()
	assert.Equal(t, theme.LatinFonts, theme.FontStack(false))
	assert.Equal(t, theme.RTLFonts, theme.FontStack(true))
}

func TestLoadThemeMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
website = "example.com"

[palette]
tertiary = "#ff0000"
`), 0o644))

	theme, err := cover.LoadTheme(path)
	require.NoError(t, err)

	// Overridden fields.
	assert.Equal(t, "example.com", theme.Website)
	assert.Equal(t, "#ff0000", theme.Palette.Tertiary)

	// Untouched fields keep their defaults.
	defaults := cover.DefaultTheme()
	assert.Equal(t, defaults.Palette.Secondary, theme.Palette.Secondary)
	assert.Equal(t, defaults.LatinFonts, theme.LatinFonts)
}

func TestLoadThemeErrors(t *testing.T) {
	_, err := cover.LoadTheme(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("not [valid"), 0o644))
	_, err = cover.LoadTheme(bad)
	assert.Error(t, err)
}
