package cover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mucteba/podcover/pkg/cover"
	"github.com/mucteba/podcover/pkg/svg"
)

func TestFallbackOmitsFragileParts(t *testing.T) {
	req := &cover.Request{
		Title:    "Deep Work",
		Subtitle: "a closer look",
		Episode:  "42",
		Image:    testPayload(),
		Logo:     testPayload(),
	}

	data, err := svg.Marshal(cover.Fallback(req, nil))
	require.NoError(t, err)
	markup := string(data)

	// No embedded images, no episode slot, no filters: the degraded cover
	// must not depend on anything that can fail.
	assert.NotContains(t, markup, "data:image")
	assert.NotContains(t, markup, "۴۲")
	assert.NotContains(t, markup, "<filter")

	// Text still renders.
	assert.Contains(t, markup, "Deep Work")
	assert.Contains(t, markup, "a closer look")
	assert.Contains(t, markup, cover.DefaultWebsite)

	// Placeholder glyph stands in for the logo even when one was supplied.
	assert.Contains(t, markup, "M-15,-15 L25,0 L-15,15 Z")
}

func TestFallbackTruncatesSubtitle(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "abcd "
	}

	data, err := svg.Marshal(cover.Fallback(&cover.Request{Title: "t", Subtitle: long}, nil))
	require.NoError(t, err)

	assert.NotContains(t, string(data), long[:120])
}

func TestFallbackUsesThemeWebsite(t *testing.T) {
	theme := cover.DefaultTheme()
	theme.Website = "override.example"

	data, err := svg.Marshal(cover.Fallback(&cover.Request{Title: "t"}, theme))
	require.NoError(t, err)
	assert.Contains(t, string(data), "override.example")
}

func TestFallbackWorksWithoutImage(t *testing.T) {
	// The fallback never touches the payload, so an empty request renders.
	data, err := svg.Marshal(cover.Fallback(&cover.Request{Title: "t"}, nil))
	require.NoError(t, err)
	assert.Contains(t, string(data), "bgGradient")
}
