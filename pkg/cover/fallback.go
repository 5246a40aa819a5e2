// fallback.go — Minimal degraded cover used when the full document cannot be
// validated or written. It embeds no external images and references a single
// gradient, so it survives every failure mode the composer can hit.
package cover

import (
	"strings"

	"github.com/mucteba/podcover/pkg/svg"
)

// Fallback geometry. The panel placeholder and text offsets are fixed rather
// than derived from the layout engine; the degraded cover trades fidelity for
// having nothing left to fail.
const (
	fallbackPanelX     = 140
	fallbackPanelY     = 140
	fallbackPanelSize  = 800
	fallbackTitleY     = 1280
	fallbackTitleSize  = 86
	fallbackSubtitleY  = 1400
	fallbackSubSize    = 48
	fallbackSubMaxRune = 80
)

// Fallback builds the degraded cover: background, empty panel rectangle,
// wrapped title, one truncated subtitle line, and a two-slot bottom bar with
// the placeholder glyph standing in for the logo. The episode slot never
// appears here.
func Fallback(req *Request, theme *Theme) *svg.Document {
	if theme == nil {
		theme = DefaultTheme()
	}
	p := theme.Palette
	website := theme.WebsiteLabel(req.Website)
	rtl := ContainsArabic(req.Title, req.Subtitle, website)

	doc := &svg.Document{
		Width:  CanvasWidth,
		Height: CanvasHeight,
		Defs: []svg.Def{
			svg.LinearGradient{
				ID: "bgGradient", X1: "0%", Y1: "0%", X2: "0%", Y2: "100%",
				Stops: []svg.Stop{
					{Offset: "0%", Color: "#0c0c0c"},
					{Offset: "100%", Color: p.Light},
				},
			},
		},
	}

	doc.Nodes = append(doc.Nodes,
		svg.Rect{Width: CanvasWidth, Height: CanvasHeight, Fill: "url(#bgGradient)"},
		svg.Rect{
			X: fallbackPanelX, Y: fallbackPanelY,
			Width: fallbackPanelSize, Height: fallbackPanelSize,
			RX: 8, Fill: p.LightGray,
		},
	)

	for i, line := range WrapTitle(req.Title) {
		doc.Nodes = append(doc.Nodes, directedText(svg.Text{
			X:          CanvasWidth / 2,
			Y:          float64(fallbackTitleY + i*fallbackTitleSize),
			Content:    line,
			Anchor:     "middle",
			FontSize:   fallbackTitleSize,
			FontWeight: "700",
			Fill:       p.Dark,
		}, rtl, theme))
	}

	if subtitle := strings.TrimSpace(req.Subtitle); subtitle != "" {
		doc.Nodes = append(doc.Nodes, directedText(svg.Text{
			X:        CanvasWidth / 2,
			Y:        fallbackSubtitleY,
			Content:  truncateRunes(subtitle, fallbackSubMaxRune),
			Anchor:   "middle",
			FontSize: fallbackSubSize,
			Fill:     p.DarkGray,
		}, rtl, theme))
	}

	doc.Nodes = append(doc.Nodes, fallbackBar(website, theme, rtl))
	return doc
}

// fallbackBar is a self-contained two-slot bottom bar. It must not reference
// the gradient or filter defs of the full cover, which are absent here.
func fallbackBar(website string, theme *Theme, rtl bool) svg.Node {
	p := theme.Palette
	bar := svg.Group{Transform: translate(0, CanvasHeight)}
	bar.Nodes = append(bar.Nodes,
		svg.Rect{Y: -barHeight, Width: CanvasWidth, Height: barHeight, Fill: "#00000010"},
	)

	logo := svg.Group{Transform: translate(LogoSlotTwoX, barBaselineY)}
	logo.Nodes = append(logo.Nodes,
		svg.Circle{R: 58, Fill: p.Secondary},
		svg.Circle{R: 54, Fill: p.Light},
		PlaceholderGlyph(p),
	)

	site := svg.Group{Transform: translate(WebsiteSlotX, barBaselineY)}
	site.Nodes = append(site.Nodes, directedText(svg.Text{
		Content:          website,
		Anchor:           "middle",
		FontSize:         websiteFontSize,
		FontWeight:       "300",
		Fill:             p.DarkGray,
		DominantBaseline: "middle",
	}, rtl, theme))

	bar.Nodes = append(bar.Nodes, logo, site)
	return bar
}

// truncateRunes caps a string at n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
