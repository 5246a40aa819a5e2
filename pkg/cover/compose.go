// compose.go — Document composer: assembles the full 1080×1920 cover as a
// typed primitive tree. Geometry constants are fixed design values carried
// over verbatim from the reference artwork; visual parity is the acceptance
// criterion, so none of them are derived.
package cover

import (
	"fmt"

	"github.com/mucteba/podcover/pkg/imaging"
	"github.com/mucteba/podcover/pkg/svg"
)

// Canvas dimensions (Instagram story aspect).
const (
	CanvasWidth  = 1080
	CanvasHeight = 1920
)

// Bottom bar slot anchors. The website slot sits at the exact horizontal
// canvas center in both layouts; the logo moves left when the episode slot
// joins on the right. All slots share the baseline at barBaselineY inside
// the bar group.
const (
	WebsiteSlotX    = CanvasWidth / 2
	LogoSlotTwoX    = 270
	LogoSlotThreeX  = 180
	EpisodeSlotX    = 900
	barHeight       = 200
	barBaselineY    = -100
	websiteFontSize = 36
	episodeFontSize = 78
)

// Image panel geometry, relative to the panel group origin.
const (
	panelCenterX    = 540
	panelCenterY    = 540
	panelHalf       = 400
	panelShadowHalf = 425
	panelFrameHalf  = 410
	panelInnerHalf  = 395
)

// Text block group origin.
const (
	textBlockX = 540
	textBlockY = 1250
)

// Compose builds the complete cover document for a validated request. The
// text layout engine supplies wrapped lines and the font plan; everything
// else is fixed-position assembly in back-to-front order.
func Compose(req *Request, theme *Theme) (*svg.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if theme == nil {
		theme = DefaultTheme()
	}

	titleLines := WrapTitle(req.Title)
	subtitleLines := WrapSubtitle(req.Subtitle)
	plan := SelectFontSizes(len(titleLines), len(subtitleLines))
	rtl := ContainsArabic(req.Title, req.Subtitle, theme.WebsiteLabel(req.Website))

	doc := &svg.Document{
		Width:  CanvasWidth,
		Height: CanvasHeight,
		Defs:   themeDefs(theme),
	}
	doc.Nodes = append(doc.Nodes,
		svg.Rect{Width: CanvasWidth, Height: CanvasHeight, Fill: "url(#bgGradient)"},
		imagePanel(req.Image, theme),
		textBlock(titleLines, subtitleLines, plan, rtl, theme),
		bottomBar(req, theme, rtl),
		// Safety margin marker; renders nothing but documents the title-safe
		// area.
		svg.Rect{X: 40, Y: 40, Width: 1000, Height: 1840, Fill: "none", Stroke: "none"},
	)
	return doc, nil
}

// themeDefs declares the gradients and filters every cover references.
func themeDefs(theme *Theme) []svg.Def {
	p := theme.Palette
	return []svg.Def{
		svg.LinearGradient{
			ID: "bgGradient", X1: "0%", Y1: "0%", X2: "0%", Y2: "100%",
			Stops: []svg.Stop{
				{Offset: "0%", Color: "#0c0c0c"},
				{Offset: "100%", Color: p.Light},
			},
		},
		svg.LinearGradient{
			ID: "purpleGradient", X1: "0%", Y1: "0%", X2: "100%", Y2: "100%",
			Stops: []svg.Stop{
				{Offset: "0%", Color: p.Tertiary},
				{Offset: "50%", Color: p.Secondary},
				{Offset: "100%", Color: p.AccentDark},
			},
		},
		svg.Filter{
			ID: "imageShadow",
			Primitives: []svg.FilterPrimitive{
				svg.FeDropShadow{DY: 20, StdDeviation: 25, FloodColor: "#000000", FloodOpacity: 0.4},
			},
		},
		svg.Filter{
			ID: "innerGlow",
			Primitives: []svg.FilterPrimitive{
				svg.FeFlood{FloodColor: p.Secondary, FloodOpacity: 0.1, Result: "glow"},
				svg.FeComposite{In: "glow", In2: "SourceAlpha", Operator: "in", Result: "glow"},
				svg.FeGaussianBlur{StdDeviation: 10, Result: "blurredGlow"},
				svg.FeMerge{In: []string{"blurredGlow", "SourceGraphic"}},
			},
		},
		svg.Filter{
			ID: "textGlow", X: "-20%", Y: "-20%", W: "140%", H: "140%",
			Primitives: []svg.FilterPrimitive{
				svg.FeDropShadow{DY: 2, StdDeviation: 3, FloodColor: "#000000", FloodOpacity: 0.3},
			},
		},
	}
}

// imagePanel builds the centered square cover panel with its layered border.
// Order matters: shadow, panel fills, image, borders, corner accents — later
// nodes must sit atop earlier ones.
func imagePanel(payload *imaging.Payload, theme *Theme) svg.Node {
	p := theme.Palette
	panel := svg.Group{Transform: translate(panelCenterX, panelCenterY)}

	panel.Nodes = append(panel.Nodes,
		svg.Rect{
			X: -panelShadowHalf, Y: -panelShadowHalf,
			Width: 2 * panelShadowHalf, Height: 2 * panelShadowHalf,
			RX: 12, Fill: "#000000", Opacity: 0.4, Filter: "url(#imageShadow)",
		},
		svg.Rect{
			X: -panelFrameHalf, Y: -panelFrameHalf,
			Width: 2 * panelFrameHalf, Height: 2 * panelFrameHalf,
			RX: 10, Fill: p.LightGray,
		},
		svg.Rect{
			X: -panelHalf, Y: -panelHalf,
			Width: 2 * panelHalf, Height: 2 * panelHalf,
			RX: 8, Fill: p.LightGray,
		},
		svg.Rect{
			X: -panelHalf, Y: -panelHalf,
			Width: 2 * panelHalf, Height: 2 * panelHalf,
			RX: 8, Fill: p.Secondary, Opacity: 0.05,
		},
		svg.Image{
			X: -panelHalf, Y: -panelHalf,
			Width: 2 * panelHalf, Height: 2 * panelHalf,
			Href:                payload.DataURI(),
			PreserveAspectRatio: "xMidYMid slice",
			Opacity:             0.95,
		},
		svg.Rect{
			X: -panelHalf, Y: -panelHalf,
			Width: 2 * panelHalf, Height: 2 * panelHalf,
			RX: 8, Fill: "none", Stroke: "url(#purpleGradient)", StrokeWidth: 6,
		},
		svg.Rect{
			X: -panelInnerHalf, Y: -panelInnerHalf,
			Width: 2 * panelInnerHalf, Height: 2 * panelInnerHalf,
			RX: 6, Fill: "none", Stroke: "#ffffff20", StrokeWidth: 2,
		},
	)
	for _, d := range cornerAccents() {
		panel.Nodes = append(panel.Nodes, svg.Path{D: d, Fill: "url(#purpleGradient)", Opacity: 0.7})
	}
	return panel
}

func cornerAccents() []string {
	return []string{
		"M-395,-395 L-370,-395 L-395,-370 Z",
		"M395,-395 L370,-395 L395,-370 Z",
		"M-395,395 L-370,395 L-395,370 Z",
		"M395,395 L370,395 L395,370 Z",
	}
}

// textBlock stacks title and subtitle lines at the offsets computed by the
// layout engine, center-anchored on the canvas axis.
func textBlock(titleLines, subtitleLines []string, plan FontPlan, rtl bool, theme *Theme) svg.Node {
	p := theme.Palette
	block := svg.Group{Transform: translate(textBlockX, textBlockY)}

	for i, line := range titleLines {
		block.Nodes = append(block.Nodes, directedText(svg.Text{
			Y:             plan.TitleLineY(i),
			Content:       line,
			Anchor:        "middle",
			FontSize:      float64(plan.TitleSize),
			FontWeight:    "700",
			Fill:          p.Dark,
			Opacity:       0.98,
			Filter:        "url(#textGlow)",
			LetterSpacing: 0.5,
		}, rtl, theme))
	}
	for i, line := range subtitleLines {
		block.Nodes = append(block.Nodes, directedText(svg.Text{
			Y:             plan.SubtitleLineY(len(titleLines), i),
			Content:       line,
			Anchor:        "middle",
			FontSize:      float64(plan.SubtitleSize),
			FontWeight:    "400",
			Fill:          p.DarkGray,
			Opacity:       0.9,
			LetterSpacing: 0.3,
		}, rtl, theme))
	}
	return block
}

// directedText applies the all-or-nothing script direction to a text node.
func directedText(t svg.Text, rtl bool, theme *Theme) svg.Text {
	t.FontFamily = theme.FontStack(rtl)
	if rtl {
		t.Direction = "rtl"
	}
	return t
}

// bottomBar assembles the logo/website/episode strip. Whatever the slot
// count, the website stays at the canvas center and every slot anchors on
// the shared baseline.
func bottomBar(req *Request, theme *Theme, rtl bool) svg.Node {
	bar := svg.Group{Transform: "translate(0, 1920)"}
	bar.Nodes = append(bar.Nodes,
		svg.Rect{Y: -barHeight, Width: CanvasWidth, Height: barHeight, Fill: "#00000010"},
		svg.Line{X2: CanvasWidth, Y1: -barHeight, Y2: -barHeight, Stroke: "url(#purpleGradient)", StrokeWidth: 2, StrokeOpacity: 0.4},
	)

	website := theme.WebsiteLabel(req.Website)
	if req.HasEpisode() {
		bar.Nodes = append(bar.Nodes,
			logoSlot(LogoSlotThreeX, req.Logo, theme),
			websiteSlot(website, theme, rtl, true),
			episodeSlot(LocalizeDigits(req.Episode), theme, rtl),
		)
	} else {
		bar.Nodes = append(bar.Nodes,
			logoSlot(LogoSlotTwoX, req.Logo, theme),
			websiteSlot(website, theme, rtl, false),
		)
	}
	return bar
}

// logoSlot renders the circular logo medallion at the given anchor. When no
// logo payload is present a play-triangle glyph substitutes for the image;
// the surrounding geometry is identical either way.
func logoSlot(anchorX float64, logo *imaging.Payload, theme *Theme) svg.Node {
	p := theme.Palette
	slot := svg.Group{Transform: translate(anchorX, barBaselineY)}

	slot.Nodes = append(slot.Nodes,
		svg.Circle{R: 65, Fill: p.Secondary, Opacity: 0.15},
		svg.Circle{R: 58, Fill: "url(#purpleGradient)"},
		svg.Circle{R: 54, Fill: p.Light, Stroke: "url(#purpleGradient)", StrokeWidth: 2},
		svg.ClipPath{ID: "logoClip", Circle: svg.Circle{R: 54}},
	)
	if logo != nil {
		slot.Nodes = append(slot.Nodes, svg.Image{
			X: -54, Y: -54, Width: 108, Height: 108,
			Href:                logo.DataURI(),
			PreserveAspectRatio: "xMidYMid slice",
			ClipPath:            "url(#logoClip)",
			Opacity:             0.95,
		})
	} else {
		slot.Nodes = append(slot.Nodes, PlaceholderGlyph(p))
	}
	slot.Nodes = append(slot.Nodes, svg.Circle{CX: -20, CY: -20, R: 25, Fill: "white", Opacity: 0.08})
	return slot
}

// PlaceholderGlyph is the built-in play-triangle shape used when no logo is
// available.
func PlaceholderGlyph(p Palette) svg.Node {
	return svg.Path{D: "M-15,-15 L25,0 L-15,15 Z", Fill: p.Dark, Opacity: 0.9}
}

// websiteSlot renders the centered URL. The three-slot variant adds flanking
// dots and a narrower gray underline; the two-slot variant underlines with
// the gradient.
func websiteSlot(label string, theme *Theme, rtl, threeSlot bool) svg.Node {
	p := theme.Palette
	slot := svg.Group{Transform: translate(WebsiteSlotX, barBaselineY)}

	if threeSlot {
		slot.Nodes = append(slot.Nodes,
			svg.Circle{CX: -120, R: 3, Fill: p.Secondary, Opacity: 0.6},
			svg.Circle{CX: 120, R: 3, Fill: p.Secondary, Opacity: 0.6},
		)
	}
	slot.Nodes = append(slot.Nodes, directedText(svg.Text{
		Content:          label,
		Anchor:           "middle",
		FontSize:         websiteFontSize,
		FontWeight:       "300",
		Fill:             p.DarkGray,
		Opacity:          0.9,
		LetterSpacing:    2,
		DominantBaseline: "middle",
	}, rtl, theme))
	if threeSlot {
		slot.Nodes = append(slot.Nodes,
			svg.Line{X1: -110, X2: 110, Y1: 20, Y2: 20, Stroke: p.Gray, StrokeWidth: 0.5, StrokeOpacity: 0.2})
	} else {
		slot.Nodes = append(slot.Nodes,
			svg.Line{X1: -120, X2: 120, Y1: 20, Y2: 20, Stroke: "url(#purpleGradient)", StrokeWidth: 1, StrokeOpacity: 0.3})
	}
	return slot
}

// episodeSlot renders the localized episode number, end-anchored so the
// digits hug the right margin, with a decorative leader line.
func episodeSlot(localized string, theme *Theme, rtl bool) svg.Node {
	slot := svg.Group{Transform: translate(EpisodeSlotX, barBaselineY)}
	slot.Nodes = append(slot.Nodes,
		directedText(svg.Text{
			Content:          localized,
			Anchor:           "end",
			FontSize:         episodeFontSize,
			FontWeight:       "900",
			Fill:             "url(#purpleGradient)",
			Opacity:          0.95,
			LetterSpacing:    1,
			DominantBaseline: "middle",
		}, rtl, theme),
		svg.Line{X1: -180, X2: -10, Stroke: "url(#purpleGradient)", StrokeWidth: 1, StrokeOpacity: 0.3},
	)
	return slot
}

// translate formats a group transform.
func translate(x, y float64) string {
	return fmt.Sprintf("translate(%g, %g)", x, y)
}
