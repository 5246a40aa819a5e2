// encode.go — Serialize a Document tree to SVG markup via etree.
//
// etree escapes all text content and attribute values on write, which covers
// the five reserved markup characters for every embedded string (title,
// subtitle, website label, episode number).
package svg

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// Marshal renders the document tree to indented SVG bytes.
func Marshal(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("marshal: nil document")
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("marshal: invalid canvas %dx%d", doc.Width, doc.Height)
	}

	d := etree.NewDocument()
	d.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="no"`)

	root := d.CreateElement("svg")
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	root.CreateAttr("xmlns:xlink", "http://www.w3.org/1999/xlink")
	root.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", doc.Width, doc.Height))
	root.CreateAttr("width", strconv.Itoa(doc.Width))
	root.CreateAttr("height", strconv.Itoa(doc.Height))

	if len(doc.Defs) > 0 {
		defs := root.CreateElement("defs")
		for _, def := range doc.Defs {
			appendDef(defs, def)
		}
	}
	for _, n := range doc.Nodes {
		appendNode(root, n)
	}

	d.Indent(2)
	return d.WriteToBytes()
}

func appendNode(parent *etree.Element, n Node) {
	switch v := n.(type) {
	case Group:
		el := parent.CreateElement("g")
		if v.Transform != "" {
			el.CreateAttr("transform", v.Transform)
		}
		for _, child := range v.Nodes {
			appendNode(el, child)
		}
	case Rect:
		el := parent.CreateElement("rect")
		el.CreateAttr("x", ftoa(v.X))
		el.CreateAttr("y", ftoa(v.Y))
		el.CreateAttr("width", ftoa(v.Width))
		el.CreateAttr("height", ftoa(v.Height))
		if v.RX > 0 {
			el.CreateAttr("rx", ftoa(v.RX))
		}
		if v.Fill != "" {
			el.CreateAttr("fill", v.Fill)
		}
		setStroke(el, v.Stroke, v.StrokeWidth)
		setOpacity(el, v.Opacity)
		if v.Filter != "" {
			el.CreateAttr("filter", v.Filter)
		}
	case Circle:
		el := parent.CreateElement("circle")
		el.CreateAttr("cx", ftoa(v.CX))
		el.CreateAttr("cy", ftoa(v.CY))
		el.CreateAttr("r", ftoa(v.R))
		if v.Fill != "" {
			el.CreateAttr("fill", v.Fill)
		}
		setStroke(el, v.Stroke, v.StrokeWidth)
		setOpacity(el, v.Opacity)
	case Line:
		el := parent.CreateElement("line")
		el.CreateAttr("x1", ftoa(v.X1))
		el.CreateAttr("x2", ftoa(v.X2))
		el.CreateAttr("y1", ftoa(v.Y1))
		el.CreateAttr("y2", ftoa(v.Y2))
		if v.Stroke != "" {
			el.CreateAttr("stroke", v.Stroke)
		}
		if v.StrokeWidth > 0 {
			el.CreateAttr("stroke-width", ftoa(v.StrokeWidth))
		}
		if v.StrokeOpacity > 0 {
			el.CreateAttr("stroke-opacity", ftoa(v.StrokeOpacity))
		}
	case Path:
		el := parent.CreateElement("path")
		el.CreateAttr("d", v.D)
		if v.Fill != "" {
			el.CreateAttr("fill", v.Fill)
		}
		setOpacity(el, v.Opacity)
	case Text:
		el := parent.CreateElement("text")
		el.CreateAttr("x", ftoa(v.X))
		el.CreateAttr("y", ftoa(v.Y))
		if v.Anchor != "" {
			el.CreateAttr("text-anchor", v.Anchor)
		}
		if v.FontFamily != "" {
			el.CreateAttr("font-family", v.FontFamily)
		}
		if v.FontSize > 0 {
			el.CreateAttr("font-size", ftoa(v.FontSize))
		}
		if v.FontWeight != "" {
			el.CreateAttr("font-weight", v.FontWeight)
		}
		if v.Fill != "" {
			el.CreateAttr("fill", v.Fill)
		}
		if v.Direction != "" {
			el.CreateAttr("direction", v.Direction)
		}
		setOpacity(el, v.Opacity)
		if v.Filter != "" {
			el.CreateAttr("filter", v.Filter)
		}
		if v.LetterSpacing > 0 {
			el.CreateAttr("letter-spacing", ftoa(v.LetterSpacing))
		}
		if v.DominantBaseline != "" {
			el.CreateAttr("dominant-baseline", v.DominantBaseline)
		}
		el.SetText(v.Content)
	case Image:
		el := parent.CreateElement("image")
		el.CreateAttr("x", ftoa(v.X))
		el.CreateAttr("y", ftoa(v.Y))
		el.CreateAttr("width", ftoa(v.Width))
		el.CreateAttr("height", ftoa(v.Height))
		el.CreateAttr("xlink:href", v.Href)
		if v.PreserveAspectRatio != "" {
			el.CreateAttr("preserveAspectRatio", v.PreserveAspectRatio)
		}
		if v.ClipPath != "" {
			el.CreateAttr("clip-path", v.ClipPath)
		}
		setOpacity(el, v.Opacity)
	case ClipPath:
		el := parent.CreateElement("clipPath")
		el.CreateAttr("id", v.ID)
		appendNode(el, v.Circle)
	}
}

func appendDef(defs *etree.Element, def Def) {
	switch v := def.(type) {
	case LinearGradient:
		el := defs.CreateElement("linearGradient")
		el.CreateAttr("id", v.ID)
		el.CreateAttr("x1", v.X1)
		el.CreateAttr("y1", v.Y1)
		el.CreateAttr("x2", v.X2)
		el.CreateAttr("y2", v.Y2)
		for _, stop := range v.Stops {
			s := el.CreateElement("stop")
			s.CreateAttr("offset", stop.Offset)
			s.CreateAttr("stop-color", stop.Color)
		}
	case Filter:
		el := defs.CreateElement("filter")
		el.CreateAttr("id", v.ID)
		if v.X != "" {
			el.CreateAttr("x", v.X)
			el.CreateAttr("y", v.Y)
			el.CreateAttr("width", v.W)
			el.CreateAttr("height", v.H)
		}
		for _, p := range v.Primitives {
			appendFilterPrimitive(el, p)
		}
	}
}

func appendFilterPrimitive(filter *etree.Element, p FilterPrimitive) {
	switch v := p.(type) {
	case FeDropShadow:
		el := filter.CreateElement("feDropShadow")
		el.CreateAttr("dx", ftoa(v.DX))
		el.CreateAttr("dy", ftoa(v.DY))
		el.CreateAttr("stdDeviation", ftoa(v.StdDeviation))
		el.CreateAttr("flood-color", v.FloodColor)
		el.CreateAttr("flood-opacity", ftoa(v.FloodOpacity))
	case FeFlood:
		el := filter.CreateElement("feFlood")
		el.CreateAttr("flood-color", v.FloodColor)
		el.CreateAttr("flood-opacity", ftoa(v.FloodOpacity))
		if v.Result != "" {
			el.CreateAttr("result", v.Result)
		}
	case FeComposite:
		el := filter.CreateElement("feComposite")
		el.CreateAttr("in", v.In)
		el.CreateAttr("in2", v.In2)
		el.CreateAttr("operator", v.Operator)
		if v.Result != "" {
			el.CreateAttr("result", v.Result)
		}
	case FeGaussianBlur:
		el := filter.CreateElement("feGaussianBlur")
		el.CreateAttr("stdDeviation", ftoa(v.StdDeviation))
		if v.Result != "" {
			el.CreateAttr("result", v.Result)
		}
	case FeMerge:
		el := filter.CreateElement("feMerge")
		for _, in := range v.In {
			node := el.CreateElement("feMergeNode")
			node.CreateAttr("in", in)
		}
	}
}

func setStroke(el *etree.Element, stroke string, width float64) {
	if stroke != "" {
		el.CreateAttr("stroke", stroke)
	}
	if width > 0 {
		el.CreateAttr("stroke-width", ftoa(width))
	}
}

func setOpacity(el *etree.Element, opacity float64) {
	if opacity > 0 {
		el.CreateAttr("opacity", ftoa(opacity))
	}
}

// ftoa formats a coordinate without trailing zeros ("-425", "0.4").
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
