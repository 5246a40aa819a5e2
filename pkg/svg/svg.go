// Package svg models a vector document as a typed tree of drawable
// primitives. Composition code builds the tree; encode.go serializes it to
// SVG markup and validate.go checks emitted documents structurally.
//
// The model is deliberately closed: it covers exactly the primitives a cover
// document needs (rects, circles, lines, paths, text, embedded images,
// gradients, filters, clip paths) rather than general SVG.
package svg

// Document is the root of a primitive tree with a fixed pixel canvas.
type Document struct {
	Width  int
	Height int
	Defs   []Def
	Nodes  []Node
}

// Node is a drawable element. Nodes render in slice order, so later nodes
// sit visually on top of earlier ones.
type Node interface {
	node()
}

// Def is a reusable definition placed in the document's <defs> block.
type Def interface {
	def()
}

// Group nests child nodes under a shared transform.
type Group struct {
	Transform string
	Nodes     []Node
}

// Rect is an axis-aligned rectangle, optionally rounded and filtered.
type Rect struct {
	X, Y          float64
	Width, Height float64
	RX            float64
	Fill          string // empty means no fill attribute; "none" renders as none
	Stroke        string
	StrokeWidth   float64
	Opacity       float64 // emitted when > 0
	Filter        string  // filter reference, e.g. "url(#imageShadow)"
}

// Circle is a circle centered at (CX, CY).
type Circle struct {
	CX, CY, R   float64
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
}

// Line is a straight stroke between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64
	StrokeOpacity  float64
}

// Path is a filled path described by SVG path data.
type Path struct {
	D       string
	Fill    string
	Opacity float64
}

// Text is a single line of positioned text. Content is raw; the serializer
// escapes it for markup.
type Text struct {
	X, Y             float64
	Content          string
	Anchor           string // "start", "middle", "end"
	FontFamily       string
	FontSize         float64
	FontWeight       string
	Fill             string
	Direction        string // "rtl" for right-to-left scripts
	Opacity          float64
	LetterSpacing    float64
	DominantBaseline string
	Filter           string
}

// Image embeds a raster image, typically via a data URI.
type Image struct {
	X, Y                float64
	Width, Height       float64
	Href                string
	PreserveAspectRatio string
	ClipPath            string // clip reference, e.g. "url(#logoClip)"
	Opacity             float64
}

// ClipPath declares an inline circular clipping region. It lives inside the
// group it clips rather than in defs, and the serializer preserves that
// placement.
type ClipPath struct {
	ID     string
	Circle Circle
}

func (Group) node()    {}
func (Rect) node()     {}
func (Circle) node()   {}
func (Line) node()     {}
func (Path) node()     {}
func (Text) node()     {}
func (Image) node()    {}
func (ClipPath) node() {}

// ── Defs ──

// Stop is one color stop of a gradient.
type Stop struct {
	Offset string // e.g. "0%", "50%"
	Color  string
}

// LinearGradient defines a linear gradient. Coordinates are percent strings
// as in the source markup ("0%", "100%").
type LinearGradient struct {
	ID             string
	X1, Y1, X2, Y2 string
	Stops          []Stop
}

// Filter groups filter primitives under an id. The region fields are
// optional percent strings ("-20%", "140%").
type Filter struct {
	ID         string
	X, Y, W, H string
	Primitives []FilterPrimitive
}

// FilterPrimitive is one fe* element inside a filter.
type FilterPrimitive interface {
	filterPrimitive()
}

// FeDropShadow renders an offset, blurred shadow of the source graphic.
type FeDropShadow struct {
	DX, DY       float64
	StdDeviation float64
	FloodColor   string
	FloodOpacity float64
}

// FeFlood fills the filter region with a color.
type FeFlood struct {
	FloodColor   string
	FloodOpacity float64
	Result       string
}

// FeComposite combines two inputs with a Porter-Duff operator.
type FeComposite struct {
	In, In2  string
	Operator string
	Result   string
}

// FeGaussianBlur blurs its input.
type FeGaussianBlur struct {
	StdDeviation float64
	Result       string
}

// FeMerge stacks the named inputs in order.
type FeMerge struct {
	In []string
}

func (LinearGradient) def() {}
func (Filter) def()         {}

func (FeDropShadow) filterPrimitive()   {}
func (FeFlood) filterPrimitive()        {}
func (FeComposite) filterPrimitive()    {}
func (FeGaussianBlur) filterPrimitive() {}
func (FeMerge) filterPrimitive()        {}
