package svg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mucteba/podcover/pkg/svg"
)

func minimalDoc() *svg.Document {
	return &svg.Document{
		Width:  1080,
		Height: 1920,
		Defs: []svg.Def{
			svg.LinearGradient{
				ID: "bg", X1: "0%", Y1: "0%", X2: "0%", Y2: "100%",
				Stops: []svg.Stop{
					{Offset: "0%", Color: "#000000"},
					{Offset: "100%", Color: "#100f0f"},
				},
			},
			svg.Filter{
				ID: "shadow",
				Primitives: []svg.FilterPrimitive{
					svg.FeDropShadow{DY: 2, StdDeviation: 3, FloodColor: "#000000", FloodOpacity: 0.3},
				},
			},
		},
		Nodes: []svg.Node{
			svg.Rect{Width: 1080, Height: 1920, Fill: "url(#bg)"},
			svg.Group{
				Transform: "translate(540, 960)",
				Nodes: []svg.Node{
					svg.Text{Content: "hello", Anchor: "middle", FontSize: 86},
				},
			},
		},
	}
}

func TestMarshal(t *testing.T) {
	data, err := svg.Marshal(minimalDoc())
	require.NoError(t, err)
	markup := string(data)

	assert.True(t, strings.HasPrefix(markup, "<?xml"))
	assert.Contains(t, markup, `viewBox="0 0 1080 1920"`)
	assert.Contains(t, markup, `xmlns="http://www.w3.org/2000/svg"`)
	assert.Contains(t, markup, "<defs>")
	assert.Contains(t, markup, `<linearGradient id="bg"`)
	assert.Contains(t, markup, `<filter id="shadow"`)
	assert.Contains(t, markup, `transform="translate(540, 960)"`)
	assert.Contains(t, markup, ">hello</text>")
}

func TestMarshalErrors(t *testing.T) {
	_, err := svg.Marshal(nil)
	assert.Error(t, err)

	_, err = svg.Marshal(&svg.Document{Width: 0, Height: 1920})
	assert.Error(t, err)
}

func TestMarshalOmitsZeroValuedOptionalAttrs(t *testing.T) {
	doc := &svg.Document{
		Width: 10, Height: 10,
		Defs: []svg.Def{
			svg.LinearGradient{ID: "bg"},
			svg.Filter{ID: "f"},
		},
		Nodes: []svg.Node{svg.Rect{Width: 10, Height: 10}},
	}
	data, err := svg.Marshal(doc)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "opacity")
	assert.NotContains(t, string(data), "rx=")
	assert.NotContains(t, string(data), "stroke")
}

func TestValidate(t *testing.T) {
	data, err := svg.Marshal(minimalDoc())
	require.NoError(t, err)
	assert.NoError(t, svg.Validate(data))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"no xml declaration", []byte(`<svg></svg>`)},
		{"not xml", []byte(`<?xml version="1.0"?><svg><unclosed</svg>`)},
		{"wrong root", []byte(`<?xml version="1.0"?><html></html>`)},
		{"missing defs", []byte(`<?xml version="1.0"?><svg></svg>`)},
		{"defs without filter", []byte(`<?xml version="1.0"?><svg><defs><linearGradient id="g"/></defs></svg>`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svg.Validate(tt.data)
			assert.ErrorIs(t, err, svg.ErrInvalidDocument)
		})
	}
}
