// convert.go — Optional SVG-to-PNG conversion via an external rasterizer.
package generator

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// ErrNoConverter is returned when no supported rasterizer is installed.
var ErrNoConverter = errors.New("no svg rasterizer found (tried rsvg-convert, inkscape, cairosvg)")

// converters lists the supported rasterizers in preference order, each with a
// function building its argument list.
var converters = []struct {
	name string
	args func(svgPath, pngPath string) []string
}{
	{"rsvg-convert", func(svgPath, pngPath string) []string {
		return []string{"-o", pngPath, svgPath}
	}},
	{"inkscape", func(svgPath, pngPath string) []string {
		return []string{svgPath, "--export-type=png", "--export-filename=" + pngPath}
	}},
	{"cairosvg", func(svgPath, pngPath string) []string {
		return []string{svgPath, "-o", pngPath}
	}},
}

// HasConverter reports whether any supported rasterizer is on PATH.
func HasConverter() bool {
	for _, c := range converters {
		if _, err := exec.LookPath(c.name); err == nil {
			return true
		}
	}
	return false
}

// ToPNG rasterizes an SVG file using the first converter found on PATH.
func ToPNG(svgPath, pngPath string) error {
	for _, c := range converters {
		bin, err := exec.LookPath(c.name)
		if err != nil {
			continue
		}

		cmd := exec.Command(bin, c.args(svgPath, pngPath)...)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%s: %w: %s", c.name, err, out)
		}
		log.Debug().Str("converter", c.name).Str("output", pngPath).Msg("rasterized cover")
		return nil
	}
	return ErrNoConverter
}
