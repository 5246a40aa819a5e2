// Package imaging turns image files into base64 payloads ready for data-URI
// embedding, capping oversized inputs by downscaling and re-encoding.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"
	"mime"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/rs/zerolog/log"
)

// ErrNotFound marks a missing image file. Fatal for the cover image,
// recoverable (placeholder glyph) for the logo.
var ErrNotFound = errors.New("image file not found")

// Default size caps in kilobytes, matching the generation call sites.
const (
	CoverMaxKB = 400
	LogoMaxKB  = 150
)

// jpegQuality is used when an oversized image is re-encoded.
const jpegQuality = 95

// Payload is an encoded image ready for embedding: cleaned base64 data plus
// its MIME type label.
type Payload struct {
	Base64 string
	MIME   string
}

// DataURI renders the payload as an xlink:href value.
func (p *Payload) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", p.MIME, p.Base64)
}

// Load reads an image file and encodes it, downscaling first when the file
// exceeds maxKB kilobytes.
func Load(path string, maxKB int) (*Payload, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	return Encode(data, MIMEForPath(path), maxKB)
}

// Encode builds a payload from raw image bytes. Inputs above the cap are
// decoded, scaled down to roughly maxKB at 24 bits per pixel, flattened onto
// black, and re-encoded as JPEG; when decoding fails the original bytes are
// kept as-is rather than failing the call.
func Encode(data []byte, mimeType string, maxKB int) (*Payload, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	if maxKB > 0 && len(data) > maxKB*1024 {
		if scaled, err := downscale(data, maxKB); err == nil {
			log.Debug().
				Int("originalKB", len(data)/1024).
				Int("scaledKB", len(scaled)/1024).
				Msg("downscaled oversized image")
			data = scaled
			mimeType = "image/jpeg"
		} else {
			log.Warn().Err(err).Msg("could not downscale oversized image, embedding original")
		}
	}

	encoded := cleanBase64(base64.StdEncoding.EncodeToString(data))
	if encoded == "" {
		return nil, fmt.Errorf("image payload could not be produced")
	}
	return &Payload{Base64: encoded, MIME: mimeType}, nil
}

// downscale resizes an image so its uncompressed size approximates the
// kilobyte cap, then re-encodes it as JPEG.
func downscale(data []byte, maxKB int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	targetPixels := maxKB * 1024 * 8 / 24
	if current := width * height; current > targetPixels {
		ratio := math.Sqrt(float64(targetPixels) / float64(current))
		width = int(float64(width) * ratio)
		height = int(float64(height) * ratio)
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}
	}

	// Flatten any alpha onto a black background while scaling.
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("re-encode: %w", err)
	}
	return buf.Bytes(), nil
}

// cleanBase64 strips whitespace and reserved markup characters from an
// encoded payload before it is embedded in a data URI.
func cleanBase64(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '&', '<', '>', '"', '\'':
			return -1
		}
		return r
	}, s)
}

// MIMEForPath guesses a MIME type from the file extension, with a fixed
// fallback table for extensions the platform registry may not know.
func MIMEForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t := mime.TypeByExtension(ext); t != "" && strings.HasPrefix(t, "image/") {
		return t
	}
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".svg":
		return "image/svg+xml"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".tiff", ".tif":
		return "image/tiff"
	default:
		return "image/jpeg"
	}
}

// probeExtensions is the order in which FindFile tries extensions for a path
// given without one.
var probeExtensions = []string{".png", ".jpg", ".jpeg", ".svg", ".webp", ".gif", ".bmp", ".tiff", ".tif"}

// FindFile resolves a user-supplied image path hint: expands ~, probes known
// extensions when the hint has none, and finally retries the bare filename in
// the working directory. Returns ErrNotFound when nothing matches.
func FindFile(hint string) (string, error) {
	if hint == "" {
		return "", fmt.Errorf("%w: empty path", ErrNotFound)
	}

	if strings.HasPrefix(hint, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			hint = filepath.Join(home, strings.TrimPrefix(hint, "~"))
		}
	}

	if fileExists(hint) {
		return filepath.Abs(hint)
	}

	if filepath.Ext(hint) == "" {
		for _, ext := range probeExtensions {
			if candidate := hint + ext; fileExists(candidate) {
				return filepath.Abs(candidate)
			}
		}
	}

	if base := filepath.Base(hint); base != hint && fileExists(base) {
		return filepath.Abs(base)
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, hint)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
