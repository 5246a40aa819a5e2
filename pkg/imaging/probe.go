// probe.go — Cheap image inspection without a full decode.
package imaging

import (
	"fmt"
	"image"
	"os"
)

// Dimensions reads just the header of an image file and returns its pixel
// size.
func Dimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("inspect %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
