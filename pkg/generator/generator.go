// Package generator turns a cover request into a published SVG file.
//
// All output follows a unified pipeline: compose the document, serialize it,
// validate the markup, then publish atomically. When validation or publishing
// fails, a degraded fallback cover is written so the caller always ends up
// with a renderable file on disk.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mucteba/podcover/pkg/cover"
	"github.com/mucteba/podcover/pkg/svg"
)

// Result reports what a generation call actually wrote.
type Result struct {
	// Path is the file that ended up on disk.
	Path string
	// Fallback is true when the degraded cover was written instead of the
	// full one.
	Fallback bool
}

// Generate composes the cover for req and writes it under dir. An empty name
// derives the filename from the request. Invalid markup degrades to the
// fallback cover and still succeeds; a failed write degrades too but returns
// the write error.
func Generate(req *cover.Request, theme *cover.Theme, dir, name string) (*Result, error) {
	doc, err := cover.Compose(req, theme)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = req.OutputName()
	}
	path := filepath.Join(dir, name)

	data, err := svg.Marshal(doc)
	if err == nil {
		err = svg.Validate(data)
	}
	if err != nil {
		log.Warn().Err(err).Str("output", path).Msg("cover markup rejected, writing fallback")
		return writeFallback(req, theme, dir, name)
	}

	if err := WriteFile(path, data); err != nil {
		log.Error().Err(err).Str("output", path).Msg("cover write failed, writing fallback")
		if res, ferr := writeFallback(req, theme, dir, name); ferr == nil {
			return res, err
		}
		return nil, err
	}

	log.Info().Str("output", path).Int("bytes", len(data)).Msg("cover written")
	return &Result{Path: path}, nil
}

// writeFallback serializes and publishes the degraded cover next to the
// intended output. The fallback is not re-validated; it is the floor of the
// degradation ladder.
func writeFallback(req *cover.Request, theme *cover.Theme, dir, name string) (*Result, error) {
	data, err := svg.Marshal(cover.Fallback(req, theme))
	if err != nil {
		return nil, fmt.Errorf("serialize fallback: %w", err)
	}

	path := filepath.Join(dir, FallbackName(name))
	if err := WriteFile(path, data); err != nil {
		return nil, fmt.Errorf("write fallback: %w", err)
	}
	log.Info().Str("output", path).Msg("fallback cover written")
	return &Result{Path: path, Fallback: true}, nil
}

// FallbackName derives the fallback filename from the intended output name.
func FallbackName(name string) string {
	return strings.TrimSuffix(name, ".svg") + "_fallback.svg"
}

// WriteFile publishes data at path atomically: the bytes land in a temp file
// in the same directory and are renamed into place, so a partially written
// cover is never observable at the target path.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".cover-*.svg")
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publish %s: %w", path, err)
	}
	return nil
}
