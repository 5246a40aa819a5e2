// Package server exposes cover generation over HTTP.
package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/mucteba/podcover/pkg/cover"
	"github.com/mucteba/podcover/pkg/imaging"
	"github.com/mucteba/podcover/pkg/logging"
	"github.com/mucteba/podcover/pkg/svg"
)

// maxUploadBytes caps the multipart form size; payload downscaling happens
// after parsing, so this only guards against runaway uploads.
const maxUploadBytes = 32 << 20

// RunServe starts the API server on the given port and blocks.
func RunServe(port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger := logging.GetLogger("server")
	logger.Info().Str("addr", srv.Addr).Msg("listening")
	return srv.ListenAndServe()
}

// Handler builds the API routes. Split out from RunServe so tests can drive
// the mux directly.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/cover", handleCover)
	mux.HandleFunc("GET /api/health", handleHealth)
	return mux
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}

// handleCover renders a cover from a multipart form: text fields title,
// subtitle, episode, website plus file fields image (required) and logo
// (optional). Invalid markup degrades to the fallback cover, mirroring the
// CLI, and is flagged with the X-Podcover-Fallback header.
func handleCover(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLogger("server")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "expected multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	image, err := formPayload(r, "image", imaging.CoverMaxKB)
	if err != nil {
		http.Error(w, "cover image: "+err.Error(), http.StatusBadRequest)
		return
	}

	logo, err := formPayload(r, "logo", imaging.LogoMaxKB)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			logger.Warn().Err(err).Msg("logo upload unusable, using placeholder glyph")
		}
		logo = nil
	}

	req := &cover.Request{
		Title:    strings.TrimSpace(r.FormValue("title")),
		Subtitle: strings.TrimSpace(r.FormValue("subtitle")),
		Episode:  cover.LatinizeDigits(strings.TrimSpace(r.FormValue("episode"))),
		Website:  strings.TrimSpace(r.FormValue("website")),
		Image:    image,
		Logo:     logo,
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	theme := cover.DefaultTheme()
	doc, err := cover.Compose(req, theme)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := svg.Marshal(doc)
	if err == nil {
		err = svg.Validate(data)
	}
	if err != nil {
		logger.Warn().Err(err).Msg("cover markup rejected, serving fallback")
		data, err = svg.Marshal(cover.Fallback(req, theme))
		if err != nil {
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("X-Podcover-Fallback", "true")
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", req.OutputName()))
	if _, err := w.Write(data); err != nil {
		logger.Warn().Err(err).Msg("response write failed")
	}
}

// formPayload reads one uploaded file into an embeddable payload. A missing
// part yields http.ErrMissingFile untouched so callers can tell absence from
// a bad upload.
func formPayload(r *http.Request, field string, maxKB int) (*imaging.Payload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return imaging.Encode(data, uploadMIME(header), maxKB)
}

// uploadMIME prefers the declared part content type and falls back to the
// filename extension.
func uploadMIME(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" && strings.HasPrefix(ct, "image/") {
		return ct
	}
	return imaging.MIMEForPath(header.Filename)
}
