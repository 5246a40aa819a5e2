package server_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mucteba/podcover/clients/server"
	"github.com/mucteba/podcover/pkg/svg"
)

func coverForm(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withImage {
		part, err := w.CreateFormFile("image", "cover.png")
		require.NoError(t, err)

		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		img.Set(0, 0, color.RGBA{R: 255, A: 255})
		require.NoError(t, png.Encode(part, img))
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestCoverEndpoint(t *testing.T) {
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	body, contentType := coverForm(t, map[string]string{
		"title":   "Deep Work",
		"episode": "42",
	}, true)

	resp, err := http.Post(ts.URL+"/api/cover", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "perfect_podcast_ep42_Deep_Work.svg")

	markup, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NoError(t, svg.Validate(markup))
	assert.Contains(t, string(markup), "۴۲")
}

func TestCoverEndpointRequiresImage(t *testing.T) {
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	body, contentType := coverForm(t, map[string]string{"title": "Deep Work"}, false)

	resp, err := http.Post(ts.URL+"/api/cover", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCoverEndpointRequiresTitle(t *testing.T) {
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	body, contentType := coverForm(t, map[string]string{"title": "  "}, true)

	resp, err := http.Post(ts.URL+"/api/cover", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCoverEndpointMethod(t *testing.T) {
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/cover")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
