package static

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gymfeed/internal/logging"
)

func newDirHandler(t *testing.T) http.Handler {
	t.Helper()
	dir := writePublic(t, map[string]string{
		"index.html":           "<html>app</html>",
		"manifest.webmanifest": `{"name":"GymFeed"}`,
		"assets/app.js":        "console.log(1)",
	})
	s, err := NewDirStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return Handler(s, logging.Discard())
}

func get(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHandler_ServesFiles(t *testing.T) {
	h := newDirHandler(t)

	rec := get(h, http.MethodGet, "/assets/app.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "javascript")

	rec = get(h, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>app</html>", rec.Body.String())
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
}

func TestHandler_ManifestType(t *testing.T) {
	rec := get(newDirHandler(t), http.MethodGet, "/manifest.webmanifest")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/manifest+json", rec.Header().Get("Content-Type"))
}

func TestHandler_SPAFallback(t *testing.T) {
	h := newDirHandler(t)

	rec := get(h, http.MethodGet, "/workout/12")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>app</html>", rec.Body.String())

	rec = get(h, http.MethodGet, "/assets/missing.js")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type memStore map[string]string

func (m memStore) Get(_ context.Context, name string) (*Object, error) {
	body, ok := m[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &Object{Body: io.NopCloser(strings.NewReader(body)), Size: int64(len(body))}, nil
}

type errStore struct{}

func (errStore) Get(context.Context, string) (*Object, error) { return nil, errors.New("boom") }

func TestHandler_StreamingStore(t *testing.T) {
	h := Handler(memStore{"/index.html": "<html>", "/logo.png": "png"}, logging.Discard())

	rec := get(h, http.MethodGet, "/logo.png")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "3", rec.Header().Get("Content-Length"))
	assert.Equal(t, "png", rec.Body.String())

	rec = get(h, http.MethodHead, "/logo.png")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = get(h, http.MethodGet, "/ranking")
	assert.Equal(t, "<html>", rec.Body.String())
}

func TestHandler_StoreError(t *testing.T) {
	rec := get(Handler(errStore{}, logging.Discard()), http.MethodGet, "/app.js")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/manifest+json", contentType("/site.WEBMANIFEST", ""))
	assert.Equal(t, "text/x-custom", contentType("/blob", "text/x-custom"))
	assert.Equal(t, "application/octet-stream", contentType("/blob", ""))
}
