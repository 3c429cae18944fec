package static

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gymfeed/internal/logging"
)

const (
	indexFile        = "/index.html"
	manifestMimeType = "application/manifest+json"
)

// Handler serves assets from store. Unknown paths without an extension are
// client-side routes and get index.html.
func Handler(store Store, log logging.Logger) http.Handler {
	return &handler{store: store, log: log}
}

type handler struct {
	store Store
	log   logging.Logger
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	if name == "/" {
		name = indexFile
	}

	obj, err := h.store.Get(r.Context(), name)
	if errors.Is(err, ErrNotFound) && path.Ext(name) == "" {
		name = indexFile
		obj, err = h.store.Get(r.Context(), name)
	}
	if errors.Is(err, ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error(r.Context(), "static asset error", "path", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer obj.Body.Close()

	w.Header().Set("Content-Type", contentType(name, obj.ContentType))
	if name == indexFile {
		w.Header().Set("Cache-Control", "no-cache")
	}

	if rs, ok := obj.Body.(io.ReadSeeker); ok {
		http.ServeContent(w, r, name, obj.ModTime, rs)
		return
	}

	if obj.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	if !obj.ModTime.IsZero() {
		w.Header().Set("Last-Modified", obj.ModTime.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, obj.Body); err != nil {
		h.log.Warn(r.Context(), "static asset copy failed", "path", name, "err", err)
	}
}

// contentType picks the type by extension, then what the store reported.
func contentType(name, stored string) string {
	ext := strings.ToLower(path.Ext(name))
	if ext == ".webmanifest" {
		return manifestMimeType
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	if stored != "" {
		return stored
	}
	return "application/octet-stream"
}
