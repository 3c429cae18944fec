package httpserver

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/gymfeed/internal/common"
	"github.com/dmitrijs2005/gymfeed/internal/logging"
)

// RouterConfig is what NewRouter needs besides the static handler.
type RouterConfig struct {
	Backend         *url.URL
	InsecureBackend bool
	AllowedOrigins  []string
}

// NewRouter wires the middleware chain, /health, the API proxy and the
// static assets.
func NewRouter(c RouterConfig, assets http.Handler, l logging.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(requestLogger(l))
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   c.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", common.RequestIDHeader},
		ExposedHeaders:   []string{common.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	proxy := NewProxy(c.Backend, c.InsecureBackend, l)
	r.Handle(common.APIPrefix, proxy)
	r.Handle(common.APIPrefix+"/*", proxy)

	r.Method(http.MethodGet, "/*", assets)
	r.Method(http.MethodHead, "/*", assets)

	return r
}
