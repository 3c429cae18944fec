package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/unrolled/secure"

	"github.com/dmitrijs2005/gymfeed/internal/common"
	"github.com/dmitrijs2005/gymfeed/internal/logging"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// RequestIDFrom returns the request id stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestID keeps a well-formed incoming X-Request-Id or assigns a new
// UUID, and echoes it on the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(common.RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// requestLogger logs one line per request through the slog-backed logger.
func requestLogger(l logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			l.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"request_id", RequestIDFrom(r.Context()),
			)
		})
	}
}

// securityHeaders sets the baseline hardening headers for every response.
// HSTS is sent on every response, TLS or not.
func securityHeaders() func(http.Handler) http.Handler {
	return secure.New(secure.Options{
		ContentSecurityPolicy: "default-src 'self';base-uri 'self';font-src 'self' https: data:;" +
			"form-action 'self';frame-ancestors 'self';img-src 'self' data: blob:;media-src 'self' blob:;" +
			"object-src 'none';script-src 'self';style-src 'self' https: 'unsafe-inline';upgrade-insecure-requests",
		CrossOriginOpenerPolicy:       "same-origin",
		CrossOriginResourcePolicy:     "same-origin",
		ReferrerPolicy:                "no-referrer",
		STSSeconds:                    31536000,
		STSIncludeSubdomains:          true,
		ForceSTSHeader:                true,
		ContentTypeNosniff:            true,
		XDNSPrefetchControl:           "off",
		CustomFrameOptionsValue:       "SAMEORIGIN",
		XPermittedCrossDomainPolicies: "none",
		CustomBrowserXssValue:         "0",
	}).Handler
}
