package httpserver

import (
	"crypto/tls"
	"encoding/json"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/dmitrijs2005/gymfeed/internal/common"
	"github.com/dmitrijs2005/gymfeed/internal/logging"
)

// BadGatewayMessage is the body message of a failed proxy round trip.
const BadGatewayMessage = "The service is temporarily unavailable."

// NewProxy forwards requests to target, keeping the request path and
// rewriting Host to the target's. insecure disables TLS verification
// towards the backend.
func NewProxy(target *url.URL, insecure bool, l logging.Logger) http.Handler {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			if id := RequestIDFrom(pr.In.Context()); id != "" {
				pr.Out.Header.Set(common.RequestIDHeader, id)
			}
		},
		Transport: transport,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			l.Error(r.Context(), "proxy error",
				"path", r.URL.Path, "backend", target.Host, "err", err,
				"request_id", RequestIDFrom(r.Context()))
			writeJSON(w, http.StatusBadGateway, map[string]string{"message": BadGatewayMessage})
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
