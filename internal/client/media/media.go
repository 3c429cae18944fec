// Package media authorizes protected media URLs with the session token.
package media

import (
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gymfeed/internal/client/models"
)

// WithTokenQuery sets the "token" query parameter on raw. Unparsable URLs
// are returned unchanged.
func WithTokenQuery(raw, token string) string {
	if raw == "" || token == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}

// WithTokenPath appends token as the last path segment of raw.
func WithTokenPath(raw, token string) string {
	if raw == "" || token == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + url.PathEscape(token)
	u.RawPath = ""
	return u.String()
}

// AuthorizePost rewrites the media URLs of p with WithTokenQuery.
func AuthorizePost(p models.Post, token string) models.Post {
	if len(p.Media) == 0 {
		return p
	}
	m := make([]models.Media, len(p.Media))
	for i, item := range p.Media {
		item.URL = WithTokenQuery(item.URL, token)
		m[i] = item
	}
	p.Media = m
	return p
}

// AuthorizeWorkout rewrites the media URLs of w with WithTokenPath.
func AuthorizeWorkout(w models.Workout, token string) models.Workout {
	if len(w.Media) == 0 {
		return w
	}
	m := make([]models.Media, len(w.Media))
	for i, item := range w.Media {
		item.URL = WithTokenPath(item.URL, token)
		m[i] = item
	}
	w.Media = m
	return w
}
