package cli

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gymfeed/internal/client/guard"
	"github.com/go-chi/chi/v5"
)

// ErrNotFound is returned for paths no route matches.
var ErrNotFound = errors.New("route not found")

type handlerFunc func(a *App, ctx context.Context, params map[string]string, loc guard.Location) error

type route struct {
	pattern string
	public  bool
	handler handlerFunc
}

// routeTable resolves paths with a chi routing tree. The tree only matches;
// the screens are looked up by the pattern it reports.
type routeTable struct {
	mux    *chi.Mux
	routes map[string]route
}

func newRouteTable() *routeTable {
	t := &routeTable{mux: chi.NewRouter(), routes: map[string]route{}}

	t.add("/auth", true, (*App).authScreen)
	t.add("/logout", true, (*App).logoutScreen)
	t.add("/", false, (*App).workoutFeedScreen)
	t.add("/motivation", false, (*App).postFeedScreen)
	t.add("/ranking", false, (*App).rankingScreen)
	t.add("/workout/{id}", false, (*App).workoutScreen)
	t.add("/add-workout", false, (*App).addWorkoutScreen)
	t.add("/add-post", false, (*App).addPostScreen)
	t.add("/edit-profile", false, (*App).editProfileScreen)

	return t
}

func (t *routeTable) add(pattern string, public bool, h handlerFunc) {
	t.routes[pattern] = route{pattern: pattern, public: public, handler: h}
	t.mux.Get(pattern, http.NotFound)
}

// lookup returns the route matching path and its URL parameters.
func (t *routeTable) lookup(path string) (route, map[string]string, bool) {
	rctx := chi.NewRouteContext()
	if !t.mux.Match(rctx, http.MethodGet, path) {
		return route{}, nil, false
	}

	r, ok := t.routes[rctx.RoutePattern()]
	if !ok {
		return route{}, nil, false
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, k := range rctx.URLParams.Keys {
		params[k] = rctx.URLParams.Values[i]
	}
	return r, params, true
}

func cleanPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	return p
}

// Navigate opens path, pushing it on the history.
func (a *App) Navigate(ctx context.Context, path string) error {
	return a.navigate(ctx, guard.Location{Path: cleanPath(path)}, false)
}

// Back returns to the previous route.
func (a *App) Back(ctx context.Context) error {
	if len(a.history) < 2 {
		return nil
	}
	a.history = a.history[:len(a.history)-1]
	prev := a.history[len(a.history)-1]
	return a.navigate(ctx, prev, true)
}

func (a *App) location() guard.Location {
	if len(a.history) == 0 {
		return guard.Location{Path: "/"}
	}
	return a.history[len(a.history)-1]
}

func (a *App) navigate(ctx context.Context, loc guard.Location, replace bool) error {
	r, params, ok := a.routes.lookup(loc.Path)
	if !ok {
		a.println(a.theme.Error.Render("Page not found: " + loc.Path))
		return ErrNotFound
	}

	if !r.public {
		if d := guard.Check(a.session.State(), loc); !d.Render() {
			state := d.Redirect.State
			return a.navigate(ctx, guard.Location{Path: d.Redirect.To, State: &state}, d.Redirect.Replace)
		}
	}

	if replace && len(a.history) > 0 {
		a.history[len(a.history)-1] = loc
	} else {
		a.history = append(a.history, loc)
	}

	if loc.Path != "/" && loc.Path != "/motivation" {
		a.active = feedNone
	}
	return r.handler(a, ctx, params, loc)
}

// redirect replaces the current route, as after a login or a form submit.
func (a *App) redirect(ctx context.Context, path string) error {
	return a.navigate(ctx, guard.Location{Path: cleanPath(path)}, true)
}
