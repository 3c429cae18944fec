// Package guard decides whether a protected route may be rendered for the
// current session, and where to send the user otherwise.
package guard

import "github.com/dmitrijs2005/gymfeed/internal/client/session"

// LoginPath is where unauthenticated users are sent.
const LoginPath = "/auth"

// NavState is the state attached to a navigation.
type NavState struct {
	// From is the location the user tried to open before being redirected.
	From string
}

// Location is a route path plus the navigation state it was entered with.
type Location struct {
	Path  string
	State *NavState
}

// Redirect describes a navigation the guard requires.
type Redirect struct {
	To      string
	Replace bool
	State   NavState
}

// Decision is the outcome of Check. A nil Redirect means render.
type Decision struct {
	Redirect *Redirect
}

// Render reports whether the protected content may be shown.
func (d Decision) Render() bool { return d.Redirect == nil }

// Check is the pure guard decision: without a user in st the location is
// replaced by the login route, carrying the original path so it can be
// restored after login.
func Check(st session.State, loc Location) Decision {
	if st.User != nil {
		return Decision{}
	}
	return Decision{Redirect: &Redirect{
		To:      LoginPath,
		Replace: true,
		State:   NavState{From: loc.Path},
	}}
}

// FromState returns the destination recorded by a guard redirect, or "/".
func FromState(st *NavState) string {
	if st == nil || st.From == "" || st.From == LoginPath {
		return "/"
	}
	return st.From
}
