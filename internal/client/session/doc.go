// Package session holds the authenticated session of the client: the bearer
// token and the cached profile of the signed-in user.
//
// The Store keeps the state in memory, notifies subscribers after every
// mutation and writes the state through to the "session" record of the local
// storage. Persistence failures are logged and never roll back memory state.
// A Store built over an existing record starts from it; a missing or broken
// record yields the empty (signed-out) state.
//
// Profile fetches are tracked with tickets so that a slow response cannot
// overwrite the result of a newer request (see BeginProfileFetch).
package session
