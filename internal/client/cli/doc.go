// Package cli provides the interactive GymFeed terminal client.
//
// It wires configuration, local storage, the session and preference stores,
// the API services and a REPL. Screens are addressed by routes, the same
// paths the web client uses:
//
//	/auth            sign in
//	/logout          sign out
//	/                workout feed with the profile card
//	/motivation      motivational posts
//	/ranking         points ranking
//	/workout/{id}    workout details and comments
//	/add-workout     log a workout
//	/add-post        publish a post
//	/edit-profile    change username, password or profile picture
//
// Every route except /auth and /logout passes through the navigation guard;
// without a signed-in user the client is redirected to /auth and returns to
// the requested route after login.
//
// Starting with -reset wipes the saved session and preferences before the
// stores load them.
//
// The REPL is started via App.Run(ctx, initialPath), which blocks until the
// user exits. See runREPL for the command list.
package cli
