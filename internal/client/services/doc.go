// Package services contains the application services of the GymFeed client.
//
// AuthService owns the login lifecycle on top of the session store: login,
// restoring a persisted session, profile edits and logout. ContentService
// performs the authenticated content operations (workouts, posts, comments,
// ranking) with the token of the current session and builds the paginated
// feeds.
package services
