// Package models defines the client-side view of the backend resources:
// profiles, workouts, posts, comments and rankings, as they arrive over the
// REST API (JSON field names follow the backend).
package models

import "time"

// Media is an attachment reference. URL may need the access token appended
// before it can be fetched (see package media).
type Media struct {
	URL  string `json:"url"`
	Mime string `json:"mime,omitempty"`
}

// Counts carries the denormalized counters the backend returns as "_count".
type Counts struct {
	Workouts int `json:"workouts"`
	Comments int `json:"comments"`
}

// Profile is the snapshot of the authenticated user cached in the session.
type Profile struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	Points     int       `json:"points"`
	ProfilePic *Media    `json:"profilePic,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	Count      Counts    `json:"_count"`
}

// Author is the denormalized user snapshot embedded in workouts, posts,
// comments and likes.
type Author struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Points     int    `json:"points"`
	ProfilePic *Media `json:"profilePic,omitempty"`
}

// RankingEntry is one row of the points ranking.
type RankingEntry struct {
	ID                   string `json:"id"`
	Username             string `json:"username"`
	TotalWorkoutDuration int64  `json:"totalWorkoutDuration"` // seconds
	TotalPoints          int    `json:"totalPoints"`
}

// ProfileUpdate carries the editable profile fields. Empty fields are left
// unchanged by the backend.
type ProfileUpdate struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}
