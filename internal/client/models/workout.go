package models

import "time"

// Workout is an item of the workout feed.
type Workout struct {
	ID          int       `json:"id"`
	Title       string    `json:"title,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Description string    `json:"description,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Points      int       `json:"points"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	User        Author    `json:"user"`
	Media       []Media   `json:"media"`
	Count       struct {
		Comments int `json:"comments"`
	} `json:"_count"`
}

// Duration is the logged time range of the workout.
func (w Workout) Duration() time.Duration {
	return w.EndDate.Sub(w.StartDate)
}

// WorkoutDetail is a single workout with its comments.
type WorkoutDetail struct {
	Workout
	Comments []Comment `json:"comments"`
}

// Comment is a comment left on a workout.
type Comment struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	User      Author    `json:"user"`
}

// WorkoutData is the payload used to log a new workout. The backend places
// the workout so that it ends at the time of the request.
type WorkoutData struct {
	DurationMin int    `json:"durationMin"`
	Notes       string `json:"notes,omitempty"`
}
