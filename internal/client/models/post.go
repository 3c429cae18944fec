package models

import "time"

// Post is an item of the motivational feed.
type Post struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Text      string    `json:"text,omitempty"`
	Media     []Media   `json:"media"`
	User      Author    `json:"user"`
	Likes     []Like    `json:"likes"`
}

// LikedBy reports whether the user with the given id liked the post.
func (p Post) LikedBy(userID int) bool {
	for _, l := range p.Likes {
		if l.User.ID == userID {
			return true
		}
	}
	return false
}

// Like is a like left on a post.
type Like struct {
	User      Author    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostData is the payload used to publish a new post.
type PostData struct {
	Text string `json:"text,omitempty"`
}
