package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/gymfeed/internal/client/models"
)

// Client is the backend REST API as seen by the client.
type Client interface {
	Login(ctx context.Context, username, password string) (string, error)
	Profile(ctx context.Context, token string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, token string, upd models.ProfileUpdate) error
	UpdateProfilePic(ctx context.Context, token, name string, r io.Reader) error

	Workouts(ctx context.Context, token string, limit, skip int) ([]models.Workout, error)
	Workout(ctx context.Context, token string, id int) (*models.WorkoutDetail, error)
	CreateWorkout(ctx context.Context, token string, data models.WorkoutData) (*models.Workout, error)
	DeleteWorkout(ctx context.Context, token string, id int) error
	CommentWorkout(ctx context.Context, token string, id int, text string) error
	UploadWorkoutMedia(ctx context.Context, token string, id int, name string, r io.Reader) error

	Posts(ctx context.Context, token string, limit, skip int) ([]models.Post, error)
	CreatePost(ctx context.Context, token string, data models.PostData) (*models.Post, error)
	DeletePost(ctx context.Context, token string, id int) error
	UploadPostMedia(ctx context.Context, token string, id int, name string, r io.Reader) error

	Ranking(ctx context.Context, token string) ([]models.RankingEntry, error)
	UpdateDeviceToken(ctx context.Context, token, deviceToken string) error
}
