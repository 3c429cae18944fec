package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gymfeed/internal/client/client"
	"github.com/dmitrijs2005/gymfeed/internal/client/feed"
	"github.com/dmitrijs2005/gymfeed/internal/client/media"
	"github.com/dmitrijs2005/gymfeed/internal/client/models"
	"github.com/dmitrijs2005/gymfeed/internal/client/session"
	"github.com/dmitrijs2005/gymfeed/internal/logging"
)

// Upload is a media file attached to new content.
type Upload struct {
	Name string
	Body io.Reader
}

type ContentService interface {
	WorkoutFeed() *feed.Fetcher[models.Workout]
	PostFeed() *feed.Fetcher[models.Post]

	Workout(ctx context.Context, id int) (*models.WorkoutDetail, error)
	AddWorkout(ctx context.Context, data models.WorkoutData, files []Upload) (*models.Workout, error)
	DeleteWorkout(ctx context.Context, id int) error
	Comment(ctx context.Context, workoutID int, text string) (*models.WorkoutDetail, error)

	AddPost(ctx context.Context, data models.PostData, files []Upload) (*models.Post, error)
	DeletePost(ctx context.Context, id int) error

	Ranking(ctx context.Context) ([]models.RankingEntry, error)
}

type contentService struct {
	client  client.Client
	session *session.Store
	log     logging.Logger
}

func NewContentService(c client.Client, s *session.Store, log logging.Logger) ContentService {
	return &contentService{client: c, session: s, log: log.With("component", "content")}
}

func (s *contentService) token() (string, error) {
	t := s.session.State().Token
	if t == "" {
		return "", feed.ErrNotReady
	}
	return t, nil
}

func (s *contentService) currentToken() string { return s.session.State().Token }

// expire signs the session out when the backend rejected token, unless the
// session moved on to another token meanwhile.
func (s *contentService) expire(ctx context.Context, token string, err error) error {
	if errors.Is(err, client.ErrUnauthorized) && s.session.LogoutIfToken(ctx, token) {
		s.log.Warn(ctx, "request rejected, signed out", "err", err)
	}
	return err
}

// signOutOnReject wraps fetch so a rejected page request ends the session.
func signOutOnReject[T any](s *contentService, fetch feed.PageFunc[T]) feed.PageFunc[T] {
	return func(ctx context.Context, token string, limit, skip int) ([]T, error) {
		items, err := fetch(ctx, token, limit, skip)
		return items, s.expire(ctx, token, err)
	}
}

// WorkoutFeed returns a new fetcher over GET /workout. Media URLs carry the
// token as a trailing path segment.
func (s *contentService) WorkoutFeed() *feed.Fetcher[models.Workout] {
	return feed.New(signOutOnReject(s, s.client.Workouts), s.currentToken,
		feed.WithTransform(media.AuthorizeWorkout),
		feed.WithLogger[models.Workout](s.log.With("feed", "workouts")),
	)
}

// PostFeed returns a new fetcher over GET /post. Media URLs carry the token
// as a query parameter.
func (s *contentService) PostFeed() *feed.Fetcher[models.Post] {
	return feed.New(signOutOnReject(s, s.client.Posts), s.currentToken,
		feed.WithTransform(media.AuthorizePost),
		feed.WithLogger[models.Post](s.log.With("feed", "posts")),
	)
}

func (s *contentService) Workout(ctx context.Context, id int) (*models.WorkoutDetail, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	w, err := s.client.Workout(ctx, token, id)
	if err != nil {
		return nil, s.expire(ctx, token, err)
	}
	w.Workout = media.AuthorizeWorkout(w.Workout, token)
	return w, nil
}

func (s *contentService) AddWorkout(ctx context.Context, data models.WorkoutData, files []Upload) (*models.Workout, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	w, err := s.client.CreateWorkout(ctx, token, data)
	if err != nil {
		return nil, s.expire(ctx, token, err)
	}

	// the workout stays even if its media fail to upload
	for _, f := range files {
		if err := s.client.UploadWorkoutMedia(ctx, token, w.ID, f.Name, f.Body); err != nil {
			return w, fmt.Errorf("upload %s: %w", f.Name, s.expire(ctx, token, err))
		}
	}
	return w, nil
}

func (s *contentService) DeleteWorkout(ctx context.Context, id int) error {
	token, err := s.token()
	if err != nil {
		return err
	}
	return s.expire(ctx, token, s.client.DeleteWorkout(ctx, token, id))
}

// Comment posts text on the workout and returns the reloaded workout.
func (s *contentService) Comment(ctx context.Context, workoutID int, text string) (*models.WorkoutDetail, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	if err := s.client.CommentWorkout(ctx, token, workoutID, text); err != nil {
		return nil, s.expire(ctx, token, err)
	}
	return s.Workout(ctx, workoutID)
}

// AddPost publishes a post with its media. If a media upload fails the post
// is deleted again, so no half-published post remains.
func (s *contentService) AddPost(ctx context.Context, data models.PostData, files []Upload) (*models.Post, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	p, err := s.client.CreatePost(ctx, token, data)
	if err != nil {
		return nil, s.expire(ctx, token, err)
	}

	for _, f := range files {
		if err := s.client.UploadPostMedia(ctx, token, p.ID, f.Name, f.Body); err != nil {
			if derr := s.client.DeletePost(ctx, token, p.ID); derr != nil {
				s.log.Error(ctx, "failed to roll back post", "post", p.ID, "err", derr)
			}
			return nil, fmt.Errorf("upload %s: %w", f.Name, s.expire(ctx, token, err))
		}
	}
	return p, nil
}

func (s *contentService) DeletePost(ctx context.Context, id int) error {
	token, err := s.token()
	if err != nil {
		return err
	}
	return s.expire(ctx, token, s.client.DeletePost(ctx, token, id))
}

func (s *contentService) Ranking(ctx context.Context) ([]models.RankingEntry, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	rows, err := s.client.Ranking(ctx, token)
	return rows, s.expire(ctx, token, err)
}
