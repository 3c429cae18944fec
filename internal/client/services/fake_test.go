package services

import (
	"context"
	"io"
	"sync"

	"github.com/dmitrijs2005/gymfeed/internal/client/models"
)

// fakeClient implements client.Client for unit tests of the services.
type fakeClient struct {
	mu sync.Mutex

	LoginToken string
	LoginErr   error
	LoginFn    func(username string) (string, error)

	ProfileRet *models.Profile
	ProfileErr error
	ProfileFn  func(token string) (*models.Profile, error)

	UpdateProfileErr error
	LastUpdate       models.ProfileUpdate
	ProfilePicErr    error
	ProfilePics      []string

	WorkoutsRet []models.Workout
	WorkoutsErr error
	WorkoutRet  *models.WorkoutDetail
	WorkoutErr  error

	CreateWorkoutErr error
	UploadErr        error
	Uploads          []string

	CommentErr  error
	LastComment string

	CreatePostErr error
	DeletePostErr error
	DeletedPosts  []int

	DeletedWorkouts []int

	RankingRet []models.RankingEntry

	DeviceTokenErr error
	DeviceTokens   []string

	Tokens []string
}

func (f *fakeClient) seen(token string) {
	f.mu.Lock()
	f.Tokens = append(f.Tokens, token)
	f.mu.Unlock()
}

func (f *fakeClient) Login(_ context.Context, username, _ string) (string, error) {
	if f.LoginFn != nil {
		return f.LoginFn(username)
	}
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) Profile(_ context.Context, token string) (*models.Profile, error) {
	f.seen(token)
	if f.ProfileFn != nil {
		return f.ProfileFn(token)
	}
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(_ context.Context, token string, upd models.ProfileUpdate) error {
	f.seen(token)
	f.LastUpdate = upd
	return f.UpdateProfileErr
}

func (f *fakeClient) UpdateProfilePic(_ context.Context, token, name string, r io.Reader) error {
	f.seen(token)
	if f.ProfilePicErr != nil {
		return f.ProfilePicErr
	}
	b, _ := io.ReadAll(r)
	f.ProfilePics = append(f.ProfilePics, name+":"+string(b))
	return nil
}

func (f *fakeClient) Workouts(_ context.Context, token string, limit, skip int) ([]models.Workout, error) {
	f.seen(token)
	return f.WorkoutsRet, f.WorkoutsErr
}

func (f *fakeClient) Workout(_ context.Context, token string, id int) (*models.WorkoutDetail, error) {
	f.seen(token)
	if f.WorkoutErr != nil {
		return nil, f.WorkoutErr
	}
	w := *f.WorkoutRet
	return &w, nil
}

func (f *fakeClient) CreateWorkout(_ context.Context, token string, data models.WorkoutData) (*models.Workout, error) {
	f.seen(token)
	if f.CreateWorkoutErr != nil {
		return nil, f.CreateWorkoutErr
	}
	return &models.Workout{ID: 11, Notes: data.Notes}, nil
}

func (f *fakeClient) DeleteWorkout(_ context.Context, token string, id int) error {
	f.seen(token)
	f.DeletedWorkouts = append(f.DeletedWorkouts, id)
	return nil
}

func (f *fakeClient) CommentWorkout(_ context.Context, token string, id int, text string) error {
	f.seen(token)
	f.LastComment = text
	return f.CommentErr
}

func (f *fakeClient) UploadWorkoutMedia(_ context.Context, token string, id int, name string, r io.Reader) error {
	f.seen(token)
	f.Uploads = append(f.Uploads, name)
	return f.UploadErr
}

func (f *fakeClient) Posts(_ context.Context, token string, limit, skip int) ([]models.Post, error) {
	f.seen(token)
	return nil, nil
}

func (f *fakeClient) CreatePost(_ context.Context, token string, data models.PostData) (*models.Post, error) {
	f.seen(token)
	if f.CreatePostErr != nil {
		return nil, f.CreatePostErr
	}
	return &models.Post{ID: 21, Text: data.Text}, nil
}

func (f *fakeClient) DeletePost(_ context.Context, token string, id int) error {
	f.seen(token)
	f.DeletedPosts = append(f.DeletedPosts, id)
	return f.DeletePostErr
}

func (f *fakeClient) UploadPostMedia(_ context.Context, token string, id int, name string, r io.Reader) error {
	f.seen(token)
	f.Uploads = append(f.Uploads, name)
	return f.UploadErr
}

func (f *fakeClient) Ranking(_ context.Context, token string) ([]models.RankingEntry, error) {
	f.seen(token)
	return f.RankingRet, nil
}

func (f *fakeClient) UpdateDeviceToken(_ context.Context, token, deviceToken string) error {
	f.seen(token)
	f.DeviceTokens = append(f.DeviceTokens, deviceToken)
	return f.DeviceTokenErr
}

// memRepo is an in-memory storage.Repository.
type memRepo struct {
	mu      sync.Mutex
	records map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{records: map[string][]byte{}} }

func (m *memRepo) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[key], nil
}

func (m *memRepo) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = value
	return nil
}

func (m *memRepo) Clear(context.Context) error { return nil }
