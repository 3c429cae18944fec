package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gymfeed/internal/client/models"
	"github.com/dmitrijs2005/gymfeed/internal/client/prefs"
	"github.com/dmitrijs2005/gymfeed/internal/client/services"
	"github.com/dmitrijs2005/gymfeed/internal/client/session"
	"github.com/dmitrijs2005/gymfeed/internal/logging"
)

// fakeAPI implements client.Client for screen tests.
type fakeAPI struct {
	mu sync.Mutex

	loginToken string
	loginErr   error
	profile    *models.Profile
	profileErr error

	workoutPages [][]models.Workout
	postPages    [][]models.Post
	pageErr      error

	workout  *models.WorkoutDetail
	ranking  []models.RankingEntry
	created  []models.WorkoutData
	posts    []models.PostData
	comments []string
	deleted  []int
	updates  []models.ProfileUpdate
	pics     []string
	calls    []string
}

func (f *fakeAPI) call(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeAPI) Login(context.Context, string, string) (string, error) {
	f.call("login")
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) Profile(context.Context, string) (*models.Profile, error) {
	f.call("profile")
	return f.profile, f.profileErr
}

func (f *fakeAPI) UpdateProfile(_ context.Context, _ string, upd models.ProfileUpdate) error {
	f.call("update-profile")
	f.updates = append(f.updates, upd)
	return nil
}

func (f *fakeAPI) UpdateProfilePic(_ context.Context, _, name string, r io.Reader) error {
	f.call("update-profile-pic")
	b, _ := io.ReadAll(r)
	f.pics = append(f.pics, name+":"+string(b))
	return nil
}

func (f *fakeAPI) Workouts(_ context.Context, _ string, limit, skip int) ([]models.Workout, error) {
	f.call("workouts")
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	i := skip / limit
	if i >= len(f.workoutPages) {
		return nil, nil
	}
	return append([]models.Workout(nil), f.workoutPages[i]...), nil
}

func (f *fakeAPI) Workout(context.Context, string, int) (*models.WorkoutDetail, error) {
	f.call("workout")
	w := *f.workout
	return &w, nil
}

func (f *fakeAPI) CreateWorkout(_ context.Context, _ string, data models.WorkoutData) (*models.Workout, error) {
	f.call("create-workout")
	f.created = append(f.created, data)
	return &models.Workout{ID: 99}, nil
}

func (f *fakeAPI) DeleteWorkout(_ context.Context, _ string, id int) error {
	f.call("delete-workout")
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) CommentWorkout(_ context.Context, _ string, _ int, text string) error {
	f.call("comment")
	f.comments = append(f.comments, text)
	f.workout.Comments = append(f.workout.Comments, models.Comment{Text: text, User: models.Author{Username: "mario"}})
	return nil
}

func (f *fakeAPI) UploadWorkoutMedia(context.Context, string, int, string, io.Reader) error {
	f.call("upload-workout-media")
	return nil
}

func (f *fakeAPI) Posts(_ context.Context, _ string, limit, skip int) ([]models.Post, error) {
	f.call("posts")
	i := skip / limit
	if i >= len(f.postPages) {
		return nil, nil
	}
	return append([]models.Post(nil), f.postPages[i]...), nil
}

func (f *fakeAPI) CreatePost(_ context.Context, _ string, data models.PostData) (*models.Post, error) {
	f.call("create-post")
	f.posts = append(f.posts, data)
	return &models.Post{ID: 7}, nil
}

func (f *fakeAPI) DeletePost(context.Context, string, int) error {
	f.call("delete-post")
	return nil
}

func (f *fakeAPI) UploadPostMedia(context.Context, string, int, string, io.Reader) error {
	f.call("upload-post-media")
	return nil
}

func (f *fakeAPI) Ranking(context.Context, string) ([]models.RankingEntry, error) {
	f.call("ranking")
	return f.ranking, nil
}

func (f *fakeAPI) UpdateDeviceToken(context.Context, string, string) error {
	f.call("device-token")
	return nil
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

// memRepo is an in-memory storage.Repository.
type memRepo struct {
	mu      sync.Mutex
	records map[string][]byte
}

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

type testEnv struct {
	app  *App
	api  *fakeAPI
	repo *memRepo
	out  *bytes.Buffer
}

// newTestEnv builds an App over api with the given stdin lines. Terminal
// password prompts fall back to reading from the same input.
func newTestEnv(t *testing.T, api *fakeAPI, initialPath string, lines ...string) *testEnv {
	t.Helper()

	oldIsTerminal := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = oldIsTerminal })

	ctx := context.Background()
	log := logging.Discard()
	repo := &memRepo{records: map[string][]byte{}}
	sess := session.NewStore(ctx, repo, log)
	out := &bytes.Buffer{}

	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}

	app := newApp(Deps{
		Session:  sess,
		DarkMode: prefs.NewDarkMode(ctx, repo, log),
		Splash:   prefs.NewSplash(initialPath),
		Auth:     services.NewAuthService(api, sess, "", log),
		Content:  services.NewContentService(api, sess, log),
		Reader:   bufio.NewReader(strings.NewReader(input)),
		Out:      out,
		Log:      log,
	})
	return &testEnv{app: app, api: api, repo: repo, out: out}
}

func (e *testEnv) signIn(t *testing.T, p *models.Profile) {
	t.Helper()
	e.signInWithToken(t, "tok", p)
}

func (e *testEnv) signInWithToken(t *testing.T, token string, p *models.Profile) {
	t.Helper()
	ctx := context.Background()
	e.app.session.SetToken(ctx, token)
	e.app.session.SetUser(ctx, p)
}

func workouts(from, n int) []models.Workout {
	out := make([]models.Workout, n)
	for i := range out {
		out[i] = models.Workout{ID: from + i, User: models.Author{ID: 1, Username: "mario"}}
	}
	return out
}
