package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gymfeed/internal/client/client"
	"github.com/dmitrijs2005/gymfeed/internal/client/config"
	"github.com/dmitrijs2005/gymfeed/internal/client/feed"
	"github.com/dmitrijs2005/gymfeed/internal/client/guard"
	"github.com/dmitrijs2005/gymfeed/internal/client/models"
	"github.com/dmitrijs2005/gymfeed/internal/client/prefs"
	"github.com/dmitrijs2005/gymfeed/internal/client/services"
	"github.com/dmitrijs2005/gymfeed/internal/client/session"
	"github.com/dmitrijs2005/gymfeed/internal/client/storage"
	"github.com/dmitrijs2005/gymfeed/internal/filex"
	"github.com/dmitrijs2005/gymfeed/internal/logging"
)

const sessionExpiredMessage = "Your session has expired, please sign in again."

type feedKind string

const (
	feedNone     feedKind = ""
	feedWorkouts feedKind = "workouts"
	feedPosts    feedKind = "posts"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	session  *session.Store
	darkMode *prefs.DarkMode
	splash   *prefs.Splash
	auth     services.AuthService
	content  services.ContentService

	workouts *feed.Fetcher[models.Workout]
	posts    *feed.Fetcher[models.Post]
	active   feedKind
	shown    int

	workout *models.WorkoutDetail

	routes  *routeTable
	history []guard.Location
	theme   Theme
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
}

// Deps are the collaborators of an App. NewApp builds them from the config;
// tests pass their own.
type Deps struct {
	Session  *session.Store
	DarkMode *prefs.DarkMode
	Splash   *prefs.Splash
	Auth     services.AuthService
	Content  services.ContentService
	Reader   *bufio.Reader
	Out      io.Writer
	Log      logging.Logger
}

// NewApp opens the local state database and wires the stores and services.
// initialPath is the route the client starts on.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, initialPath string) (*App, error) {
	if _, err := filex.EnsureParentDir(c.StateDB); err != nil {
		return nil, fmt.Errorf("state dir: %w", err)
	}

	db, err := storage.Open(ctx, c.StateDB)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}
	repo := storage.NewSQLiteRepository(db)

	if c.ResetState {
		if err := repo.Clear(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("reset state: %w", err)
		}
		log.Info(ctx, "local state cleared", "path", c.StateDB)
	}

	sess := session.NewStore(ctx, repo, log)
	api := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)

	a := newApp(Deps{
		Session:  sess,
		DarkMode: prefs.NewDarkMode(ctx, repo, log),
		Splash:   prefs.NewSplash(initialPath),
		Auth:     services.NewAuthService(api, sess, c.DeviceToken, log),
		Content:  services.NewContentService(api, sess, log),
		Reader:   bufio.NewReader(os.Stdin),
		Out:      os.Stdout,
		Log:      log,
	})
	a.config = c
	a.db = db
	return a, nil
}

func newApp(d Deps) *App {
	a := &App{
		log:      d.Log,
		session:  d.Session,
		darkMode: d.DarkMode,
		splash:   d.Splash,
		auth:     d.Auth,
		content:  d.Content,
		workouts: d.Content.WorkoutFeed(),
		posts:    d.Content.PostFeed(),
		routes:   newRouteTable(),
		theme:    NewTheme(d.DarkMode.Get()),
		reader:   d.Reader,
		out:      d.Out,
		now:      time.Now,
	}

	d.DarkMode.Subscribe(func(dark bool) { a.theme = NewTheme(dark) })
	d.Session.Subscribe(func(st session.State) {
		if st.Token == "" {
			a.resetFeeds()
		}
	})
	return a
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run shows the splash (when started on "/"), validates a persisted session,
// opens initialPath and serves the REPL until the user exits.
func (a *App) Run(ctx context.Context, initialPath string) {
	defer a.Close()

	a.showSplash()
	a.restoreSession(ctx)

	_ = a.Navigate(ctx, initialPath)
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) restoreSession(ctx context.Context) {
	if a.session.State().Token == "" {
		return
	}
	if err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session validation failed", "err", err)
		if a.session.State().Token == "" {
			a.println(a.theme.Error.Render(sessionExpiredMessage))
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State().User != nil
}

func (a *App) status() string {
	s := "gymfeed"
	if u := a.session.State().User; u != nil {
		s += " (" + u.Username + ")"
	}
	return s + " " + a.location().Path
}

func (a *App) resetFeeds() {
	a.workouts.Remount()
	a.posts.Remount()
	a.active = feedNone
	a.shown = 0
	a.workout = nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printErr(err error, fallback string) {
	a.println(a.theme.Error.Render(client.MessageOf(err, fallback)))
}

// fail reports err and returns it. If the request ended the session, the
// current route is opened again so the guard sends the user to sign in and
// back here afterwards.
func (a *App) fail(ctx context.Context, err error, fallback string) error {
	if a.session.State().Token == "" {
		a.println(a.theme.Error.Render(sessionExpiredMessage))
		_ = a.navigate(ctx, a.location(), true)
		return err
	}
	a.printErr(err, fallback)
	return err
}

// ToggleDarkMode flips and persists the dark-mode preference.
func (a *App) ToggleDarkMode(ctx context.Context) error {
	if a.darkMode.Toggle(ctx) {
		a.println(a.theme.Muted.Render("Dark mode on"))
	} else {
		a.println(a.theme.Muted.Render("Dark mode off"))
	}
	return nil
}
