// Package server initializes and runs the GymFeed front server. It wires the
// static asset store, the API proxy and the HTTP listener, and shuts down
// gracefully on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gymfeed/internal/logging"
	"github.com/dmitrijs2005/gymfeed/internal/server/config"
	"github.com/dmitrijs2005/gymfeed/internal/server/httpserver"
	"github.com/dmitrijs2005/gymfeed/internal/server/static"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	handler http.Handler
	closer  io.Closer
}

// newS3Store and newDirStore are test seams.
var (
	newS3Store = func(ctx context.Context, o static.S3Options) (static.Store, error) {
		return static.NewS3Store(ctx, o)
	}
	newDirStore = func(dir string) (static.Store, error) {
		return static.NewDirStore(dir)
	}
)

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(c.LogLevel))
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	backend, err := parseBackendURL(c.BackendURL)
	if err != nil {
		return nil, err
	}

	store, err := openStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("static store init error: %w", err)
	}

	h := httpserver.NewRouter(httpserver.RouterConfig{
		Backend:         backend,
		InsecureBackend: c.InsecureBackend,
		AllowedOrigins:  c.AllowedOrigins,
	}, static.Handler(store, logger), logger)

	app := &App{config: c, logger: logger, handler: h}
	if cl, ok := store.(io.Closer); ok {
		app.closer = cl
	}
	return app, nil
}

func parseBackendURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid backend URL %q: want http(s)://host[:port]", raw)
	}
	return u, nil
}

func openStore(ctx context.Context, c *config.Config) (static.Store, error) {
	if c.S3Bucket != "" {
		return newS3Store(ctx, static.S3Options{
			Bucket:       c.S3Bucket,
			Prefix:       c.S3Prefix,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
		})
	}
	return newDirStore(c.PublicDir)
}

// Handler exposes the assembled router.
func (app *App) Handler() http.Handler {
	return app.handler
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"backend", app.config.BackendURL,
		"static", app.staticSource())

	app.initSignalHandler(cancelFunc)

	s := httpserver.NewHTTPServer(app.config.Addr, app.handler, app.config.ShutdownTimeout, app.logger)
	err := s.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if app.closer != nil {
		_ = app.closer.Close()
	}
	return err
}

func (app *App) staticSource() string {
	if app.config.S3Bucket != "" {
		return "s3://" + app.config.S3Bucket + "/" + app.config.S3Prefix
	}
	return app.config.PublicDir
}
