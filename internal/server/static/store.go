// Package static serves the web build of the client: from a local directory
// or from an S3-compatible bucket, with a single-page-app fallback to
// index.html.
package static

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"
)

// ErrNotFound is returned by a Store for names it does not hold.
var ErrNotFound = errors.New("asset not found")

// Object is an opened asset. Body may implement io.ReadSeeker, in which
// case range and conditional requests are honoured.
type Object struct {
	Body        io.ReadCloser
	Size        int64
	ModTime     time.Time
	ContentType string
}

// Store resolves asset names such as "/index.html".
type Store interface {
	Get(ctx context.Context, name string) (*Object, error)
}

// DirStore serves files below a local directory. Names cannot escape it.
type DirStore struct {
	root *os.Root
}

func NewDirStore(dir string) (*DirStore, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open public dir: %w", err)
	}
	return &DirStore{root: root}, nil
}

func (s *DirStore) Get(_ context.Context, name string) (*Object, error) {
	rel := strings.TrimPrefix(path.Clean("/"+name), "/")
	if rel == "" {
		return nil, ErrNotFound
	}

	f, err := s.root.Open(rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, ErrNotFound
	}

	return &Object{Body: f, Size: info.Size(), ModTime: info.ModTime()}, nil
}

func (s *DirStore) Close() error {
	return s.root.Close()
}
