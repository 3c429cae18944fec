package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gymfeed/internal/client/storage"
	"github.com/dmitrijs2005/gymfeed/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	records map[string][]byte
	getErr  error
	setErr  error
}

func newMemRepo() *memRepo { return &memRepo{records: map[string][]byte{}} }

func (m *memRepo) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.records[key], nil
}

func (m *memRepo) Set(_ context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.records[key] = value
	return nil
}

func (m *memRepo) Clear(context.Context) error { return nil }

func TestDarkMode_DefaultsToFalse(t *testing.T) {
	d := NewDarkMode(context.Background(), newMemRepo(), logging.Discard())
	assert.False(t, d.Get())
}

func TestDarkMode_RehydrateFallbacks(t *testing.T) {
	tests := []struct {
		name string
		repo *memRepo
		want bool
	}{
		{"stored true", &memRepo{records: map[string][]byte{storage.DarkModeKey: []byte("true")}}, true},
		{"stored false", &memRepo{records: map[string][]byte{storage.DarkModeKey: []byte("false")}}, false},
		{"unparsable", &memRepo{records: map[string][]byte{storage.DarkModeKey: []byte(`"yes"`)}}, false},
		{"read error", &memRepo{records: map[string][]byte{}, getErr: errors.New("io")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDarkMode(context.Background(), tt.repo, logging.Discard())
			assert.Equal(t, tt.want, d.Get())
		})
	}
}

func TestDarkMode_ToggleTwiceRestoresValue(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	d := NewDarkMode(ctx, repo, logging.Discard())
	orig := d.Get()

	assert.Equal(t, !orig, d.Toggle(ctx))
	assert.Equal(t, []byte("true"), repo.records[storage.DarkModeKey])

	assert.Equal(t, orig, d.Toggle(ctx))
	assert.Equal(t, []byte("false"), repo.records[storage.DarkModeKey])
	assert.Equal(t, orig, d.Get())
}

func TestDarkMode_SetPersistsAndSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := storage.NewSQLiteRepository(db)

	NewDarkMode(ctx, repo, logging.Discard()).Set(ctx, true)

	assert.True(t, NewDarkMode(ctx, repo, logging.Discard()).Get())
}

func TestDarkMode_PersistFailureKeepsValue(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	repo.setErr = errors.New("quota")
	d := NewDarkMode(ctx, repo, logging.Discard())

	d.Set(ctx, true)
	assert.True(t, d.Get())
}

func TestDarkMode_Subscribe(t *testing.T) {
	ctx := context.Background()
	d := NewDarkMode(ctx, newMemRepo(), logging.Discard())

	var seen []bool
	unsubscribe := d.Subscribe(func(v bool) { seen = append(seen, v) })
	d.Toggle(ctx)
	d.Set(ctx, false)
	unsubscribe()
	d.Toggle(ctx)

	assert.Equal(t, []bool{true, false}, seen)
}

func TestSplash(t *testing.T) {
	assert.True(t, NewSplash("/").Get())
	assert.False(t, NewSplash("/ranking").Get())
	assert.False(t, NewSplash("").Get())

	s := NewSplash("/")
	s.Set(false)
	assert.False(t, s.Get())
}
