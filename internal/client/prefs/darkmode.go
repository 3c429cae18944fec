package prefs

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/gymfeed/internal/client/storage"
	"github.com/dmitrijs2005/gymfeed/internal/logging"
)

// DarkMode is the persisted dark-mode preference. It defaults to false.
type DarkMode struct {
	mu        sync.Mutex
	value     bool
	observers map[int]func(bool)
	nextObs   int

	repo storage.Repository
	log  logging.Logger
}

// NewDarkMode builds the store and rehydrates it from repo. A missing or
// unparsable record yields false.
func NewDarkMode(ctx context.Context, repo storage.Repository, log logging.Logger) *DarkMode {
	d := &DarkMode{
		repo:      repo,
		log:       log.With("component", "prefs"),
		observers: make(map[int]func(bool)),
	}

	raw, err := repo.Get(ctx, storage.DarkModeKey)
	switch {
	case err != nil:
		d.log.Warn(ctx, "dark mode record unreadable, using default", "err", err)
	case raw != nil:
		if err := json.Unmarshal(raw, &d.value); err != nil {
			d.log.Warn(ctx, "dark mode record corrupted, using default", "err", err)
			d.value = false
		}
	}
	return d
}

func (d *DarkMode) Get() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

func (d *DarkMode) Set(ctx context.Context, v bool) {
	d.update(ctx, func(bool) bool { return v })
}

// Toggle flips the preference and returns the new value.
func (d *DarkMode) Toggle(ctx context.Context) bool {
	return d.update(ctx, func(cur bool) bool { return !cur })
}

// Subscribe registers fn to be called after every mutation.
func (d *DarkMode) Subscribe(fn func(bool)) func() {
	d.mu.Lock()
	id := d.nextObs
	d.nextObs++
	d.observers[id] = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.observers, id)
		d.mu.Unlock()
	}
}

func (d *DarkMode) update(ctx context.Context, fn func(bool) bool) bool {
	d.mu.Lock()
	d.value = fn(d.value)
	v := d.value
	obs := make([]func(bool), 0, len(d.observers))
	for _, o := range d.observers {
		obs = append(obs, o)
	}

	// persisted under the lock so records land in mutation order
	raw, _ := json.Marshal(v)
	if err := d.repo.Set(ctx, storage.DarkModeKey, raw); err != nil {
		d.log.Error(ctx, "failed to persist dark mode", "err", err)
	}
	d.mu.Unlock()

	for _, o := range obs {
		o(v)
	}
	return v
}
