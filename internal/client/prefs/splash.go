package prefs

import "sync"

// Splash tells whether the splash banner should still be shown.
type Splash struct {
	mu    sync.Mutex
	value bool
}

// NewSplash computes the flag from the route the client started on: the
// splash is shown only for the root route.
func NewSplash(initialPath string) *Splash {
	return &Splash{value: initialPath == "/"}
}

func (s *Splash) Get() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *Splash) Set(v bool) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
}
