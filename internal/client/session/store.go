package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gymfeed/internal/client/client"
	"github.com/dmitrijs2005/gymfeed/internal/client/models"
	"github.com/dmitrijs2005/gymfeed/internal/client/storage"
	"github.com/dmitrijs2005/gymfeed/internal/logging"
)

var (
	ErrNoToken       = errors.New("no session token")
	ErrStaleResponse = errors.New("stale profile response")
)

// State is a snapshot of the session. An empty Token means signed out.
type State struct {
	Token string
	User  *models.Profile
}

// Authenticated reports whether both the token and the profile are present.
func (s State) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Ticket identifies one profile request. Only the most recent ticket may
// apply its result.
type Ticket uint64

// ProfileSource fetches the profile for a token.
type ProfileSource interface {
	Profile(ctx context.Context, token string) (*models.Profile, error)
}

// persisted is the on-disk shape of the session record.
type persisted struct {
	Token *string         `json:"token"`
	User  *models.Profile `json:"user"`
}

type Store struct {
	mu        sync.Mutex
	state     State
	ticket    Ticket
	observers map[int]func(State)
	nextObs   int

	persistMu sync.Mutex
	repo      storage.Repository
	log       logging.Logger
	now       func() time.Time
}

// NewStore builds a Store and rehydrates it from repo.
func NewStore(ctx context.Context, repo storage.Repository, log logging.Logger) *Store {
	s := &Store{
		repo:      repo,
		log:       log.With("component", "session"),
		observers: make(map[int]func(State)),
		now:       time.Now,
	}
	s.state = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) State {
	raw, err := s.repo.Get(ctx, storage.SessionKey)
	if err != nil {
		s.log.Warn(ctx, "session record unreadable, starting signed out", "err", err)
		return State{}
	}
	if raw == nil {
		return State{}
	}

	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		s.log.Warn(ctx, "session record corrupted, starting signed out", "err", err)
		return State{}
	}

	var st State
	if p.Token != nil {
		st.Token = *p.Token
	}
	if st.Token != "" {
		st.User = p.User
	}
	return st
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called with the new state after every
// mutation. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// SetToken replaces the token. The cached profile is kept; profile requests
// issued for the previous token are invalidated.
func (s *Store) SetToken(ctx context.Context, token string) {
	s.mutate(ctx, func(st *State) {
		st.Token = token
		s.ticket++
	})
}

// SetUser replaces the cached profile.
func (s *Store) SetUser(ctx context.Context, p *models.Profile) {
	s.mutate(ctx, func(st *State) { st.User = p })
}

// Logout clears the token and the profile together.
func (s *Store) Logout(ctx context.Context) {
	s.mutate(ctx, func(st *State) {
		*st = State{}
		s.ticket++
	})
}

// BeginProfileFetch issues a ticket for a new profile request.
func (s *Store) BeginProfileFetch() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticket++
	return s.ticket
}

// SetUserIfCurrent applies p only if t is still the latest ticket.
func (s *Store) SetUserIfCurrent(ctx context.Context, t Ticket, p *models.Profile) bool {
	return s.mutateIf(ctx, t, func(st *State) { st.User = p })
}

// LogoutIfCurrent signs out only if t is still the latest ticket.
func (s *Store) LogoutIfCurrent(ctx context.Context, t Ticket) bool {
	return s.mutateIf(ctx, t, func(st *State) { *st = State{} })
}

// LogoutIfToken signs out only if token is still the session token.
func (s *Store) LogoutIfToken(ctx context.Context, token string) bool {
	return s.mutateWhen(ctx, func() bool { return s.state.Token == token }, func(st *State) {
		*st = State{}
		s.ticket++
	})
}

// RefreshProfile fetches the profile for the current token and caches it.
//
// An expired token or an authentication error from src signs the session
// out, unless a newer request was issued in the meantime. Any result of a
// superseded request, failures included, is reported as ErrStaleResponse.
func (s *Store) RefreshProfile(ctx context.Context, src ProfileSource) error {
	token := s.State().Token
	if token == "" {
		return ErrNoToken
	}
	t := s.BeginProfileFetch()

	if TokenExpired(token, s.now()) {
		err := fmt.Errorf("token expired: %w", client.ErrUnauthorized)
		if !s.LogoutIfCurrent(ctx, t) {
			return fmt.Errorf("%w: %w", ErrStaleResponse, err)
		}
		s.log.Warn(ctx, "session token expired, signed out")
		return err
	}

	p, err := src.Profile(ctx, token)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) && s.LogoutIfCurrent(ctx, t) {
			s.log.Warn(ctx, "profile request rejected, signed out", "err", err)
			return err
		}
		if !s.isCurrent(t) {
			return fmt.Errorf("%w: %w", ErrStaleResponse, err)
		}
		return err
	}

	if !s.SetUserIfCurrent(ctx, t, p) {
		return ErrStaleResponse
	}
	return nil
}

func (s *Store) isCurrent(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t == s.ticket
}

func (s *Store) mutate(ctx context.Context, fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	st := s.state
	obs := s.snapshotObservers()
	s.mu.Unlock()

	s.commit(ctx, st, obs)
}

func (s *Store) mutateIf(ctx context.Context, t Ticket, fn func(*State)) bool {
	return s.mutateWhen(ctx, func() bool { return t == s.ticket }, fn)
}

// mutateWhen applies fn only if ok holds. ok runs under the lock.
func (s *Store) mutateWhen(ctx context.Context, ok func() bool, fn func(*State)) bool {
	s.mu.Lock()
	if !ok() {
		s.mu.Unlock()
		return false
	}
	fn(&s.state)
	st := s.state
	obs := s.snapshotObservers()
	s.mu.Unlock()

	s.commit(ctx, st, obs)
	return true
}

func (s *Store) snapshotObservers() []func(State) {
	obs := make([]func(State), 0, len(s.observers))
	for _, fn := range s.observers {
		obs = append(obs, fn)
	}
	return obs
}

func (s *Store) commit(ctx context.Context, st State, obs []func(State)) {
	s.persist(ctx)
	for _, fn := range obs {
		fn(st)
	}
}

// persist writes the latest state. Writes are serialized and always carry
// the current snapshot, so the record never lags behind a later mutation.
func (s *Store) persist(ctx context.Context) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	st := s.State()
	var p persisted
	if st.Token != "" {
		p.Token = &st.Token
		p.User = st.User
	}

	raw, err := json.Marshal(p)
	if err != nil {
		s.log.Error(ctx, "failed to encode session", "err", err)
		return
	}
	if err := s.repo.Set(ctx, storage.SessionKey, raw); err != nil {
		s.log.Error(ctx, "failed to persist session", "err", err)
	}
}
