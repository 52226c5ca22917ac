package app

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jaminalder/tictactoe/internal/domain"
	"github.com/jaminalder/tictactoe/internal/engine"
	"github.com/jaminalder/tictactoe/internal/game"
)

// Errors exposed by the service layer.
var (
	ErrNotFound = errors.New("session not found")
)

// SessionState is a copy of one session as seen by callers.
type SessionState struct {
	ID       string
	Snapshot domain.Snapshot
	Created  time.Time
	Updated  time.Time
}

type entry struct {
	session *game.Session
	created time.Time
	updated time.Time
}

func (e *entry) state(id string) SessionState {
	return SessionState{ID: id, Snapshot: e.session.Snapshot(), Created: e.created, Updated: e.updated}
}

type subscriber struct {
	ch        chan domain.Snapshot
	closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// subscriberBuffer bounds how far a subscriber may lag before it is dropped.
const subscriberBuffer = 4

// Service keeps in-memory sessions and serializes access to them.
type Service struct {
	mu       sync.Mutex
	rng      engine.Rand
	sessions map[string]*entry
	subs     map[string]map[*subscriber]struct{}
}

// NewService creates a service; rng feeds the Easy AI of every session and
// is only used under the service lock. A nil rng is seeded from the clock.
func NewService(rng engine.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		rng:      rng,
		sessions: make(map[string]*entry),
		subs:     make(map[string]map[*subscriber]struct{}),
	}
}

// CreateSession creates and registers a new session.
func (s *Service) CreateSession() (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	now := time.Now()
	e := &entry{session: game.NewSession(s.rng), created: now, updated: now}
	s.sessions[id] = e
	st := e.state(id)
	return &st, nil
}

// Get returns a copy of the session state if present.
func (s *Service) Get(id string) (*SessionState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	st := e.state(id)
	return &st, true
}

// Play applies a human move at idx.
func (s *Service) Play(id string, idx int) (*SessionState, error) {
	return s.update(id, func(g *game.Session) error {
		_, err := g.ApplyHumanMove(idx)
		return err
	})
}

// PlayAI lets the AI reply when it is due; otherwise the session is unchanged.
func (s *Service) PlayAI(id string) (*SessionState, error) {
	return s.update(id, func(g *game.Session) error {
		g.ApplyAIMove()
		return nil
	})
}

// ResetRound starts a new round keeping score and mode.
func (s *Service) ResetRound(id string) (*SessionState, error) {
	return s.update(id, func(g *game.Session) error {
		g.ResetRound()
		return nil
	})
}

// SetMode switches mode (and difficulty if given) and starts a new round.
func (s *Service) SetMode(id string, mode domain.Mode, difficulty ...domain.Difficulty) (*SessionState, error) {
	return s.update(id, func(g *game.Session) error {
		g.SetMode(mode, difficulty...)
		return nil
	})
}

// ResetScores zeroes the session score.
func (s *Service) ResetScores(id string) (*SessionState, error) {
	return s.update(id, func(g *game.Session) error {
		g.ResetScores()
		return nil
	})
}

// update runs fn under the lock and broadcasts the new snapshot if it changed.
func (s *Service) update(id string, fn func(*game.Session) error) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	before := e.session.Snapshot()
	if err := fn(e.session); err != nil {
		st := e.state(id)
		return &st, err
	}
	if after := e.session.Snapshot(); after != before {
		e.updated = time.Now()
		s.broadcastLocked(id, after)
	}
	st := e.state(id)
	return &st, nil
}

// broadcastLocked fans snap out without blocking; subscribers whose buffer is
// full are closed and dropped.
func (s *Service) broadcastLocked(id string, snap domain.Snapshot) {
	set := s.subs[id]
	for sub := range set {
		select {
		case sub.ch <- snap:
		default:
			delete(set, sub)
			sub.close()
		}
	}
}

// Subscribe registers a subscriber for a session. Returns a channel of
// snapshots and an unsubscribe func; ctx cancellation also unsubscribes.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan domain.Snapshot, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return nil, nil, ErrNotFound
	}
	set := s.subs[id]
	if set == nil {
		set = make(map[*subscriber]struct{})
		s.subs[id] = set
	}
	sub := &subscriber{ch: make(chan domain.Snapshot, subscriberBuffer)}
	set[sub] = struct{}{}

	done := make(chan struct{})
	unsubOnce := &sync.Once{}
	unsub := func() {
		unsubOnce.Do(func() {
			close(done)
			s.mu.Lock()
			defer s.mu.Unlock()
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
			}
			sub.close()
		})
	}
	go func() {
		select {
		case <-ctx.Done():
			unsub()
		case <-done:
		}
	}()
	return sub.ch, unsub, nil
}
