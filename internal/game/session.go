package game

import (
	"math/rand"
	"time"

	"github.com/jaminalder/tictactoe/internal/domain"
	"github.com/jaminalder/tictactoe/internal/engine"
)

// Session owns the current snapshot of one game and replaces it on every
// transition. It does no locking; callers serialize access.
type Session struct {
	snap domain.Snapshot
	rng  engine.Rand
}

// NewSession starts a session drawing Easy-mode randomness from rng.
// A nil rng is seeded from the clock.
func NewSession(rng engine.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{snap: New(), rng: rng}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() domain.Snapshot { return s.snap }

// AwaitingAI reports whether ApplyAIMove would play.
func (s *Session) AwaitingAI() bool { return s.snap.AwaitingAI() }

// ApplyHumanMove plays the current turn at idx; see the package-level
// ApplyHumanMove.
func (s *Session) ApplyHumanMove(idx int) (domain.Snapshot, error) {
	next, err := ApplyHumanMove(s.snap, idx)
	if err != nil {
		return s.snap, err
	}
	s.snap = next
	return next, nil
}

// ApplyAIMove lets the AI reply when it is due.
func (s *Session) ApplyAIMove() domain.Snapshot {
	s.snap = ApplyAIMove(s.snap, s.rng)
	return s.snap
}

// ResetRound clears the board and keeps score and mode.
func (s *Session) ResetRound() domain.Snapshot {
	s.snap = ResetRound(s.snap)
	return s.snap
}

// SetMode switches mode (and difficulty if given) and resets the round.
func (s *Session) SetMode(mode domain.Mode, difficulty ...domain.Difficulty) domain.Snapshot {
	s.snap = SetMode(s.snap, mode, difficulty...)
	return s.snap
}

// ResetScores zeroes the score.
func (s *Session) ResetScores() domain.Snapshot {
	s.snap = ResetScores(s.snap)
	return s.snap
}
