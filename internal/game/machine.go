// Package game holds the round state machine. Every transition takes a
// snapshot by value and returns a new one; invalid input returns the input
// unchanged.
package game

import (
	"fmt"

	"github.com/jaminalder/tictactoe/internal/domain"
	"github.com/jaminalder/tictactoe/internal/engine"
)

// New returns the initial snapshot: empty board, X to move, human vs human.
func New() domain.Snapshot {
	return domain.NewSnapshot()
}

// ApplyHumanMove plays the current turn at idx (0..8).
// Out-of-range indices fail with ErrInvalidIndex; every other illegal move is
// ignored and s is returned as is.
func ApplyHumanMove(s domain.Snapshot, idx int) (domain.Snapshot, error) {
	if !domain.ValidIndex(idx) {
		return s, fmt.Errorf("%w: %d", domain.ErrInvalidIndex, idx)
	}
	if s.Phase != domain.Playing || s.Board[idx] != domain.Empty {
		return s, nil
	}
	if s.Mode == domain.HumanVsAI && s.Turn == domain.O {
		return s, nil
	}
	return place(s, idx), nil
}

// ApplyAIMove lets the AI play O. It is a no-op unless the round is in
// progress, O is to move and the mode is HumanVsAI.
func ApplyAIMove(s domain.Snapshot, r engine.Rand) domain.Snapshot {
	if !s.AwaitingAI() {
		return s
	}
	idx, err := engine.ChooseMove(s.Board, s.Difficulty, r)
	if err != nil || s.Board[idx] != domain.Empty {
		return s
	}
	next := place(s, idx)
	next.Turn = domain.X
	return next
}

// ResetRound clears the board and keeps score, mode and difficulty.
func ResetRound(s domain.Snapshot) domain.Snapshot {
	s.Board = domain.Board{}
	s.Turn = domain.X
	s.Phase = domain.Playing
	s.Winner = domain.Empty
	s.WinningLine = domain.Line{}
	s.Moves = 0
	return s
}

// SetMode switches mode, and difficulty when one is given, then resets the
// round.
func SetMode(s domain.Snapshot, mode domain.Mode, difficulty ...domain.Difficulty) domain.Snapshot {
	s.Mode = mode
	if len(difficulty) > 0 {
		s.Difficulty = difficulty[0]
	}
	return ResetRound(s)
}

// ResetScores zeroes the score.
func ResetScores(s domain.Snapshot) domain.Snapshot {
	s.Score = domain.Score{}
	return s
}

// place puts the current turn's mark on idx and evaluates the result.
// s is a copy so the caller's snapshot is untouched.
func place(s domain.Snapshot, idx int) domain.Snapshot {
	s.Board[idx] = s.Turn
	s.Moves++

	if w, line, ok := domain.Detect(s.Board); ok {
		s.Phase = domain.Won
		s.Winner = w
		s.WinningLine = line
		if w == domain.X {
			s.Score.WinsX++
		} else {
			s.Score.WinsO++
		}
		return s
	}

	if domain.IsFull(s.Board) {
		s.Phase = domain.Draw
		s.Score.Draws++
		return s
	}

	s.Turn = s.Turn.Opponent()
	return s
}
