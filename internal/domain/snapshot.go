package domain

import (
	"fmt"
	"strings"
)

// Phase is the round state derived after every move.
type Phase uint8

const (
	Playing Phase = iota
	Won
	Draw
)

func (p Phase) String() string {
	switch p {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "playing"
	}
}

// Mode selects who controls O.
type Mode uint8

const (
	HumanVsHuman Mode = iota
	HumanVsAI
)

func (m Mode) String() string {
	if m == HumanVsAI {
		return "ai"
	}
	return "human"
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText accepts "human" or "ai" (case-insensitive).
func (m *Mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "human", "hvh":
		*m = HumanVsHuman
	case "ai", "hva":
		*m = HumanVsAI
	default:
		return fmt.Errorf("unknown mode %q", text)
	}
	return nil
}

// Difficulty tunes the AI; it only matters under HumanVsAI.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Hard
)

func (d Difficulty) String() string {
	if d == Hard {
		return "hard"
	}
	return "easy"
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText accepts "easy" or "hard" (case-insensitive).
func (d *Difficulty) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "easy":
		*d = Easy
	case "hard":
		*d = Hard
	default:
		return fmt.Errorf("unknown difficulty %q", text)
	}
	return nil
}

// Score counts finished rounds.
type Score struct {
	WinsX int
	WinsO int
	Draws int
}

// Snapshot is the complete, comparable state of a session at one instant.
// Winner and WinningLine are only meaningful when Phase is Won.
type Snapshot struct {
	Board       Board
	Turn        Cell
	Phase       Phase
	Winner      Cell
	WinningLine Line
	Mode        Mode
	Difficulty  Difficulty
	Score       Score
	Moves       int
}

// NewSnapshot returns the process-start state.
func NewSnapshot() Snapshot {
	return Snapshot{Turn: X, Mode: HumanVsHuman, Difficulty: Easy}
}

// Line returns the winning line when the round was won.
func (s Snapshot) Line() (Line, bool) {
	if s.Phase != Won {
		return Line{}, false
	}
	return s.WinningLine, true
}

// Over reports whether the round has finished.
func (s Snapshot) Over() bool { return s.Phase != Playing }

// AwaitingAI reports whether the AI should reply next.
func (s Snapshot) AwaitingAI() bool {
	return s.Phase == Playing && s.Mode == HumanVsAI && s.Turn == O
}
