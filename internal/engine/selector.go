package engine

import (
	"errors"

	"github.com/jaminalder/tictactoe/internal/domain"
)

// easyRandomRate is the share of Easy moves picked at random.
const easyRandomRate = 0.7

var (
	// ErrNoMoves is returned for a full or already decided board.
	ErrNoMoves = errors.New("no legal moves")
)

// Rand is the randomness ChooseMove draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// ChooseMove returns the cell the AI (O) plays on b. A nil r disables the
// random Easy branch, so every move is optimal.
func ChooseMove(b domain.Board, d domain.Difficulty, r Rand) (int, error) {
	if _, _, won := domain.Detect(b); won {
		return -1, ErrNoMoves
	}
	empty := domain.EmptyCells(b)
	if len(empty) == 0 {
		return -1, ErrNoMoves
	}
	if d == domain.Easy && r != nil && r.Float64() < easyRandomRate {
		return empty[r.Intn(len(empty))], nil
	}
	move, _ := BestMove(b, domain.O)
	return move, nil
}
