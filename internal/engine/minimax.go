// Package engine picks moves for the O side by exhaustive minimax search.
package engine

import "github.com/jaminalder/tictactoe/internal/domain"

// winScore is the value of an immediate win for O; depth is subtracted so
// faster wins (and slower losses) score better.
const winScore = 10

// Search returns the minimax value of b. O maximizes, X minimizes.
// b is a copy, so marks placed during the search never leak to the caller.
func Search(b domain.Board, depth int, maximizing bool) int {
	if w, _, ok := domain.Detect(b); ok {
		if w == domain.O {
			return winScore - depth
		}
		return depth - winScore
	}
	if domain.IsFull(b) {
		return 0
	}

	side := domain.X
	if maximizing {
		side = domain.O
	}
	best := 0
	first := true
	for i := range b {
		if b[i] != domain.Empty {
			continue
		}
		b[i] = side
		score := Search(b, depth+1, !maximizing)
		b[i] = domain.Empty
		if first || (maximizing && score > best) || (!maximizing && score < best) {
			best = score
			first = false
		}
	}
	return best
}

// BestMove returns the index side should play and its minimax value.
// Ties resolve to the lowest index. It returns -1 when no cell is empty.
func BestMove(b domain.Board, side domain.Cell) (int, int) {
	maximizing := side == domain.O
	move, best := -1, 0
	for i := range b {
		if b[i] != domain.Empty {
			continue
		}
		b[i] = side
		score := Search(b, 0, !maximizing)
		b[i] = domain.Empty
		if move < 0 || (maximizing && score > best) || (!maximizing && score < best) {
			move, best = i, score
		}
	}
	return move, best
}
