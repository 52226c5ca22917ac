package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/jaminalder/tictactoe/internal/domain"
)

// scriptedRand replays fixed draws so difficulty branches are deterministic.
type scriptedRand struct {
	floats []float64
	ints   []int
	intArg []int
}

func (s *scriptedRand) Float64() float64 {
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedRand) Intn(n int) int {
	s.intArg = append(s.intArg, n)
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func TestChooseMoveHardIsOptimal(t *testing.T) {
	b := board(t, "XX..O....")
	// Hard never consults the source.
	move, err := ChooseMove(b, domain.Hard, &scriptedRand{})
	if err != nil || move != 2 {
		t.Fatalf("expected block at 2, got %d err=%v", move, err)
	}
}

func TestChooseMoveEasyRandomBranch(t *testing.T) {
	b := board(t, "XX..O....")
	r := &scriptedRand{floats: []float64{0.69}, ints: []int{3}}
	move, err := ChooseMove(b, domain.Easy, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// empty cells are 2,3,5,6,7,8; index 3 of that list is 6
	if move != 6 {
		t.Fatalf("expected random pick 6, got %d", move)
	}
	if len(r.intArg) != 1 || r.intArg[0] != 6 {
		t.Fatalf("expected Intn(6), got %v", r.intArg)
	}
}

func TestChooseMoveEasyOptimalBranch(t *testing.T) {
	b := board(t, "XX..O....")
	r := &scriptedRand{floats: []float64{0.7}}
	move, err := ChooseMove(b, domain.Easy, r)
	if err != nil || move != 2 {
		t.Fatalf("expected optimal block at 2, got %d err=%v", move, err)
	}
	if len(r.intArg) != 0 {
		t.Fatalf("optimal branch must not draw a cell, got %v", r.intArg)
	}
}

func TestChooseMoveEasyAlwaysLegal(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	b := board(t, "XO.X.O...")
	for i := 0; i < 200; i++ {
		move, err := ChooseMove(b, domain.Easy, r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !domain.ValidIndex(move) || b[move] != domain.Empty {
			t.Fatalf("illegal move %d on %v", move, b)
		}
	}
}

func TestChooseMoveSeededIsReproducible(t *testing.T) {
	b := board(t, "X........")
	a := rand.New(rand.NewSource(42))
	c := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		m1, _ := ChooseMove(b, domain.Easy, a)
		m2, _ := ChooseMove(b, domain.Easy, c)
		if m1 != m2 {
			t.Fatalf("draw %d: same seed produced %d and %d", i, m1, m2)
		}
	}
}

func TestChooseMoveNoMoves(t *testing.T) {
	if _, err := ChooseMove(board(t, "XOXXOOOXX"), domain.Hard, nil); !errors.Is(err, ErrNoMoves) {
		t.Fatalf("expected ErrNoMoves on full board, got %v", err)
	}
	if _, err := ChooseMove(board(t, "XXXOO...."), domain.Easy, nil); !errors.Is(err, ErrNoMoves) {
		t.Fatalf("expected ErrNoMoves on decided board, got %v", err)
	}
}

func TestChooseMoveEasyWithoutSourceIsOptimal(t *testing.T) {
	move, err := ChooseMove(board(t, "XX..O...."), domain.Easy, nil)
	if err != nil || move != 2 {
		t.Fatalf("expected optimal block at 2, got %d err=%v", move, err)
	}
}
