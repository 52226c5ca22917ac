// Package term draws snapshots for a terminal and parses typed commands.
package term

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jaminalder/tictactoe/internal/domain"
	"github.com/muesli/termenv"
)

// Renderer styles snapshots for one output.
type Renderer struct {
	w   io.Writer
	out *termenv.Output
}

// NewRenderer writes to w. With color off, output is plain ASCII.
func NewRenderer(w io.Writer, color bool) *Renderer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{w: w, out: termenv.NewOutput(w, opts...)}
}

// Print writes the rendered snapshot.
func (r *Renderer) Print(s domain.Snapshot) error {
	_, err := io.WriteString(r.w, r.Render(s))
	return err
}

// Printf writes a plain message line.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format+"\n", args...)
}

// Render draws the grid, status, mode and score. Empty cells show their
// index so players know what to type.
func (r *Renderer) Render(s domain.Snapshot) string {
	var win [9]bool
	if line, ok := s.Line(); ok {
		for _, i := range line {
			win[i] = true
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteString("---+---+---\n")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				b.WriteString("|")
			}
			i := row*3 + col
			b.WriteString(" " + r.cell(s.Board[i], i, win[i]) + " ")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.status(s) + "\n")
	b.WriteString(modeLine(s) + "\n")
	fmt.Fprintf(&b, "score: X %d | O %d | draws %d\n", s.Score.WinsX, s.Score.WinsO, s.Score.Draws)
	return b.String()
}

func (r *Renderer) cell(c domain.Cell, idx int, winning bool) string {
	switch {
	case c == domain.Empty:
		return r.out.String(strconv.Itoa(idx)).Faint().String()
	case winning:
		return r.out.String(c.String()).Foreground(r.out.Color("2")).Bold().Underline().String()
	case c == domain.X:
		return r.out.String(c.String()).Foreground(r.out.Color("1")).String()
	default:
		return r.out.String(c.String()).Foreground(r.out.Color("4")).String()
	}
}

func (r *Renderer) status(s domain.Snapshot) string {
	switch s.Phase {
	case domain.Won:
		return r.out.String(s.Winner.String() + " wins").Bold().String()
	case domain.Draw:
		return r.out.String("Draw").Bold().String()
	}
	if s.AwaitingAI() {
		return "O to move (AI)"
	}
	return s.Turn.String() + " to move"
}

func modeLine(s domain.Snapshot) string {
	if s.Mode == domain.HumanVsAI {
		return "mode: human vs ai (" + s.Difficulty.String() + ")"
	}
	return "mode: human vs human"
}
