// Package tictactoe parses command configuration and runs the terminal game.
package tictactoe

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jaminalder/tictactoe/internal/app"
	"github.com/jaminalder/tictactoe/internal/domain"
	"github.com/jaminalder/tictactoe/internal/term"
)

// Config holds command configuration.
type Config struct {
	Mode       domain.Mode       `env:"TICTACTOE_MODE" envDefault:"human"`
	Difficulty domain.Difficulty `env:"TICTACTOE_DIFFICULTY" envDefault:"easy"`
	AIDelay    time.Duration     `env:"TICTACTOE_AI_DELAY" envDefault:"400ms"`
	Seed       int64             `env:"TICTACTOE_SEED"`
	Color      bool              `env:"TICTACTOE_COLOR" envDefault:"true"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.TextVar(&cfg.Mode, "mode", cfg.Mode, "Game mode: human or ai")
	fs.TextVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "AI difficulty: easy or hard")
	fs.DurationVar(&cfg.AIDelay, "ai-delay", cfg.AIDelay, "Pause before the AI replies")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the easy AI (0 uses the clock)")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "Colorize the board")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.AIDelay < 0 {
		return Config{}, fmt.Errorf("ai delay must not be negative, got %s", cfg.AIDelay)
	}
	return cfg, nil
}

// Run plays sessions read from in until quit, EOF or ctx is done.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	svc := app.NewService(rand.New(rand.NewSource(seed)))
	st, err := svc.CreateSession()
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	id := st.ID
	log.Printf("session %s started (mode=%s difficulty=%s)", id, cfg.Mode, cfg.Difficulty)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	updates, unsub, err := svc.Subscribe(ctx, id)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	defer unsub()
	done := make(chan struct{})
	go func() {
		defer close(done)
		logRounds(id, updates)
	}()
	defer func() {
		cancel()
		<-done
	}()

	if st, err = svc.SetMode(id, cfg.Mode, cfg.Difficulty); err != nil {
		return err
	}

	r := term.NewRenderer(out, cfg.Color)
	r.Printf("type help for commands")
	if err := r.Print(st.Snapshot); err != nil {
		return err
	}

	lines := readLines(ctx, in)
	for {
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			line = l
		}

		cmd, err := term.ParseCommand(line)
		if err != nil {
			r.Printf("%v (type help)", err)
			continue
		}

		switch cmd.Kind {
		case term.Quit:
			return nil
		case term.Help:
			r.Printf("%s", term.HelpText)
			continue
		case term.Move:
			prev := st.Snapshot
			st, err = svc.Play(id, cmd.Index)
			switch {
			case errors.Is(err, domain.ErrInvalidIndex):
				r.Printf("cell %d is out of range, use 0-8", cmd.Index)
				continue
			case err != nil:
				return err
			case st.Snapshot == prev:
				r.Printf("%s", ignoredReason(prev, cmd.Index))
				continue
			}
		case term.Reset:
			st, err = svc.ResetRound(id)
		case term.ResetScores:
			st, err = svc.ResetScores(id)
		case term.SetMode:
			if cmd.HasDifficulty {
				st, err = svc.SetMode(id, cmd.Mode, cmd.Difficulty)
			} else {
				st, err = svc.SetMode(id, cmd.Mode)
			}
		}
		if err != nil {
			return err
		}
		if err := r.Print(st.Snapshot); err != nil {
			return err
		}

		if st.Snapshot.AwaitingAI() {
			if err := sleep(ctx, cfg.AIDelay); err != nil {
				return err
			}
			if st, err = svc.PlayAI(id); err != nil {
				return err
			}
			if err := r.Print(st.Snapshot); err != nil {
				return err
			}
		}
	}
}

func ignoredReason(s domain.Snapshot, idx int) string {
	switch {
	case s.Over():
		return "round is over, type reset to play again"
	case s.Board[idx] != domain.Empty:
		return fmt.Sprintf("cell %d is taken", idx)
	default:
		return "not your turn"
	}
}

// logRounds logs every finished round until the subscription closes.
func logRounds(id string, updates <-chan domain.Snapshot) {
	for s := range updates {
		switch s.Phase {
		case domain.Won:
			log.Printf("session %s: %s wins on %v (X %d, O %d, draws %d)", id, s.Winner, s.WinningLine, s.Score.WinsX, s.Score.WinsO, s.Score.Draws)
		case domain.Draw:
			log.Printf("session %s: draw (X %d, O %d, draws %d)", id, s.Score.WinsX, s.Score.WinsO, s.Score.Draws)
		}
	}
}

func readLines(ctx context.Context, in io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
