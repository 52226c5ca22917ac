package term

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jaminalder/tictactoe/internal/domain"
)

var (
	// ErrUnknownCommand is returned for input ParseCommand cannot read.
	ErrUnknownCommand = errors.New("unknown command")
)

// Kind identifies a parsed command.
type Kind int

const (
	Move Kind = iota
	Reset
	SetMode
	ResetScores
	Help
	Quit
)

// Command is one line of player input.
type Command struct {
	Kind  Kind
	Index int // Move

	// SetMode
	Mode          domain.Mode
	Difficulty    domain.Difficulty
	HasDifficulty bool
}

// HelpText lists the accepted commands.
const HelpText = `commands:
  0-8                 mark a cell
  reset               start a new round
  mode human          two players at one keyboard
  mode ai [easy|hard] play against the computer
  scores reset        zero the score
  help                show this text
  quit                leave`

// ParseCommand parses a line. Any integer is a move; range checking is left
// to the game so out-of-range cells are reported as such.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}
	if n, err := strconv.Atoi(fields[0]); err == nil && len(fields) == 1 {
		return Command{Kind: Move, Index: n}, nil
	}

	switch fields[0] {
	case "reset", "r":
		if len(fields) == 1 {
			return Command{Kind: Reset}, nil
		}
	case "reset-scores":
		if len(fields) == 1 {
			return Command{Kind: ResetScores}, nil
		}
	case "scores", "score":
		if len(fields) == 2 && fields[1] == "reset" {
			return Command{Kind: ResetScores}, nil
		}
	case "help", "?", "h":
		return Command{Kind: Help}, nil
	case "quit", "exit", "q":
		return Command{Kind: Quit}, nil
	case "mode":
		return parseMode(fields[1:])
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
}

func parseMode(args []string) (Command, error) {
	if len(args) == 0 || len(args) > 2 {
		return Command{}, fmt.Errorf("%w: mode needs human or ai", ErrUnknownCommand)
	}
	cmd := Command{Kind: SetMode}
	if err := cmd.Mode.UnmarshalText([]byte(args[0])); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrUnknownCommand, err)
	}
	if len(args) == 2 {
		if err := cmd.Difficulty.UnmarshalText([]byte(args[1])); err != nil {
			return Command{}, fmt.Errorf("%w: %v", ErrUnknownCommand, err)
		}
		cmd.HasDifficulty = true
	}
	return cmd, nil
}
