package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWin        Outcome = "win"
	OutcomeTie        Outcome = "tie"
)

type TurnResult int

const (
	Rejected TurnResult = iota
	Accepted
)

func (that TurnResult) String() string {
	if that == Accepted {
		return "accepted"
	}
	return "rejected"
}

var ErrInvalidFirstMover = errors.New("first mover must be 0 or 1")

// Game owns the board, both players and whose turn it is.
// Once the outcome leaves OutcomeInProgress nothing changes any more.
type Game struct {
	board   Board
	players [2]*Player
	current *Player

	outcome     Outcome
	winner      *Player
	winningLine Line
	moves       int
}

// NewGame starts a game in which players[firstMover] moves first.
func NewGame(first, second *Player, firstMover int) (*Game, error) {
	switch {
	case first == nil || second == nil:
		return nil, fmt.Errorf("%w: two players are required", apperror.ErrInvalidPlayer)
	case first == second:
		return nil, fmt.Errorf("%w: players must be distinct", apperror.ErrInvalidPlayer)
	case first.Mark() == second.Mark():
		return nil, fmt.Errorf("%w: both players use mark %s", apperror.ErrInvalidPlayer, first.Mark())
	case firstMover != 0 && firstMover != 1:
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidPlayer, ErrInvalidFirstMover)
	}

	players := [2]*Player{first, second}

	return &Game{
		players: players,
		current: players[firstMover],
		outcome: OutcomeInProgress,
	}, nil
}

// ApplyMove validates raw move text and, if it is legal, places the current
// player's mark, evaluates the result and passes the turn. A rejected move
// leaves the game exactly as it was.
func (that *Game) ApplyMove(raw string) (TurnResult, error) {
	if that.IsFinished() {
		return Rejected, apperror.ErrGameFinished
	}

	coord, err := ParseCoord(raw)
	if err != nil {
		return Rejected, err
	}

	if err = that.board.Place(coord, that.current.Mark()); err != nil {
		return Rejected, err
	}

	that.moves++
	that.evaluate()
	that.switchPlayer()

	return Accepted, nil
}

// evaluate looks for a win before it considers a tie, so that the move
// filling the last cell and completing a line is a win.
func (that *Game) evaluate() {
	if line, ok := that.board.WinningLine(); ok {
		that.outcome = OutcomeWin
		that.winner = that.current
		that.winningLine = line
		return
	}

	if that.board.RemainingEmptyCount() == 0 {
		that.outcome = OutcomeTie
	}
}

func (that *Game) switchPlayer() {
	if that.IsFinished() {
		return
	}

	if that.current == that.players[0] {
		that.current = that.players[1]
	} else {
		that.current = that.players[0]
	}
}

func (that *Game) Outcome() Outcome {
	return that.outcome
}

func (that *Game) IsFinished() bool {
	return that.outcome != OutcomeInProgress
}

// Winner returns nil unless the outcome is OutcomeWin.
func (that *Game) Winner() *Player {
	return that.winner
}

func (that *Game) WinningLine() (Line, bool) {
	return that.winningLine, that.outcome == OutcomeWin
}

func (that *Game) CurrentPlayer() *Player {
	return that.current
}

func (that *Game) Players() [2]*Player {
	return that.players
}

// Board returns a copy of the board.
func (that *Game) Board() Board {
	return that.board
}

func (that *Game) MoveCount() int {
	return that.moves
}
