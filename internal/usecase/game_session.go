package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// GameSession drives one game from asking for names to announcing the result.
type GameSession interface {
	Run(ctx context.Context) (*entity.Game, error)
}

type consoleDep interface {
	RequestPlayerNames(ctx context.Context) (string, string, error)
	Welcome(game *entity.Game) error
	RequestMove(ctx context.Context, player *entity.Player, retry bool) (string, error)
	RenderBoard(board entity.Board) error
	AnnounceResult(game *entity.Game) error
}

type gameSession struct {
	logger  *slog.Logger
	console consoleDep

	firstPlayer string
	maxAttempts int
	coinFlip    func() int
}

func NewGameSession(logger *slog.Logger, console consoleDep, conf config.Game) GameSession {
	return &gameSession{
		logger:      logger,
		console:     console,
		firstPlayer: conf.FirstPlayer,
		maxAttempts: conf.MaxAttempts,
		coinFlip: func() int {
			return rand.IntN(2) //nolint: gosec // it's ok
		},
	}
}

func (that *gameSession) Run(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("component", "game_session", "game_id", uuid.NewString())

	game, err := that.newGame(ctx)
	if err != nil {
		return nil, err
	}

	players := game.Players()
	log.Info("game started",
		"player_x", players[0].Name(),
		"player_o", players[1].Name(),
		"first", game.CurrentPlayer().Name(),
	)

	if err = that.console.Welcome(game); err != nil {
		return game, fmt.Errorf("could not print welcome: %w", err)
	}

	if err = that.console.RenderBoard(game.Board()); err != nil {
		return game, fmt.Errorf("could not render board: %w", err)
	}

	for !game.IsFinished() {
		if err = ctx.Err(); err != nil {
			return game, fmt.Errorf("game interrupted: %w", err)
		}

		if err = that.playTurn(ctx, log, game); err != nil {
			return game, err
		}

		if err = that.console.RenderBoard(game.Board()); err != nil {
			return game, fmt.Errorf("could not render board: %w", err)
		}
	}

	if err = that.console.AnnounceResult(game); err != nil {
		return game, fmt.Errorf("could not announce result: %w", err)
	}

	attrs := []any{"outcome", game.Outcome(), "moves", game.MoveCount()}
	if winner := game.Winner(); winner != nil {
		attrs = append(attrs, "winner", winner.Name())
	}
	log.Info("game finished", attrs...)

	return game, nil
}

func (that *gameSession) newGame(ctx context.Context) (*entity.Game, error) {
	firstName, secondName, err := that.console.RequestPlayerNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not read player names: %w", err)
	}

	first, err := entity.NewPlayer(firstName, entity.MarkX)
	if err != nil {
		return nil, fmt.Errorf("could not create first player: %w", err)
	}

	second, err := entity.NewPlayer(secondName, entity.MarkO)
	if err != nil {
		return nil, fmt.Errorf("could not create second player: %w", err)
	}

	game, err := entity.NewGame(first, second, that.firstMover())
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	return game, nil
}

func (that *gameSession) firstMover() int {
	switch that.firstPlayer {
	case config.FirstPlayerFirst:
		return 0
	case config.FirstPlayerSecond:
		return 1
	default:
		return that.coinFlip()
	}
}

// playTurn asks the current player for moves until one is accepted.
func (that *gameSession) playTurn(ctx context.Context, log *slog.Logger, game *entity.Game) error {
	player := game.CurrentPlayer()

	for attempt := 1; ; attempt++ {
		raw, err := that.console.RequestMove(ctx, player, attempt > 1)
		if err != nil {
			return fmt.Errorf("could not read move: %w", err)
		}

		result, err := game.ApplyMove(raw)
		if result == entity.Accepted {
			log.Debug("move accepted", "player", player.Name(), "move", raw, "outcome", game.Outcome())
			return nil
		}

		if !errors.Is(err, apperror.ErrInvalidMove) {
			return fmt.Errorf("failed to make move: %w", err)
		}

		log.Debug("move rejected", "player", player.Name(), "move", raw, "reason", rejectionReason(err), "attempt", attempt)

		if that.maxAttempts > 0 && attempt >= that.maxAttempts {
			return fmt.Errorf("%w: %s made %d invalid moves", apperror.ErrTooManyAttempts, player.Name(), attempt)
		}
	}
}

func rejectionReason(err error) string {
	if errors.Is(err, apperror.ErrCellOccupied) {
		return "cell_occupied"
	}
	return "malformed_input"
}
