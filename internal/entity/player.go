package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/validator"
)

// Player is immutable once created; games refer to players by pointer.
type Player struct {
	name string
	mark Mark
}

type playerRecord struct {
	Name string `validate:"required"`
	Mark Mark   `validate:"oneof=X O"`
}

func NewPlayer(name string, mark Mark) (*Player, error) {
	record := playerRecord{
		Name: strings.TrimSpace(name),
		Mark: mark,
	}

	if err := validator.GetValidator().Struct(record); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidPlayer, err)
	}

	return &Player{name: record.Name, mark: record.Mark}, nil
}

func (that *Player) Name() string {
	return that.name
}

func (that *Player) Mark() Mark {
	return that.mark
}

func (that *Player) String() string {
	return fmt.Sprintf("%s (%s)", that.name, that.mark)
}
