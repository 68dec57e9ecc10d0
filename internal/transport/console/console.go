package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	banner   = "-----------------------------------------------------------------------------------------------"
	ellipsis = "..."
)

var ErrGameInProgress = errors.New("game is still in progress")

type line struct {
	text string
	err  error
}

// Console talks to the players over a line based terminal.
type Console struct {
	logger *slog.Logger

	in  io.Reader
	out io.Writer

	nameWidth int

	startOnce sync.Once
	closeOnce sync.Once
	lines     chan line
	done      chan struct{}
	stopped   chan struct{}
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, nameWidth int) *Console {
	return &Console{
		logger:    logger.With("component", "console"),
		in:        in,
		out:       out,
		nameWidth: nameWidth,
		lines:     make(chan line),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
}

// RequestPlayerNames asks for both names, repeating each question until the
// answer is not blank.
func (that *Console) RequestPlayerNames(ctx context.Context) (string, string, error) {
	first, err := that.requestName(ctx, "Who is the first player? ")
	if err != nil {
		return "", "", err
	}

	second, err := that.requestName(ctx, "Who is the second player? ")
	if err != nil {
		return "", "", err
	}

	return first, second, nil
}

func (that *Console) requestName(ctx context.Context, prompt string) (string, error) {
	for {
		if err := that.write(prompt); err != nil {
			return "", err
		}

		name, err := that.readLine(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to read player name: %w", err)
		}

		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
	}
}

func (that *Console) Welcome(game *entity.Game) error {
	players := game.Players()
	first, second := that.displayName(players[0]), that.displayName(players[1])

	var b strings.Builder
	fmt.Fprintln(&b, banner)
	fmt.Fprintf(&b, "Welcome to the game %s and %s, good luck!\n", first, second)
	fmt.Fprintf(&b, "%s will be %ss and %s will be %ss.\n", first, players[0].Mark(), second, players[1].Mark())
	fmt.Fprintf(&b, "To make a move enter a letter (%s-%s) followed by a number (%s-%s) to indicate the square you want to play in, e.g. b2.\n",
		entity.RowLabel(0), entity.RowLabel(entity.Size-1), entity.ColLabel(0), entity.ColLabel(entity.Size-1))
	fmt.Fprintf(&b, "%s goes first.\n", that.displayName(game.CurrentPlayer()))
	fmt.Fprintln(&b, banner)

	return that.write(b.String())
}

func (that *Console) RequestMove(ctx context.Context, player *entity.Player, retry bool) (string, error) {
	prompt := fmt.Sprintf("Make your move %s : ", that.displayName(player))
	if retry {
		prompt = fmt.Sprintf("Invalid move %s. Try again : ", that.displayName(player))
	}

	if err := that.write(prompt); err != nil {
		return "", err
	}

	move, err := that.readLine(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read move: %w", err)
	}

	return move, nil
}

// RenderBoard prints the grid with column numbers on top and row letters on the left.
func (that *Console) RenderBoard(board entity.Board) error {
	var b strings.Builder

	b.WriteString("   ")
	for col := 0; col < entity.Size; col++ {
		b.WriteString(" " + entity.ColLabel(col) + "  ")
	}
	b.WriteString("\n")

	for row := 0; row < entity.Size; row++ {
		if row > 0 {
			b.WriteString("   " + strings.Repeat("---|", entity.Size-1) + "---\n")
		}

		cells := make([]string, 0, entity.Size)
		for col := 0; col < entity.Size; col++ {
			mark, err := board.At(entity.Coord{Row: row, Col: col})
			if err != nil {
				return fmt.Errorf("failed to read cell: %w", err)
			}
			cells = append(cells, mark.String())
		}

		b.WriteString(entity.RowLabel(row) + "   " + strings.Join(cells, " | "))
		b.WriteString("\n")
	}

	return that.write(trimLines(b.String()))
}

func (that *Console) AnnounceResult(game *entity.Game) error {
	switch game.Outcome() {
	case entity.OutcomeWin:
		return that.write(fmt.Sprintf("Game Over! The winner is %s!\n", that.displayName(game.Winner())))
	case entity.OutcomeTie:
		return that.write("Game Over! No moves remain, it is a tie!\n")
	default:
		return ErrGameInProgress
	}
}

// displayName fits a name into the configured terminal width.
func (that *Console) displayName(player *entity.Player) string {
	return runewidth.Truncate(player.Name(), that.nameWidth, ellipsis)
}

// readLine returns the next input line without its line ending. Lines are read
// on a separate goroutine so that a canceled context unblocks the caller.
func (that *Console) readLine(ctx context.Context) (string, error) {
	that.startOnce.Do(func() {
		go that.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case next, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return next.text, next.err
	}
}

func (that *Console) scan() {
	defer close(that.stopped)
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		if !that.send(line{text: strings.TrimRight(scanner.Text(), "\r")}) {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		that.logger.Error("failed to read input", "error", err)
		that.send(line{err: err})
	}
}

func (that *Console) send(next line) bool {
	select {
	case that.lines <- next:
		return true
	case <-that.done:
		return false
	}
}

// Close stops the reader goroutine. A read already blocked on the input
// returns it as soon as that read completes.
func (that *Console) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

func (that *Console) write(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}
	return nil
}

func trimLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
