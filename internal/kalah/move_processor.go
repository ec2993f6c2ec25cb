package kalah

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

// MoveProcessor - the rules engine. It validates and applies a single move,
// resolves captures and extra turns, and finalizes the game once a side runs
// out of stones.
type MoveProcessor struct {
	logger *slog.Logger
}

func NewMoveProcessor(logger *slog.Logger) *MoveProcessor {
	return &MoveProcessor{
		logger: logger.With("component", "kalah"),
	}
}

// MakeMove - plays the pit at the 1-based slot number for the player whose turn
// it is. A finished game is left untouched. Invalid moves return an
// apperror.InvalidMoveError before anything is mutated.
func (that *MoveProcessor) MakeMove(game *entity.Game, pitNumber int) error {
	log := that.logger.With("method", "MakeMove", "gameID", game.ID)

	if game.IsFinished() {
		log.Info("game is finished, move ignored", "status", game.Status)
		return nil
	}

	mover, ok := game.Mover()
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrUnknownStatus, game.Status)
	}

	index := pitNumber - 1

	pit, err := validateMove(game.Board(), mover.ID, index)
	if err != nil {
		return err
	}

	log.Debug("handling move", "player", mover.ID, "pit", pitNumber)

	extraTurn, err := that.sow(log, game.Board(), mover, pit, index)
	if err != nil {
		return fmt.Errorf("failed to sow stones: %w", err)
	}

	if !extraTurn {
		game.Status = entity.TurnOf(mover.ID.Opponent())
	}

	if finalize(game.Board()) {
		game.Status = result(game.Board())
		log.Info("game complete", "status", game.Status,
			"player1", game.Board().Kalah(entity.Player1).Count(),
			"player2", game.Board().Kalah(entity.Player2).Count())
	}

	return nil
}

// validateMove - checks that the move starts at a non-empty pit owned by the mover.
func validateMove(board *entity.Board, mover entity.PlayerID, index int) (*entity.Pit, error) {
	if index < 0 || index >= entity.BoardSize {
		return nil, apperror.NewInvalidMove(apperror.ReasonOutOfRange)
	}

	pit, ok := board.Pit(index)
	if !ok {
		return nil, apperror.NewInvalidMove(apperror.ReasonKalahSelected)
	}

	if pit.Owner() != mover {
		return nil, apperror.NewInvalidMove(apperror.ReasonNotOwner)
	}

	if pit.IsEmpty() {
		return nil, apperror.NewInvalidMove(apperror.ReasonEmptyPit)
	}

	return pit, nil
}

// sow - picks up the pit and drops one stone per slot. Reports whether the
// mover keeps the turn.
func (that *MoveProcessor) sow(log *slog.Logger, board *entity.Board, mover *entity.Player, pit *entity.Pit, index int) (bool, error) {
	hand := mover.Hand()

	stones, _ := pit.ExtractAll()
	hand.Add(stones)

	log.Debug("sowing", "player", mover.ID, "stones", hand.Len())

	for !hand.IsEmpty() {
		index = nextIndex(index, mover.ID)

		stone, err := hand.TakeOne()
		if err != nil {
			return false, err
		}

		landing := board.Component(index)
		landing.AddStone(stone)

		if !hand.IsEmpty() {
			continue
		}

		if landed, ok := landing.(*entity.Pit); ok && landed.Owner() == mover.ID && landed.Count() == 1 {
			captured := capture(board, mover.ID, index)
			log.Info("last stone landed in own empty pit, capturing", "player", mover.ID, "pit", index+1, "captured", captured)

			return false, nil
		}

		if index == entity.KalahIndex(mover.ID) {
			log.Info("last stone landed in own kalah, extra turn", "player", mover.ID)

			return true, nil
		}
	}

	return false, nil
}

// nextIndex - the next slot counter-clockwise, never the opponent's kalah.
func nextIndex(index int, mover entity.PlayerID) int {
	index = (index + 1) % entity.BoardSize
	if index == entity.KalahIndex(mover.Opponent()) {
		index = (index + 1) % entity.BoardSize
	}

	return index
}

// capture - moves the pit at index and the pit facing it into the player's kalah.
func capture(board *entity.Board, player entity.PlayerID, index int) int {
	kalah := board.Kalah(player)
	captured := 0

	for _, i := range []int{index, entity.OppositeIndex(index)} {
		pit, _ := board.Pit(i)
		stones, count := pit.ExtractAll()
		kalah.AddStones(stones)
		captured += count
	}

	return captured
}

// finalize - once either side's pits are empty, each player with stones left
// in their pits sweeps them into their own kalah. The two checks are
// independent.
func finalize(board *entity.Board) bool {
	finished := false

	if board.PitStones(entity.Player1) == 0 {
		sweep(board, entity.Player2)
		finished = true
	}

	if board.PitStones(entity.Player2) == 0 {
		sweep(board, entity.Player1)
		finished = true
	}

	return finished
}

func sweep(board *entity.Board, player entity.PlayerID) {
	kalah := board.Kalah(player)
	for _, index := range entity.PitIndices(player) {
		pit, _ := board.Pit(index)
		stones, _ := pit.ExtractAll()
		kalah.AddStones(stones)
	}
}

func result(board *entity.Board) entity.Status {
	player1 := board.Kalah(entity.Player1).Count()
	player2 := board.Kalah(entity.Player2).Count()

	switch {
	case player1 > player2:
		return entity.StatusPlayer1Win
	case player2 > player1:
		return entity.StatusPlayer2Win
	default:
		return entity.StatusDraw
	}
}
