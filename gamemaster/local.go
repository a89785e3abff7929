package gamemaster

import (
	"duel/game"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

// UpdateGetter returns the latest played move and a copy of the resulting
// game. ok is false when nothing new has been played or the game has ended
// and its final update was already taken.
type UpdateGetter func() (move game.Move, g *game.Game, ok bool)

type update struct {
	move game.Move
	game *game.Game
}

// Referee owns the authoritative game and only lets legal moves through.
type Referee struct {
	game     *game.Game
	updateCh chan update
	gameOver bool
}

func NewReferee(g *game.Game) (*Referee, UpdateGetter) {
	r := &Referee{
		game:     g,
		updateCh: make(chan update, 1),
		gameOver: g.IsComplete(),
	}
	return r, func() (game.Move, *game.Game, bool) {
		select {
		case u, ok := <-r.updateCh:
			if !ok { // Game over
				return game.Move{}, nil, false
			}
			return u.move, u.game, true
		default:
			// No updates yet
			return game.Move{}, nil, false
		}
	}
}

// Game returns a copy of the current game.
func (r *Referee) Game() *game.Game {
	return r.game.Clone()
}

func (r *Referee) IsOver() bool {
	return r.gameOver
}

// Play applies move for the side to move if it is legal.
func (r *Referee) Play(move game.Move) error {
	if r.gameOver {
		return ErrGameOver
	}

	legalMoves := r.game.LegalMoves(r.game.Turn())
	if len(legalMoves) == 0 {
		return errors.Wrap(ErrIllegalMove, "no legal moves available")
	}
	if !lo.ContainsBy(legalMoves, func(m game.Move) bool { return m.Equal(move) }) {
		return errors.Wrapf(ErrIllegalMove, "%s may not play %s", r.game.Turn(), move)
	}

	r.game.ApplyMove(move)

	// Keep only the newest update
	select {
	case <-r.updateCh:
	default:
	}
	r.updateCh <- update{move: move, game: r.game.Clone()}
	if r.game.IsComplete() {
		r.gameOver = true
		close(r.updateCh)
	}
	return nil
}
