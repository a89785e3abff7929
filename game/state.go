package game

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash"
)

type Controller int8

const (
	Human Controller = iota
	Computer
	// Dummy players stand in for real ones inside search clones.
	Dummy
)

func (c Controller) String() string {
	switch c {
	case Human:
		return "human"
	case Computer:
		return "computer"
	case Dummy:
		return "dummy"
	default:
		return fmt.Sprintf("Controller(%d)", int8(c))
	}
}

type Player struct {
	Name       string
	Loyalty    Loyalty
	Controller Controller
}

// Game is a board, two players, the side to move and each side's captures.
// A Game is not safe for concurrent use; search works on clones.
type Game struct {
	rules    Rules
	board    *Board
	players  [2]Player
	turn     Loyalty
	captured [2][]*Piece
}

type Option func(g *Game)

// WithBoard starts the game from b instead of the variant's setup.
func WithBoard(b *Board) Option {
	return func(g *Game) {
		if b != nil {
			g.board = b
		}
	}
}

// WithTurn overrides the variant's first side to move.
func WithTurn(side Loyalty) Option {
	return func(g *Game) {
		g.turn = side
	}
}

func WithPlayers(red, black Player) Option {
	return func(g *Game) {
		red.Loyalty, black.Loyalty = Red, Black
		g.players = [2]Player{red, black}
	}
}

// New sets up a fresh game of the variant: the computer plays Red, a human Black.
func New(v Variant, options ...Option) *Game {
	rules := RulesFor(v)
	g := &Game{
		rules: rules,
		board: rules.Setup(),
		players: [2]Player{
			{Name: "AI", Loyalty: Red, Controller: Computer},
			{Name: "Human", Loyalty: Black, Controller: Human},
		},
		turn: rules.FirstTurn(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *Game) Variant() Variant { return g.rules.Variant() }
func (g *Game) Rules() Rules     { return g.rules }
func (g *Game) Board() *Board    { return g.board }
func (g *Game) Turn() Loyalty    { return g.turn }

func (g *Game) Player(side Loyalty) Player {
	return g.players[side]
}

// Captured lists the enemy pieces side has removed, in capture order.
func (g *Game) Captured(side Loyalty) []*Piece {
	return g.captured[side]
}

// Clone deep-copies the board; the copy's players are dummies.
func (g *Game) Clone() *Game {
	c := &Game{
		rules: g.rules,
		board: g.board.Clone(),
		turn:  g.turn,
	}
	for i, p := range g.players {
		c.players[i] = Player{Name: p.Name, Loyalty: p.Loyalty, Controller: Dummy}
		c.captured[i] = slices.Clone(g.captured[i])
	}
	return c
}

// LegalMoves concatenates the moves of side's pieces in row-major order.
func (g *Game) LegalMoves(side Loyalty) []Move {
	var moves []Move
	for _, p := range g.board.Pieces(side) {
		moves = append(moves, p.GenerateMoves(g.board)...)
	}
	return moves
}

func (g *Game) hasLegalMove(side Loyalty) bool {
	for _, p := range g.board.Pieces(side) {
		if len(p.GenerateMoves(g.board)) > 0 {
			return true
		}
	}
	return false
}

// ApplyMove removes the captured pieces, moves the mover along the path,
// promotes it if due and passes the turn. It panics when the mover is not on
// turn or would land on a teammate; full legality is the referee's job.
func (g *Game) ApplyMove(m Move) {
	mover := g.board.PieceAt(m.Start())
	if mover == nil {
		panic(fmt.Sprintf("no piece to move at %s", m.Start()))
	}
	if mover.Loyalty != g.turn {
		panic(fmt.Sprintf("%s cannot move the %s piece at %s", g.turn, mover.Loyalty, m.Start()))
	}
	if target := g.board.PieceAt(m.End()); target != nil && target != mover && target.Loyalty == mover.Loyalty {
		panic(fmt.Sprintf("%s cannot land on its own piece at %s", mover.Loyalty, m.End()))
	}
	for _, loc := range m.Captured {
		if victim := g.board.Remove(loc); victim != nil {
			g.captured[mover.Loyalty] = append(g.captured[mover.Loyalty], victim)
		}
	}
	g.board.MovePiece(m.Start(), m.End())
	if kind, ok := g.rules.Promotion(mover, g.board); ok {
		mover.promote(kind)
	}
	g.turn = g.turn.Other()
}

// IsDefeated holds when side has no pieces or none of them can move.
func (g *Game) IsDefeated(side Loyalty) bool {
	return !g.hasLegalMove(side)
}

// IsComplete holds when at most one side is undefeated.
func (g *Game) IsComplete() bool {
	alive := 0
	for _, side := range []Loyalty{Red, Black} {
		if !g.IsDefeated(side) {
			alive++
		}
	}
	return alive <= 1
}

// Winner returns the only undefeated side of a complete game.
func (g *Game) Winner() (Loyalty, bool) {
	redDown, blackDown := g.IsDefeated(Red), g.IsDefeated(Black)
	switch {
	case redDown && !blackDown:
		return Black, true
	case blackDown && !redDown:
		return Red, true
	default:
		return 0, false
	}
}

// Hash fingerprints the position: every cell plus the side to move.
func (g *Game) Hash() uint64 {
	h := xxhash.New()
	buf := make([]byte, 0, len(g.board.cells)+1)
	for _, p := range g.board.cells {
		if p == nil {
			buf = append(buf, 0)
			continue
		}
		buf = append(buf, byte(1+2*int(p.Kind)+int(p.Loyalty)))
	}
	buf = append(buf, byte(g.turn))
	_, _ = h.Write(buf)
	var dims [4]byte
	binary.LittleEndian.PutUint16(dims[:2], uint16(g.board.rows))
	binary.LittleEndian.PutUint16(dims[2:], uint16(g.board.cols))
	_, _ = h.Write(dims[:])
	return h.Sum64()
}

func (g *Game) String() string {
	return fmt.Sprintf("%s to move\n%s", g.turn, g.board)
}

// LegalMoves lists the moves side may make in g.
func LegalMoves(g *Game, side Loyalty) []Move {
	return g.LegalMoves(side)
}

// ApplyMove plays m on g in place.
func ApplyMove(g *Game, m Move) {
	g.ApplyMove(m)
}

func IsDefeated(g *Game, side Loyalty) bool {
	return g.IsDefeated(side)
}

func IsComplete(g *Game) bool {
	return g.IsComplete()
}
