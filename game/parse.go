package game

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const emptyCell = '.'

var letterToKind = map[rune]Kind{
	'c': Soldier,
	'd': CheckersKing,
	'k': ChessKing,
	'q': Queen,
	'r': Rook,
	'b': Bishop,
	'n': Knight,
	'p': Pawn,
}

var kindToLetter = func() map[Kind]rune {
	m := make(map[Kind]rune, len(letterToKind))
	for r, k := range letterToKind {
		m[k] = r
	}
	return m
}()

// ParseBoard builds a board from one string per row, row 0 first. '.' is an
// empty cell, uppercase letters are Red and lowercase Black. Pawns away from
// their home row count as having moved.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, errors.New("board has no rows")
	}
	cols := len([]rune(rows[0]))
	if cols == 0 {
		return nil, errors.New("board has no columns")
	}
	b := NewBoard(len(rows), cols)
	for r, line := range rows {
		cells := []rune(line)
		if len(cells) != cols {
			return nil, errors.Errorf("row %d has %d cells, want %d", r, len(cells), cols)
		}
		for c, ch := range cells {
			if ch == emptyCell {
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return nil, errors.Errorf("unknown piece %q at %s", ch, Loc(r, c))
			}
			loyalty := Black
			if unicode.IsUpper(ch) {
				loyalty = Red
			}
			p := NewPiece(kind, loyalty)
			if kind == Pawn {
				p.HasMoved = r != pawnHomeRow(b, loyalty)
			}
			b.Place(p, Loc(r, c))
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed layouts; it panics on malformed input.
func MustParseBoard(rows ...string) *Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

func pawnHomeRow(b *Board, side Loyalty) int {
	if side == Red {
		return 1
	}
	return b.rows - 2
}

// String renders the board in the ParseBoard format, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			p := b.PieceAt(Loc(r, c))
			if p == nil {
				sb.WriteRune(emptyCell)
				continue
			}
			ch := kindToLetter[p.Kind]
			if p.Loyalty == Red {
				ch = unicode.ToUpper(ch)
			}
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}
