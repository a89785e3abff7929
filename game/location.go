package game

import "fmt"

// Location addresses a board cell. Row 0 is Red's home row.
type Location struct {
	Row int
	Col int
}

func Loc(row, col int) Location {
	return Location{Row: row, Col: col}
}

func (l Location) Offset(dr, dc int) Location {
	return Location{Row: l.Row + dr, Col: l.Col + dc}
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
}

// between returns the cell halfway between two locations two steps apart.
func between(a, b Location) Location {
	return Location{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}

type direction struct {
	dr int
	dc int
}

var (
	diagonals   = []direction{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}
	orthogonals = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	neighbours  = append(append([]direction{}, orthogonals...), diagonals...)
	knightHops  = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)
