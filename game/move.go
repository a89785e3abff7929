package game

import (
	"slices"
	"strings"
)

// Move is a path of cells from the mover's start to its final cell, with the
// cells whose pieces it removes.
type Move struct {
	Path     []Location
	Captured []Location
}

// newStepMove builds a single step, capturing the destination occupant if any.
func newStepMove(b *Board, from, to Location) Move {
	m := Move{Path: []Location{from, to}}
	if b.PieceAt(to) != nil {
		m.Captured = []Location{to}
	}
	return m
}

// newJumpMove builds a chain of two-cell jumps, capturing every jumped cell.
func newJumpMove(path []Location) Move {
	captured := make([]Location, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		captured = append(captured, between(path[i-1], path[i]))
	}
	return Move{Path: path, Captured: captured}
}

func (m Move) Start() Location {
	return m.Path[0]
}

func (m Move) End() Location {
	return m.Path[len(m.Path)-1]
}

func (m Move) IsCapture() bool {
	return len(m.Captured) > 0
}

// Equal compares paths and captured cells.
func (m Move) Equal(other Move) bool {
	return slices.Equal(m.Path, other.Path) && slices.Equal(m.Captured, other.Captured)
}

// String prints the path, joined by "x" for captures and "-" otherwise.
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	cells := make([]string, len(m.Path))
	for i, loc := range m.Path {
		cells[i] = loc.String()
	}
	return strings.Join(cells, sep)
}
