package game

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"lukechampine.com/frand"
)

// Loyalty is the side a piece or a player belongs to.
type Loyalty int8

const (
	Red Loyalty = iota
	Black
)

// Other returns the opposing side.
func (l Loyalty) Other() Loyalty {
	if l == Red {
		return Black
	}
	return Red
}

// Forward is the row direction soldiers and pawns of this side advance in.
func (l Loyalty) Forward() int {
	if l == Red {
		return 1
	}
	return -1
}

func (l Loyalty) String() string {
	switch l {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return fmt.Sprintf("Loyalty(%d)", int8(l))
	}
}

// RandomLoyalty picks a side uniformly at random.
func RandomLoyalty() Loyalty {
	return Loyalty(frand.Intn(2))
}

type Variant int8

const (
	Checkers Variant = iota
	Chess
)

func (v Variant) String() string {
	switch v {
	case Checkers:
		return "checkers"
	case Chess:
		return "chess"
	default:
		return fmt.Sprintf("Variant(%d)", int8(v))
	}
}

// ParseVariant accepts the names printed by Variant.String, case insensitive.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "checkers", "draughts":
		return Checkers, nil
	case "chess":
		return Chess, nil
	default:
		return 0, errors.Errorf("unknown variant %q", name)
	}
}

// Evaluate scores a game from the given side's perspective. Larger is better
// for that side; ±math.MaxFloat64 marks a decided game.
type Evaluate func(g *Game, side Loyalty) float64
