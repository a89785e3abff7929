package searcher

import (
	"sort"

	"duel/game"
)

// node is one position in the search tree. Every node owns its game clone,
// so sibling subtrees can be searched from different goroutines.
type node struct {
	game     *game.Game
	move     game.Move // Move that led here from the parent
	depth    int       // Plies below the root
	value    float64   // Result of the most recent search of this node
	children []*node
	expanded bool
}

func newRoot(g *game.Game) *node {
	return &node{game: g.Clone()}
}

// expand creates one child per legal move of the side to move, once.
func (n *node) expand() []*node {
	if n.expanded {
		return n.children
	}
	moves := n.game.LegalMoves(n.game.Turn())
	n.children = make([]*node, 0, len(moves))
	for _, m := range moves {
		child := n.game.Clone()
		child.ApplyMove(m)
		n.children = append(n.children, &node{game: child, move: m, depth: n.depth + 1})
	}
	n.expanded = true
	return n.children
}

// release drops the subtree.
func (n *node) release() {
	n.children = nil
	n.expanded = false
}

// orderChildren sorts by the values of the previous pass: best first for the
// side choosing at this node.
func orderChildren(children []*node, maximizing bool) {
	sort.SliceStable(children, func(i, j int) bool {
		if maximizing {
			return children[i].value > children[j].value
		}
		return children[i].value < children[j].value
	})
}
