package searcher

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

const graphName = "search"

// Dot renders the retained tree down to maxDepth plies as a DOT digraph.
// Every node is labelled with its move and last value.
func (t *Tree) Dot(maxDepth int) (string, error) {
	graph := gographviz.NewGraph()
	if err := graph.SetName(graphName); err != nil {
		return "", errors.WithStack(err)
	}
	if err := graph.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	count := 0
	var walk func(n *node, id string) error
	walk = func(n *node, id string) error {
		label := "root"
		if n.depth > 0 {
			label = n.move.String()
		}
		attrs := map[string]string{"label": strconv.Quote(label + "\n" + formatValue(n.value))}
		if err := graph.AddNode(graphName, id, attrs); err != nil {
			return errors.WithStack(err)
		}
		if n.depth >= maxDepth {
			return nil
		}
		for _, child := range n.children {
			count++
			childID := fmt.Sprintf("n%d", count)
			if err := walk(child, childID); err != nil {
				return err
			}
			if err := graph.AddEdge(id, childID, true, nil); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}
	if err := walk(t.root, "n0"); err != nil {
		return "", err
	}
	return graph.String(), nil
}

// WriteDot saves Dot's output to path.
func (t *Tree) WriteDot(path string, maxDepth int) error {
	out, err := t.Dot(maxDepth)
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, []byte(out), 0o644), "writing %s", path)
}

func formatValue(v float64) string {
	switch v {
	case math.MaxFloat64:
		return "win"
	case -math.MaxFloat64:
		return "loss"
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}
