package boostlib

import (
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

func recurrentDraw(g *cgraph.Graph, t *Tree, nodeIdx int, parentNode *cgraph.Node) {
	currentNode, err := g.CreateNode(fmt.Sprint(nodeIdx))
	HandleError(err)

	if parentNode != nil {
		g.CreateEdge("", parentNode, currentNode)
	}

	n := t.Nodes[nodeIdx]
	if n.IsLeaf {
		currentNode.Set("label", fmt.Sprintf("w = %.4f", n.Weight))
		currentNode.Set("shape", "box")
		return
	}

	currentNode.Set("label", fmt.Sprintf("f_%d <= %.4f\\ngain = %.4f", n.FeatureID, n.Threshold, n.Gain))
	recurrentDraw(g, t, n.Left, currentNode)
	recurrentDraw(g, t, n.Right, currentNode)
}

// DrawGraph builds a graphviz graph describing the tree's split structure,
// for the CLI's debug rendering mode.
func (t *Tree) DrawGraph() (*graphviz.Graphviz, *cgraph.Graph) {
	gv := graphviz.New()
	graph, err := gv.Graph()
	HandleError(err)

	recurrentDraw(graph, t, 0, nil)

	return gv, graph
}

// RenderTree renders one tree of the model to an image file in the given
// format ("png", "svg", "jpg").
func (model *Model) RenderTree(index int, format graphviz.Format, outputPath string) error {
	if index < 0 || index >= len(model.Trees) {
		return Errorf(FormatError, "tree index %d out of range (model has %d trees)", index, len(model.Trees))
	}
	gv, graph := model.Trees[index].DrawGraph()
	if err := gv.RenderFilename(graph, format, outputPath); err != nil {
		return Errorf(IoError, "rendering tree %d to %s: %v", index, outputPath, err)
	}
	return nil
}
