package boostlib

// Node is one entry of a tree's flat node array. Leaves carry Weight;
// internal nodes carry FeatureID, Threshold, Left, Right and Gain. There
// are no pointers between nodes, only slice indices, which is what makes
// the tree trivially serialisable.
type Node struct {
	IsLeaf    bool
	Depth     int
	FeatureID int
	Threshold float32
	Weight    float32
	Left      int
	Right     int
	Gain      float32
}

// Tree is a flat array of nodes; node 0 is always the root.
type Tree struct {
	Nodes []Node
}

// BuildTree grows a tree from the given row set under cfg's stopping
// criteria, using the current gradients and hessians.
func BuildTree(m *Matrix, g, h []float32, rows []int, cfg Config, pool *Pool) *Tree {
	t := &Tree{}
	buildNode(t, m, g, h, rows, 0, cfg, pool)
	return t
}

func buildNode(t *Tree, m *Matrix, g, h []float32, rows []int, depth int, cfg Config, pool *Pool) int {
	var totalG, totalH float32
	for _, r := range rows {
		totalG += g[r]
		totalH += h[r]
	}

	leaf := func() int {
		w := -totalG / (totalH + float32(cfg.RegLambda))
		idx := len(t.Nodes)
		t.Nodes = append(t.Nodes, Node{IsLeaf: true, Depth: depth, Weight: w})
		return idx
	}

	if depth >= cfg.MaxDepth || len(rows) <= cfg.MinDataInLeaf || float64(totalH) < cfg.MinChildWeight {
		return leaf()
	}

	hist := BuildHistograms(m, rows, g, h, pool)
	split := FindBestSplit(hist, m.Bins, totalG, totalH, cfg, pool)
	if !split.Valid {
		return leaf()
	}

	left, right := partitionRows(m, rows, split.FeatureID, split.Threshold)
	if len(left) == 0 || len(right) == 0 {
		return leaf()
	}

	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{})

	leftIdx := buildNode(t, m, g, h, left, depth+1, cfg, pool)
	rightIdx := buildNode(t, m, g, h, right, depth+1, cfg, pool)

	t.Nodes[idx] = Node{
		Depth:     depth,
		FeatureID: split.FeatureID,
		Threshold: split.Threshold,
		Left:      leftIdx,
		Right:     rightIdx,
		Gain:      split.Gain,
	}
	return idx
}

func partitionRows(m *Matrix, rows []int, featureID int, threshold float32) (left, right []int) {
	for _, r := range rows {
		v := m.Features[r*m.NCols+featureID]
		if !isNaN32(v) && v <= threshold {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	return
}

// PredictOne walks the tree for a single row: missing or above-threshold
// values always go right.
func (t *Tree) PredictOne(features []float32) float32 {
	idx := 0
	for !t.Nodes[idx].IsLeaf {
		n := t.Nodes[idx]
		v := features[n.FeatureID]
		if isNaN32(v) || v > n.Threshold {
			idx = n.Right
		} else {
			idx = n.Left
		}
	}
	return t.Nodes[idx].Weight
}

// Predict walks every row of m through the tree, one worker per row.
func (t *Tree) Predict(m *Matrix, pool *Pool) []float32 {
	out := make([]float32, m.NRows)
	pool.ParallelFor(m.NRows, func(r int) {
		out[r] = t.PredictOne(m.Features[r*m.NCols : (r+1)*m.NCols])
	})
	return out
}

// Depth returns the maximum depth across all nodes in the tree.
func (t *Tree) Depth() int {
	max := 0
	for _, n := range t.Nodes {
		if n.Depth > max {
			max = n.Depth
		}
	}
	return max
}
