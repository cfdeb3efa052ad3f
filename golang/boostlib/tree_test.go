package boostlib

import "testing"

func TestLeafWeightFormula(t *testing.T) {
	m, err := NewMatrix([]float32{1, 2, 3, 4}, nil, 4, 1)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	if err := m.CreateBins(4); err != nil {
		t.Fatalf("CreateBins: %v", err)
	}

	g := []float32{1, 1, 1, 1}
	h := []float32{1, 1, 1, 1}
	cfg := DefaultConfig()
	cfg.RegLambda = 1
	cfg.MaxDepth = 0 // force an immediate leaf

	pool := NewPool(1)
	tree := BuildTree(m, g, h, []int{0, 1, 2, 3}, cfg, pool)

	if len(tree.Nodes) != 1 || !tree.Nodes[0].IsLeaf {
		t.Fatalf("expected a single leaf node, got %+v", tree.Nodes)
	}
	want := float32(-4.0 / 5.0) // -G/(H+lambda) = -4/(4+1)
	if tree.Nodes[0].Weight != want {
		t.Fatalf("leaf weight = %v, want %v", tree.Nodes[0].Weight, want)
	}
}

func TestPredictMissingAlwaysRoutesRight(t *testing.T) {
	tree := &Tree{Nodes: []Node{
		{FeatureID: 0, Threshold: 5, Left: 1, Right: 2},
		{IsLeaf: true, Weight: -1},
		{IsLeaf: true, Weight: 1},
	}}

	if got := tree.PredictOne([]float32{nan32()}); got != 1 {
		t.Fatalf("missing value predicted %v, want 1 (right branch)", got)
	}
	if got := tree.PredictOne([]float32{10}); got != 1 {
		t.Fatalf("above-threshold value predicted %v, want 1 (right branch)", got)
	}
	if got := tree.PredictOne([]float32{5}); got != -1 {
		t.Fatalf("value equal to threshold predicted %v, want -1 (left branch)", got)
	}
}

func TestBuildTreeSplitsSeparableData(t *testing.T) {
	// Two clusters of rows cleanly separated by feature 0: labels 0 below
	// 5, labels 10 above. A tree with enough depth should fit them nearly
	// exactly.
	var features, labels []float32
	for i := 0; i < 20; i++ {
		features = append(features, float32(i))
		if i < 10 {
			labels = append(labels, 0)
		} else {
			labels = append(labels, 10)
		}
	}
	m, err := NewMatrix(features, labels, 20, 1)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}

	cfg := DefaultConfig()
	cfg.NRounds = 20
	cfg.MaxDepth = 3
	cfg.MinDataInLeaf = 1
	cfg.RegLambda = 0.01
	cfg.NBins = 32
	cfg.Metric = "rmse"

	model, metrics, err := Train(m, cfg)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if len(metrics) != cfg.NRounds {
		t.Fatalf("got %d metric values, want %d", len(metrics), cfg.NRounds)
	}
	if metrics[len(metrics)-1] > 1.0 {
		t.Fatalf("final rmse = %v, expected the ensemble to fit this separable data closely", metrics[len(metrics)-1])
	}

	pool := NewPool(1)
	preds, err := model.Predict(m, pool)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if preds[0] > 2 || preds[19] < 8 {
		t.Fatalf("predictions did not separate the two clusters: preds[0]=%v preds[19]=%v", preds[0], preds[19])
	}
}
