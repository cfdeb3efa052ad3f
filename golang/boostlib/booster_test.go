package boostlib

import (
	"math"
	"math/rand"
	"testing"
)

func syntheticRegressionMatrix(n int, seed int64) *Matrix {
	rng := rand.New(rand.NewSource(seed))
	features := make([]float32, n*2)
	labels := make([]float32, n)
	for i := 0; i < n; i++ {
		x0 := rng.Float64() * 10
		x1 := rng.Float64() * 10
		features[i*2] = float32(x0)
		features[i*2+1] = float32(x1)
		labels[i] = float32(2*x0 - 3*x1 + 5)
	}
	m, err := NewMatrix(features, labels, n, 2)
	if err != nil {
		panic(err)
	}
	return m
}

func TestTrainIsDeterministicAcrossThreadCounts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NRounds = 15
	cfg.Subsample = 0.7
	cfg.Seed = 42
	cfg.Metric = "rmse"

	cfg1 := cfg
	cfg1.NThreads = 1
	model1, metrics1, err := Train(syntheticRegressionMatrix(200, 1), cfg1)
	if err != nil {
		t.Fatalf("Train (1 thread): %v", err)
	}

	cfg4 := cfg
	cfg4.NThreads = 4
	model4, metrics4, err := Train(syntheticRegressionMatrix(200, 1), cfg4)
	if err != nil {
		t.Fatalf("Train (4 threads): %v", err)
	}

	if len(model1.Trees) != len(model4.Trees) {
		t.Fatalf("tree count differs: %d vs %d", len(model1.Trees), len(model4.Trees))
	}
	for r := range metrics1 {
		if metrics1[r] != metrics4[r] {
			t.Fatalf("round %d metric differs: %v vs %v", r, metrics1[r], metrics4[r])
		}
	}
	for ti := range model1.Trees {
		n1, n4 := model1.Trees[ti].Nodes, model4.Trees[ti].Nodes
		if len(n1) != len(n4) {
			t.Fatalf("tree %d node count differs: %d vs %d", ti, len(n1), len(n4))
		}
		for ni := range n1 {
			if n1[ni] != n4[ni] {
				t.Fatalf("tree %d node %d differs: %+v vs %+v", ti, ni, n1[ni], n4[ni])
			}
		}
	}
}

func TestTrainRejectsEmptyDataset(t *testing.T) {
	m := &Matrix{}
	_, _, err := Train(m, DefaultConfig())
	if !IsKind(err, EmptyDataset) {
		t.Fatalf("expected EmptyDataset, got %v", err)
	}
}

func TestTrainRejectsMissingLabels(t *testing.T) {
	m, err := NewMatrix([]float32{1, 2, 3, 4}, nil, 2, 2)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	_, _, trainErr := Train(m, DefaultConfig())
	if !IsKind(trainErr, MissingLabels) {
		t.Fatalf("expected MissingLabels, got %v", trainErr)
	}
}

func TestPredictUntrainedModel(t *testing.T) {
	model := &Model{Config: DefaultConfig()}
	if _, err := model.PredictRow([]float32{1, 2}); !IsKind(err, UntrainedModel) {
		t.Fatalf("expected UntrainedModel, got %v", err)
	}
}

func TestCrossValidateAveragesAcrossFolds(t *testing.T) {
	m := syntheticRegressionMatrix(100, 7)
	cfg := DefaultConfig()
	cfg.NRounds = 5
	cfg.Metric = "rmse"

	metrics, err := CrossValidate(m, cfg, 5)
	if err != nil {
		t.Fatalf("CrossValidate: %v", err)
	}
	if len(metrics) != cfg.NRounds {
		t.Fatalf("got %d metric values, want %d", len(metrics), cfg.NRounds)
	}
	for i, v := range metrics {
		if math.IsNaN(v) || v < 0 {
			t.Fatalf("round %d metric = %v, not a sane rmse value", i, v)
		}
	}
}

func TestCrossValidateRejectsTooManyFolds(t *testing.T) {
	m := syntheticRegressionMatrix(3, 1)
	if _, err := CrossValidate(m, DefaultConfig(), 5); !IsKind(err, InvalidConfiguration) {
		t.Fatalf("expected InvalidConfiguration, got %v", err)
	}
}

func TestBinaryObjectiveEndToEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := 300
	features := make([]float32, n)
	labels := make([]float32, n)
	for i := 0; i < n; i++ {
		x := rng.Float64()*20 - 10
		features[i] = float32(x)
		if x > 0 {
			labels[i] = 1
		}
	}
	m, err := NewMatrix(features, labels, n, 1)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Task = TaskBinary
	cfg.Metric = "auc"
	cfg.NRounds = 20
	cfg.MaxDepth = 3

	_, metrics, err := Train(m, cfg)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if metrics[len(metrics)-1] < 0.85 {
		t.Fatalf("final auc = %v, expected >= 0.85 on cleanly separable data", metrics[len(metrics)-1])
	}
}
