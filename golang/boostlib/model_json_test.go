package boostlib

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func trainTinyModel(t *testing.T) *Model {
	t.Helper()
	m := syntheticRegressionMatrix(80, 11)
	cfg := DefaultConfig()
	cfg.NRounds = 4
	cfg.MaxDepth = 3
	model, _, err := Train(m, cfg)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	return model
}

func TestNativeModelRoundTrip(t *testing.T) {
	model := trainTinyModel(t)
	path := filepath.Join(t.TempDir(), "model.json")

	if err := model.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}

	if loaded.BaseScore != model.BaseScore {
		t.Fatalf("base score = %v, want %v", loaded.BaseScore, model.BaseScore)
	}
	if len(loaded.Trees) != len(model.Trees) {
		t.Fatalf("tree count = %d, want %d", len(loaded.Trees), len(model.Trees))
	}

	pool := NewPool(1)
	m := syntheticRegressionMatrix(20, 99)
	want, err := model.Predict(m, pool)
	if err != nil {
		t.Fatalf("Predict (original): %v", err)
	}
	got, err := loaded.Predict(m, pool)
	if err != nil {
		t.Fatalf("Predict (reloaded): %v", err)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("prediction %d differs after round trip: %v vs %v", i, want[i], got[i])
		}
	}
}

func TestXGBoostModelRoundTrip(t *testing.T) {
	model := trainTinyModel(t)
	path := filepath.Join(t.TempDir(), "model.xgb.json")

	if err := model.SaveXGBoost(path); err != nil {
		t.Fatalf("SaveXGBoost: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var written xgbModel
	if err := json.Unmarshal(raw, &written); err != nil {
		t.Fatalf("unmarshal written xgboost json: %v", err)
	}
	wantBestIteration := strconv.Itoa(len(model.Trees))
	if written.Learner.Attributes.BestIteration != wantBestIteration {
		t.Fatalf("best_iteration = %q, want %q (n_rounds, not n_rounds-1)", written.Learner.Attributes.BestIteration, wantBestIteration)
	}

	loaded, err := LoadXGBoostModel(path)
	if err != nil {
		t.Fatalf("LoadXGBoostModel: %v", err)
	}
	if loaded.Config.NRounds != len(model.Trees) {
		t.Fatalf("loaded n_rounds = %d, want %d (len(trees), not best_iteration)", loaded.Config.NRounds, len(model.Trees))
	}
	if loaded.Config.Task != model.Config.Task {
		t.Fatalf("loaded task = %v, want %v", loaded.Config.Task, model.Config.Task)
	}

	pool := NewPool(1)
	m := syntheticRegressionMatrix(20, 99)
	want, err := model.Predict(m, pool)
	if err != nil {
		t.Fatalf("Predict (original): %v", err)
	}
	got, err := loaded.Predict(m, pool)
	if err != nil {
		t.Fatalf("Predict (reloaded): %v", err)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("prediction %d differs after xgboost round trip: %v vs %v", i, want[i], got[i])
		}
	}
}

func TestLoadModelReportsIOError(t *testing.T) {
	_, err := LoadModel(filepath.Join(os.TempDir(), "does-not-exist-boostedgo.json"))
	if !IsKind(err, IoError) {
		t.Fatalf("expected IoError, got %v", err)
	}
}
