package boostlib

import "testing"

func TestRMSEPerfectPrediction(t *testing.T) {
	labels := []float32{1, 2, 3}
	if got := RMSE(labels, labels); got != 0 {
		t.Fatalf("rmse = %v, want 0", got)
	}
}

func TestMAESimple(t *testing.T) {
	labels := []float32{1, 2, 3}
	preds := []float32{2, 2, 2}
	got := MAE(labels, preds)
	if !almostEqual(got, 2.0/3.0, 1e-9) {
		t.Fatalf("mae = %v, want %v", got, 2.0/3.0)
	}
}

func TestLogLossPerfectPrediction(t *testing.T) {
	labels := []float32{1, 0}
	preds := []float32{1, 0}
	got := LogLoss(labels, preds)
	if got > 1e-6 {
		t.Fatalf("logloss = %v, want ~0", got)
	}
}

func TestAUCPerfectSeparation(t *testing.T) {
	labels := []float32{0, 0, 1, 1}
	preds := []float32{0.1, 0.2, 0.8, 0.9}
	if got := AUC(labels, preds); got != 1.0 {
		t.Fatalf("auc = %v, want 1.0", got)
	}
}

func TestAUCRandomGuessing(t *testing.T) {
	labels := []float32{0, 1, 0, 1}
	preds := []float32{0.5, 0.5, 0.5, 0.5}
	if got := AUC(labels, preds); got != 0.5 {
		t.Fatalf("auc = %v, want 0.5 for a single tied block", got)
	}
}

func TestAUCInversedSeparation(t *testing.T) {
	labels := []float32{1, 1, 0, 0}
	preds := []float32{0.1, 0.2, 0.8, 0.9}
	if got := AUC(labels, preds); got != 0.0 {
		t.Fatalf("auc = %v, want 0.0 when predictions are perfectly backwards", got)
	}
}
