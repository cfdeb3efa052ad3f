package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/tarstars/boostedgo/golang/boostlib"
)

func tinyTrainedModel(t *testing.T) *boostlib.Model {
	t.Helper()
	n := 40
	features := make([]float32, n)
	labels := make([]float32, n)
	for i := 0; i < n; i++ {
		x := float32(i)
		features[i] = x
		labels[i] = 2*x + 1
	}
	m, err := boostlib.NewMatrix(features, labels, n, 1)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	cfg := boostlib.DefaultConfig()
	cfg.NRounds = 5
	model, _, err := boostlib.Train(m, cfg)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	return model
}

func TestHandlePredictReturnsPrediction(t *testing.T) {
	srv := NewServer(tinyTrainedModel(t))
	body, _ := json.Marshal([]float32{10})
	req := httptest.NewRequest("POST", "/predict", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var resp predictResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHandlePredictRejectsGet(t *testing.T) {
	srv := NewServer(tinyTrainedModel(t))
	req := httptest.NewRequest("GET", "/predict", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != 405 {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestHandlePredictRejectsBadBody(t *testing.T) {
	srv := NewServer(tinyTrainedModel(t))
	req := httptest.NewRequest("POST", "/predict", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleHealthz(t *testing.T) {
	srv := NewServer(tinyTrainedModel(t))
	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
