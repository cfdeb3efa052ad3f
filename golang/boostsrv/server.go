// Command boostsrv serves single-row predictions from a trained model over
// HTTP, mirroring the original prototype's api/server PORT-env-var
// convention.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/tarstars/boostedgo/golang/boostlib"
)

// Server wraps a loaded model behind the predict/healthz handlers.
type Server struct {
	model *boostlib.Model
}

// NewServer returns a Server backed by model.
func NewServer(model *boostlib.Model) *Server {
	return &Server{model: model}
}

type predictResponse struct {
	Prediction float32 `json:"prediction"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// handlePredict accepts a JSON array of one row's raw feature values and
// responds with {"prediction": <float>}.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var features []float32
	if err := json.NewDecoder(r.Body).Decode(&features); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	pred, err := s.model.PredictRow(features)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(predictResponse{Prediction: pred})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Handler returns the server's http.Handler, exposed separately from
// ListenAndServe so tests can drive it with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/predict", s.handlePredict)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}

// ListenAndServe starts the HTTP server on the given address, logging each
// incoming request's method and path the way the teacher's training loop
// logs round progress: a single diagnostic stream to stderr.
func (s *Server) ListenAndServe(addr string) error {
	handler := s.Handler()
	logged := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		handler.ServeHTTP(w, r)
	})
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, logged)
}

// Port resolves the listen port from the PORT environment variable,
// defaulting to 8080 when unset, per the original server's convention.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

// ModelPath resolves the model path from the MODEL_PATH environment
// variable, used when the --model flag is not given.
func ModelPath() string {
	return os.Getenv("MODEL_PATH")
}
