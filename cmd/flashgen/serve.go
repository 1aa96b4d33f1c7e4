package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fwojciec/flashgen"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := &http.Server{
		Addr:    c.Addr,
		Handler: NewHandler(deps.Runner),
	}
	fmt.Fprintf(deps.Stdout, "flashgen listening on %s\n", c.Addr)
	return server.ListenAndServe()
}

// generateRequest is the POST /api/generate-flashcards payload.
type generateRequest struct {
	URL      string `json:"url"`
	NumCards int    `json:"num_cards"`
}

// NewHandler returns the HTTP API handler. Thin plumbing over the runner:
// request decoding, status mapping, CORS.
func NewHandler(runner flashgen.Runner) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/generate-flashcards", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
			return
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "URL is required"})
			return
		}

		result := runner.Run(r.Context(), req.URL, req.NumCards)

		status := http.StatusOK
		if result.Error != "" {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, result)
	})

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	return withCORS(mux)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// withCORS allows cross-origin requests from browser frontends.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
