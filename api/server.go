// Package api exposes the matching engine over HTTP.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/TFMV/reconcile/internal/config"
	"github.com/TFMV/reconcile/internal/match"
)

// ReconcileRequest represents a batch reconciliation request
type ReconcileRequest struct {
	Records []match.Record `json:"records"`
}

// ReconcileResponse carries the results of a batch reconciliation
type ReconcileResponse struct {
	RunID   string         `json:"run_id"`
	Count   int            `json:"count"`
	Results []match.Result `json:"results"`
}

// Server represents the API server
type Server struct {
	router     *mux.Router
	config     *config.Config
	matcher    *match.Service
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, matcher *match.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		router:  mux.NewRouter(),
		config:  cfg,
		matcher: matcher,
		logger:  logger,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.router.Use(s.requestLogger)

	// Health check
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	// Matching endpoints
	s.router.HandleFunc("/match", s.handleMatch).Methods(http.MethodPost)
	s.router.HandleFunc("/reconcile", s.handleReconcile).Methods(http.MethodPost)

	// Reference pool endpoints
	s.router.HandleFunc("/reference/count", s.handleReferenceCount).Methods(http.MethodGet)
}

// requestLogger tags every request with an ID and logs its outcome
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		s.logger.Info("request handled",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// Start starts the API server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.API.Host, s.config.API.Port),
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.config.API.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(s.config.API.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(s.config.API.IdleTimeoutSecs) * time.Second,
	}

	s.logger.Info("starting API server",
		zap.String("host", s.config.API.Host),
		zap.Int("port", s.config.API.Port))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the API server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "ok",
		"reference_count": s.matcher.Pool().Len(),
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}

// handleMatch handles POST /match
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var record match.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, s.matcher.Match(record))
}

// handleReconcile handles POST /reconcile
func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	var req ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Records) == 0 {
		respondWithError(w, http.StatusBadRequest, "No records provided")
		return
	}

	results, err := s.matcher.MatchAll(r.Context(), req.Records)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Reconciliation failed: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, ReconcileResponse{
		RunID:   uuid.NewString(),
		Count:   len(results),
		Results: results,
	})
}

// handleReferenceCount handles GET /reference/count
func (s *Server) handleReferenceCount(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]int{
		"count": s.matcher.Pool().Len(),
	})
}

// Response helpers

// respondWithError responds with an error
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON responds with JSON
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
