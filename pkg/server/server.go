// pkg/server/server.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/GrayMists/sales-ingress/pkg/ingest"
	"github.com/GrayMists/sales-ingress/pkg/region"
	"github.com/GrayMists/sales-ingress/pkg/store"
)

// Server exposes the ingestion and analytics surface over HTTP.
type Server struct {
	ingestSvc  *ingest.Service
	reader     store.SalesReader
	registry   *region.Registry
	logger     *zap.Logger
	httpServer *http.Server

	maxUploadBytes int64
}

// NewServer wires the HTTP layer. reader is usually the memoized store
// reader so repeated analytics calls do not refetch.
func NewServer(
	addr string,
	ingestSvc *ingest.Service,
	reader store.SalesReader,
	registry *region.Registry,
	logger *zap.Logger,
) (*Server, error) {
	if ingestSvc == nil {
		return nil, errors.New("ingest service cannot be nil")
	}
	if reader == nil {
		return nil, errors.New("store reader cannot be nil")
	}
	if registry == nil {
		return nil, errors.New("region registry cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	s := &Server{
		ingestSvc:      ingestSvc,
		reader:         reader,
		registry:       registry,
		logger:         logger,
		maxUploadBytes: 32 << 20, // Monthly exports are a few MB at most
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
	}

	return s, nil
}

// Routes builds the request multiplexer. Exposed separately so tests can
// drive handlers without a listening socket.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/upload", s.handleUpload)
	mux.HandleFunc("/api/sales", s.handleSales)
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/dynamics", s.handleDynamics)
	mux.HandleFunc("/api/decades", s.handleDecades)
	mux.HandleFunc("/api/reps", s.handleReps)
	mux.HandleFunc("/api/kpi", s.handleKPI)
	mux.HandleFunc("/healthz", s.handleHealth)
	return s.logRequests(mux)
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("Request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("Failed to encode response", zap.Error(err))
	}
}

type errorResponse struct {
	Error          string   `json:"error"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
