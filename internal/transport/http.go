package transport

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kdaisho/evetrack/internal/domain/earnedvalue"
)

// ReportService computes earned-value reports.
type ReportService interface {
	ProjectReport(ctx context.Context, year, month int, projectID string) (*earnedvalue.ProjectReport, error)
	WorkTypeReport(ctx context.Context, year, month int) (*earnedvalue.WorkTypeReport, error)
}

// Server wires HTTP handlers.
type Server struct {
	reports ReportService
	logger  *slog.Logger
	dev     bool
}

// NewServer creates an HTTP router around the report service. When dev is
// false, upstream error details are suppressed from responses.
func NewServer(reports ReportService, logger *slog.Logger, dev bool) *chi.Mux {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(requestLogger(logger))

	srv := &Server{reports: reports, logger: logger, dev: dev}

	r.Get("/api/reports/projects", srv.handleProjectReport)
	r.Get("/api/reports/work-types", srv.handleWorkTypeReport)
	r.Get("/health", srv.handleHealth)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleProjectReport(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonth(r, time.Now())
	projectID := r.URL.Query().Get("project_id")

	report, err := s.reports.ProjectReport(r.Context(), year, month, projectID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, report)
}

func (s *Server) handleWorkTypeReport(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonth(r, time.Now())

	report, err := s.reports.WorkTypeReport(r.Context(), year, month)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, report)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// writeError reports a data-source failure. The underlying message is
// surfaced only in development builds.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.logger.Error("report computation failed", "error", err)

	msg := "internal error"
	if s.dev {
		msg = err.Error()
	}
	http.Error(w, msg, http.StatusInternalServerError)
}

// requestLogger logs each request with its duration.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start))
		})
	}
}
