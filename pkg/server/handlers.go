// pkg/server/handlers.go
package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GrayMists/sales-ingress/pkg/analytics"
	"github.com/GrayMists/sales-ingress/pkg/importer"
	"github.com/GrayMists/sales-ingress/pkg/ingest"
	"github.com/GrayMists/sales-ingress/pkg/store"
)

// handleUpload accepts a multipart workbook and runs the full ingestion
// sequence. A workbook missing required columns is a client error carrying
// the exact missing header names.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	result, err := s.ingestSvc.IngestFile(r.Context(), file, header.Filename)
	if err != nil {
		var missingErr *importer.MissingColumnsError
		if errors.As(err, &missingErr) {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:          missingErr.Error(),
				MissingColumns: missingErr.Columns,
			})
			return
		}

		s.logger.Error("Ingestion failed",
			zap.String("filename", header.Filename),
			zap.Error(err))
		s.writeJSON(w, http.StatusBadGateway, struct {
			Error  string               `json:"error"`
			Result *ingestResultPayload `json:"result"`
		}{
			Error:  err.Error(),
			Result: toResultPayload(result),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, toResultPayload(result))
}

// salesFilterFromRequest resolves the region code query parameter into the
// stored oblast name.
func (s *Server) salesFilterFromRequest(r *http.Request) store.SalesFilter {
	return store.SalesFilter{
		Region:    s.registry.DistrictName(r.URL.Query().Get("region")),
		Month:     r.URL.Query().Get("month"),
		Territory: r.URL.Query().Get("territory"),
	}
}

func (s *Server) handleSales(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	records, err := s.reader.FetchSales(r.Context(), s.salesFilterFromRequest(r))
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, analytics.WithNormalizedStreets(records))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	records, err := s.reader.FetchSales(r.Context(), s.salesFilterFromRequest(r))
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, analytics.Summarize(records))
}

func (s *Server) handleDynamics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	records, err := s.reader.FetchSales(r.Context(), s.salesFilterFromRequest(r))
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, analytics.AnalyzeSalesDynamics(records))
}

func (s *Server) handleDecades(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	records, err := s.reader.FetchSales(r.Context(), s.salesFilterFromRequest(r))
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	records = analytics.FilterByProductLine(records, r.URL.Query().Get("product_line"))
	s.writeJSON(w, http.StatusOK, analytics.CalculateDecades(records))
}

func (s *Server) handleReps(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	reps, err := s.reader.FetchReps(r.Context(), r.URL.Query().Get("region"))
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, analytics.GroupReps(reps))
}

func (s *Server) handleKPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	regionName := r.URL.Query().Get("region")
	if regionName == "" {
		s.writeJSON(w, http.StatusOK, analytics.KPIRegions())
		return
	}

	kpi, ok := analytics.KPIFor(regionName)
	if !ok {
		s.writeError(w, http.StatusNotFound, "no KPI series for region: "+regionName)
		return
	}

	s.writeJSON(w, http.StatusOK, kpi)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, struct {
		Status  string                 `json:"status"`
		Ingest  ingest.MetricsSnapshot `json:"ingest"`
		Regions []string               `json:"regions"`
	}{
		Status:  "ok",
		Ingest:  s.ingestSvc.Metrics().Snapshot(),
		Regions: s.registry.Codes(),
	})
}

// ingestResultPayload is the JSON shape of one ingestion run.
type ingestResultPayload struct {
	JobID              string   `json:"job_id"`
	Filename           string   `json:"filename"`
	SourceFileDate     string   `json:"source_file_date"`
	Success            bool     `json:"success"`
	RowsRead           int      `json:"rows_read"`
	RowsCleaned        int      `json:"rows_cleaned"`
	RowsUploaded       int      `json:"rows_uploaded"`
	CleaningOperations int      `json:"cleaning_operations"`
	Verified           bool     `json:"verified"`
	Warnings           []string `json:"warnings,omitempty"`
	Errors             []string `json:"errors,omitempty"`
	DurationMillis     int64    `json:"duration_ms"`
}

func toResultPayload(result *ingest.IngestResult) *ingestResultPayload {
	if result == nil {
		return nil
	}
	return &ingestResultPayload{
		JobID:              result.JobID,
		Filename:           result.Filename,
		SourceFileDate:     result.SourceFileDate,
		Success:            result.Success,
		RowsRead:           result.RowsRead,
		RowsCleaned:        result.RowsCleaned,
		RowsUploaded:       result.RowsUploaded,
		CleaningOperations: result.CleaningOperations,
		Verified:           result.Verified,
		Warnings:           result.Warnings,
		Errors:             result.Errors,
		DurationMillis:     result.Duration.Milliseconds(),
	}
}
