// pkg/ingest/metrics.go
package ingest

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Metrics tracks totals across ingestion runs for the lifetime of the
// process.
type Metrics struct {
	mu     sync.Mutex
	logger *zap.Logger

	StartTime          time.Time
	FilesProcessed     int
	FilesFailed        int
	TotalRowsRead      int64
	TotalRowsUploaded  int64
	TotalCleaningOps   int64
	LastFile           string
	LastFileFinishedAt time.Time
}

// NewMetrics creates a new metrics tracker
func NewMetrics(logger *zap.Logger) *Metrics {
	return &Metrics{
		StartTime: time.Now(),
		logger:    logger,
	}
}

// RecordResult incorporates one ingestion result into the totals.
func (m *Metrics) RecordResult(result *IngestResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if result.Success {
		m.FilesProcessed++
	} else {
		m.FilesFailed++
	}
	m.TotalRowsRead += int64(result.RowsRead)
	m.TotalRowsUploaded += int64(result.RowsUploaded)
	m.TotalCleaningOps += int64(result.CleaningOperations)
	m.LastFile = result.Filename
	m.LastFileFinishedAt = result.EndTime

	if m.logger != nil {
		m.logger.Info("Ingestion completed",
			zap.String("filename", result.Filename),
			zap.Bool("success", result.Success),
			zap.Int("rowsRead", result.RowsRead),
			zap.Int("rowsUploaded", result.RowsUploaded),
			zap.Int("cleaningOps", result.CleaningOperations),
			zap.Duration("duration", result.Duration))
	}
}

// Snapshot returns a copy of the current totals for reporting.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return MetricsSnapshot{
		Uptime:            time.Since(m.StartTime),
		FilesProcessed:    m.FilesProcessed,
		FilesFailed:       m.FilesFailed,
		TotalRowsRead:     m.TotalRowsRead,
		TotalRowsUploaded: m.TotalRowsUploaded,
		TotalCleaningOps:  m.TotalCleaningOps,
		LastFile:          m.LastFile,
	}
}

// MetricsSnapshot is a point-in-time copy of ingestion totals.
type MetricsSnapshot struct {
	Uptime            time.Duration `json:"uptime"`
	FilesProcessed    int           `json:"files_processed"`
	FilesFailed       int           `json:"files_failed"`
	TotalRowsRead     int64         `json:"total_rows_read"`
	TotalRowsUploaded int64         `json:"total_rows_uploaded"`
	TotalCleaningOps  int64         `json:"total_cleaning_ops"`
	LastFile          string        `json:"last_file"`
}
