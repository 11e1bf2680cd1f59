// pkg/ingest/job.go
package ingest

import (
	"time"

	"github.com/google/uuid"
)

// IngestJob represents one uploaded workbook to process.
type IngestJob struct {
	ID         string    // Unique job identifier
	Filename   string    // Original upload filename
	CreatedAt  time.Time // Job creation timestamp
	RetryCount int       // Number of retries attempted
	MaxRetries int       // Maximum allowed retries
}

// NewIngestJob creates a new ingest job with defaults
func NewIngestJob(filename string) IngestJob {
	return IngestJob{
		ID:         uuid.New().String(),
		Filename:   filename,
		CreatedAt:  time.Now(),
		RetryCount: 0,
		MaxRetries: 3,
	}
}

// WithMaxRetries sets the maximum retry count and returns the modified job
func (j IngestJob) WithMaxRetries(maxRetries int) IngestJob {
	j.MaxRetries = maxRetries
	return j
}

// IsRetryable checks if the job can be retried
func (j IngestJob) IsRetryable() bool {
	return j.RetryCount < j.MaxRetries
}

// Retry increments the retry count and returns the modified job
func (j IngestJob) Retry() IngestJob {
	j.RetryCount++
	return j
}

// IngestResult represents the outcome of one ingestion run.
type IngestResult struct {
	JobID              string
	Filename           string
	SourceFileDate     string
	Success            bool
	RowsRead           int
	RowsCleaned        int
	RowsUploaded       int
	CleaningOperations int
	Verified           bool
	StoredRowCount     int64
	Errors             []string
	Warnings           []string
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
	RetryCount         int
}

// NewIngestResult initializes a result for a job
func NewIngestResult(job IngestJob) *IngestResult {
	return &IngestResult{
		JobID:      job.ID,
		Filename:   job.Filename,
		StartTime:  time.Now(),
		RetryCount: job.RetryCount,
		Errors:     make([]string, 0),
		Warnings:   make([]string, 0),
	}
}

// Complete marks the run as complete and calculates duration
func (r *IngestResult) Complete(success bool) {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	r.Success = success
}

// AddError adds an error to the result
func (r *IngestResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Success = false
}

// AddWarning adds a warning to the result
func (r *IngestResult) AddWarning(warning string) {
	r.Warnings = append(r.Warnings, warning)
}

// HasErrors checks if any errors occurred
func (r *IngestResult) HasErrors() bool {
	return len(r.Errors) > 0
}
