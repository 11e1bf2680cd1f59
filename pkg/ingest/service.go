// pkg/ingest/service.go
package ingest

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/GrayMists/sales-ingress/pkg/cleaner"
	"github.com/GrayMists/sales-ingress/pkg/model"
	"github.com/GrayMists/sales-ingress/pkg/store"
)

// WorkbookReader parses an uploaded workbook into raw records.
type WorkbookReader interface {
	ReadWorkbook(r io.Reader, filename string) ([]model.RawRecord, error)
}

// SalesUploader writes cleaned records to the store.
type SalesUploader interface {
	UploadSales(ctx context.Context, records []model.CleanedRecord) (*store.UploadResult, error)
}

// AuditRecorder persists the cleaning audit trail.
type AuditRecorder interface {
	RecordCleaningOperations(ctx context.Context, ops []model.CleaningOperation) error
}

// CacheInvalidator drops cached reads after new rows land.
type CacheInvalidator interface {
	Invalidate()
}

// Service runs the full ingestion sequence for one uploaded workbook:
// import, clean, upload, audit, verify. Files are processed one at a time;
// each monthly file is small enough that a worker pool would only
// complicate failure handling.
type Service struct {
	reader      WorkbookReader
	pipeline    *cleaner.Pipeline
	uploader    SalesUploader
	audit       AuditRecorder    // optional
	verifier    *Verifier        // optional
	invalidator CacheInvalidator // optional
	metrics     *Metrics
	logger      *zap.Logger
}

// ServiceOptions carries the optional collaborators for a Service.
type ServiceOptions struct {
	Audit       AuditRecorder
	Verifier    *Verifier
	Invalidator CacheInvalidator
}

// NewService creates an ingestion service.
func NewService(
	reader WorkbookReader,
	pipeline *cleaner.Pipeline,
	uploader SalesUploader,
	opts ServiceOptions,
	logger *zap.Logger,
) (*Service, error) {
	if reader == nil {
		return nil, errors.New("workbook reader cannot be nil")
	}
	if pipeline == nil {
		return nil, errors.New("cleaning pipeline cannot be nil")
	}
	if uploader == nil {
		return nil, errors.New("uploader cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Service{
		reader:      reader,
		pipeline:    pipeline,
		uploader:    uploader,
		audit:       opts.Audit,
		verifier:    opts.Verifier,
		invalidator: opts.Invalidator,
		metrics:     NewMetrics(logger),
		logger:      logger,
	}, nil
}

// Metrics returns the service's lifetime metrics tracker.
func (s *Service) Metrics() *Metrics {
	return s.metrics
}

// IngestFile processes one uploaded workbook end to end. The returned result
// is populated even when an error is returned, so callers can report how far
// the run got.
func (s *Service) IngestFile(ctx context.Context, r io.Reader, filename string) (*IngestResult, error) {
	job := NewIngestJob(filename)
	result := NewIngestResult(job)
	defer s.metrics.RecordResult(result)

	s.logger.Info("Starting ingestion",
		zap.String("jobID", job.ID),
		zap.String("filename", filename))

	rows, err := s.reader.ReadWorkbook(r, filename)
	if err != nil {
		result.AddError(err.Error())
		result.Complete(false)
		return result, err
	}
	result.RowsRead = len(rows)

	if len(rows) == 0 {
		result.AddWarning("workbook contained no importable rows")
		result.Complete(true)
		return result, nil
	}

	cleaned, ops := s.pipeline.CleanRows(rows, filename)
	result.RowsCleaned = len(cleaned)
	result.CleaningOperations = len(ops)
	if len(cleaned) > 0 {
		result.SourceFileDate = cleaned[0].SourceFileDate
	}

	uploadResult, err := s.uploader.UploadSales(ctx, cleaned)
	if uploadResult != nil {
		result.RowsUploaded = uploadResult.UploadedRecords
	}
	if err != nil {
		result.AddError(err.Error())
		result.Complete(false)
		return result, err
	}

	// The upload is committed at this point. Audit and verification failures
	// downgrade to warnings so a flaky side channel cannot fail the run.
	if s.audit != nil && len(ops) > 0 {
		if auditErr := s.audit.RecordCleaningOperations(ctx, ops); auditErr != nil {
			s.logger.Warn("Failed to record cleaning audit", zap.Error(auditErr))
			result.AddWarning("cleaning audit not recorded: " + auditErr.Error())
		}
	}

	if s.verifier != nil && result.SourceFileDate != "" {
		verified, stored, verifyErr := s.verifier.VerifyUpload(ctx, result.SourceFileDate, int64(result.RowsUploaded))
		if verifyErr != nil {
			result.AddWarning("upload verification failed: " + verifyErr.Error())
		} else {
			result.Verified = verified
			result.StoredRowCount = stored
			if !verified {
				result.AddWarning("stored row count is lower than uploaded count")
			}
		}
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}

	result.Complete(true)
	return result, nil
}
