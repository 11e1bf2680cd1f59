// pkg/ingest/verifier.go
package ingest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// RowCounter counts stored rows for a source file date. Satisfied by the
// store's direct database backend.
type RowCounter interface {
	CountSalesRows(ctx context.Context, table, sourceFileDate string) (int64, error)
}

// Verifier checks that an upload landed completely by comparing the number
// of records sent against the number of rows the store reports.
type Verifier struct {
	counter RowCounter
	table   string
	logger  *zap.Logger
	timeout time.Duration
}

// NewVerifier creates a new verifier
func NewVerifier(counter RowCounter, table string, logger *zap.Logger) *Verifier {
	return &Verifier{
		counter: counter,
		table:   table,
		logger:  logger,
		timeout: time.Minute,
	}
}

// WithTimeout sets a custom timeout for verification queries
func (v *Verifier) WithTimeout(timeout time.Duration) *Verifier {
	v.timeout = timeout
	return v
}

// VerifyUpload compares the uploaded record count against the stored row
// count for one source file date. A mismatch is reported, not an error:
// the caller decides whether to retry or flag the run.
func (v *Verifier) VerifyUpload(ctx context.Context, sourceFileDate string, expected int64) (bool, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	stored, err := v.counter.CountSalesRows(ctx, v.table, sourceFileDate)
	if err != nil {
		return false, 0, fmt.Errorf("failed to count stored rows: %w", err)
	}

	matches := stored >= expected
	if matches {
		v.logger.Info("Upload verification successful",
			zap.String("table", v.table),
			zap.String("sourceFileDate", sourceFileDate),
			zap.Int64("storedRows", stored))
	} else {
		v.logger.Warn("Upload row count mismatch",
			zap.String("table", v.table),
			zap.String("sourceFileDate", sourceFileDate),
			zap.Int64("expected", expected),
			zap.Int64("stored", stored),
			zap.Int64("difference", expected-stored))
	}

	return matches, stored, nil
}
