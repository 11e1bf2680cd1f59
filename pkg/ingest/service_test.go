package ingest

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GrayMists/sales-ingress/pkg/cleaner"
	"github.com/GrayMists/sales-ingress/pkg/model"
	"github.com/GrayMists/sales-ingress/pkg/region"
	"github.com/GrayMists/sales-ingress/pkg/store"
)

type stubReader struct {
	rows []model.RawRecord
	err  error
}

func (s *stubReader) ReadWorkbook(_ io.Reader, _ string) ([]model.RawRecord, error) {
	return s.rows, s.err
}

type stubUploader struct {
	records  []model.CleanedRecord
	result   *store.UploadResult
	err      error
	uploaded bool
}

func (s *stubUploader) UploadSales(_ context.Context, records []model.CleanedRecord) (*store.UploadResult, error) {
	s.records = records
	s.uploaded = true
	if s.result == nil {
		s.result = &store.UploadResult{TotalRecords: len(records), UploadedRecords: len(records), Chunks: 1}
	}
	return s.result, s.err
}

type stubAudit struct {
	ops []model.CleaningOperation
	err error
}

func (s *stubAudit) RecordCleaningOperations(_ context.Context, ops []model.CleaningOperation) error {
	s.ops = ops
	return s.err
}

type stubInvalidator struct {
	called bool
}

func (s *stubInvalidator) Invalidate() { s.called = true }

type stubCounter struct {
	count int64
	err   error
}

func (s *stubCounter) CountSalesRows(_ context.Context, _, _ string) (int64, error) {
	return s.count, s.err
}

func testRows() []model.RawRecord {
	return []model.RawRecord{{
		Region:          "24. Тернопіль",
		City:            "Тернопіль",
		Client:          "Аптека №1",
		DeliveryAddress: model.Text("Тернопільська обл., м.Тернопіль, вул.Руська, 8"),
		ProductName:     model.Text("Кардіолін табл. №20"),
		Quantity:        7,
		Distributor:     "БаДМ",
	}}
}

func newTestService(t *testing.T, reader WorkbookReader, uploader SalesUploader, opts ServiceOptions) *Service {
	t.Helper()

	pipeline, err := cleaner.NewPipeline(region.DefaultRegistry(), zap.NewNop())
	require.NoError(t, err)

	svc, err := NewService(reader, pipeline, uploader, opts, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestNewService_Validation(t *testing.T) {
	pipeline, err := cleaner.NewPipeline(region.DefaultRegistry(), zap.NewNop())
	require.NoError(t, err)

	_, err = NewService(nil, pipeline, &stubUploader{}, ServiceOptions{}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewService(&stubReader{}, nil, &stubUploader{}, ServiceOptions{}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewService(&stubReader{}, pipeline, nil, ServiceOptions{}, zap.NewNop())
	assert.Error(t, err)
}

func TestIngestFile_FullRun(t *testing.T) {
	uploader := &stubUploader{}
	audit := &stubAudit{}
	invalidator := &stubInvalidator{}
	counter := &stubCounter{count: 1}

	svc := newTestService(t, &stubReader{rows: testRows()}, uploader, ServiceOptions{
		Audit:       audit,
		Verifier:    NewVerifier(counter, "sales_data_month", zap.NewNop()),
		Invalidator: invalidator,
	})

	result, err := svc.IngestFile(context.Background(), strings.NewReader(""), "sales_2024_07_01.xlsx")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.RowsRead)
	assert.Equal(t, 1, result.RowsCleaned)
	assert.Equal(t, 1, result.RowsUploaded)
	assert.Equal(t, "2024-07-01", result.SourceFileDate)
	assert.True(t, result.Verified)
	assert.Equal(t, int64(1), result.StoredRowCount)

	// Cleaned output reached the uploader, audit got the operations, and the
	// read cache was dropped.
	require.Len(t, uploader.records, 1)
	assert.Equal(t, "Тернопіль 1", uploader.records[0].Territory)
	assert.NotEmpty(t, audit.ops)
	assert.True(t, invalidator.called)
}

func TestIngestFile_ReadFailure(t *testing.T) {
	uploader := &stubUploader{}
	svc := newTestService(t, &stubReader{err: errors.New("bad workbook")}, uploader, ServiceOptions{})

	result, err := svc.IngestFile(context.Background(), strings.NewReader(""), "bad.xlsx")
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.True(t, result.HasErrors())
	assert.False(t, uploader.uploaded)
}

func TestIngestFile_UploadFailureKeepsPartialCounts(t *testing.T) {
	uploader := &stubUploader{
		result: &store.UploadResult{TotalRecords: 1, UploadedRecords: 0, Chunks: 1, FailedChunk: 1},
		err:    errors.New("store returned status 409"),
	}
	svc := newTestService(t, &stubReader{rows: testRows()}, uploader, ServiceOptions{})

	result, err := svc.IngestFile(context.Background(), strings.NewReader(""), "sales_2024_07_01.xlsx")
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 0, result.RowsUploaded)
	assert.Equal(t, 1, result.RowsCleaned)
}

func TestIngestFile_AuditFailureIsWarning(t *testing.T) {
	uploader := &stubUploader{}
	audit := &stubAudit{err: errors.New("connection refused")}
	svc := newTestService(t, &stubReader{rows: testRows()}, uploader, ServiceOptions{Audit: audit})

	result, err := svc.IngestFile(context.Background(), strings.NewReader(""), "sales_2024_07_01.xlsx")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Warnings)
}

func TestIngestFile_EmptyWorkbook(t *testing.T) {
	uploader := &stubUploader{}
	svc := newTestService(t, &stubReader{rows: nil}, uploader, ServiceOptions{})

	result, err := svc.IngestFile(context.Background(), strings.NewReader(""), "empty.xlsx")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, uploader.uploaded)
	assert.NotEmpty(t, result.Warnings)
}

func TestIngestFile_VerifierMismatchIsWarning(t *testing.T) {
	uploader := &stubUploader{}
	counter := &stubCounter{count: 0}
	svc := newTestService(t, &stubReader{rows: testRows()}, uploader, ServiceOptions{
		Verifier: NewVerifier(counter, "sales_data_month", zap.NewNop()),
	})

	result, err := svc.IngestFile(context.Background(), strings.NewReader(""), "sales_2024_07_01.xlsx")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.Verified)
	assert.NotEmpty(t, result.Warnings)
}

func TestMetrics_RecordsRuns(t *testing.T) {
	uploader := &stubUploader{}
	svc := newTestService(t, &stubReader{rows: testRows()}, uploader, ServiceOptions{})

	_, err := svc.IngestFile(context.Background(), strings.NewReader(""), "sales_2024_07_01.xlsx")
	require.NoError(t, err)

	snap := svc.Metrics().Snapshot()
	assert.Equal(t, 1, snap.FilesProcessed)
	assert.Equal(t, 0, snap.FilesFailed)
	assert.Equal(t, int64(1), snap.TotalRowsUploaded)
	assert.Equal(t, "sales_2024_07_01.xlsx", snap.LastFile)
}

func TestIngestJob_Retry(t *testing.T) {
	job := NewIngestJob("sales.xlsx").WithMaxRetries(2)
	assert.True(t, job.IsRetryable())

	job = job.Retry().Retry()
	assert.False(t, job.IsRetryable())
	assert.Equal(t, 2, job.RetryCount)
}
