// pkg/store/cache.go
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/GrayMists/sales-ingress/pkg/model"
)

// SalesReader is the read side of the store, satisfied by Client.
type SalesReader interface {
	FetchSales(ctx context.Context, filter SalesFilter) ([]model.CleanedRecord, error)
	FetchReps(ctx context.Context, regionCode string) ([]model.RepRecord, error)
}

// CachedReader memoizes fetches for the lifetime of the process. Monthly
// sales data only changes when a new file is ingested, so repeated analytics
// requests reuse the first result.
type CachedReader struct {
	reader SalesReader
	logger *zap.Logger

	mu    sync.Mutex
	sales map[SalesFilter][]model.CleanedRecord
	reps  map[string][]model.RepRecord
}

// NewCachedReader wraps a reader with memoization.
func NewCachedReader(reader SalesReader, logger *zap.Logger) *CachedReader {
	return &CachedReader{
		reader: reader,
		logger: logger,
		sales:  make(map[SalesFilter][]model.CleanedRecord),
		reps:   make(map[string][]model.RepRecord),
	}
}

// FetchSales returns the cached result for the filter, fetching on first use.
func (c *CachedReader) FetchSales(ctx context.Context, filter SalesFilter) ([]model.CleanedRecord, error) {
	c.mu.Lock()
	if cached, ok := c.sales[filter]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	records, err := c.reader.FetchSales(ctx, filter)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.sales[filter] = records
	c.mu.Unlock()

	c.logger.Debug("Sales cached",
		zap.String("region", filter.Region),
		zap.String("month", filter.Month),
		zap.Int("records", len(records)))

	return records, nil
}

// FetchReps returns the cached rep rows for a region code.
func (c *CachedReader) FetchReps(ctx context.Context, regionCode string) ([]model.RepRecord, error) {
	c.mu.Lock()
	if cached, ok := c.reps[regionCode]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	records, err := c.reader.FetchReps(ctx, regionCode)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.reps[regionCode] = records
	c.mu.Unlock()

	return records, nil
}

// Invalidate drops every cached result. Called after a successful upload so
// the next read sees the new rows.
func (c *CachedReader) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sales = make(map[SalesFilter][]model.CleanedRecord)
	c.reps = make(map[string][]model.RepRecord)
	c.logger.Debug("Store cache invalidated")
}
