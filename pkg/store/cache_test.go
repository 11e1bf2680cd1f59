package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GrayMists/sales-ingress/pkg/model"
)

type countingReader struct {
	salesCalls int
	repCalls   int
}

func (r *countingReader) FetchSales(_ context.Context, _ SalesFilter) ([]model.CleanedRecord, error) {
	r.salesCalls++
	return []model.CleanedRecord{{Quantity: 1}}, nil
}

func (r *countingReader) FetchReps(_ context.Context, _ string) ([]model.RepRecord, error) {
	r.repCalls++
	return []model.RepRecord{{Name: "Іваненко"}}, nil
}

func TestCachedReader_MemoizesPerFilter(t *testing.T) {
	reader := &countingReader{}
	cached := NewCachedReader(reader, zap.NewNop())

	filter := SalesFilter{Region: "Тернопільська", Month: "2024-07-01"}
	for i := 0; i < 3; i++ {
		records, err := cached.FetchSales(context.Background(), filter)
		require.NoError(t, err)
		require.Len(t, records, 1)
	}
	assert.Equal(t, 1, reader.salesCalls)

	// A different filter is a different cache entry.
	_, err := cached.FetchSales(context.Background(), SalesFilter{Month: "2024-08-01"})
	require.NoError(t, err)
	assert.Equal(t, 2, reader.salesCalls)
}

func TestCachedReader_MemoizesReps(t *testing.T) {
	reader := &countingReader{}
	cached := NewCachedReader(reader, zap.NewNop())

	for i := 0; i < 2; i++ {
		_, err := cached.FetchReps(context.Background(), "24. Тернопіль")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, reader.repCalls)
}

func TestCachedReader_InvalidateForcesRefetch(t *testing.T) {
	reader := &countingReader{}
	cached := NewCachedReader(reader, zap.NewNop())

	filter := SalesFilter{Month: "2024-07-01"}
	_, err := cached.FetchSales(context.Background(), filter)
	require.NoError(t, err)

	cached.Invalidate()

	_, err = cached.FetchSales(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 2, reader.salesCalls)
}
