package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GrayMists/sales-ingress/pkg/model"
)

func TestSummarize(t *testing.T) {
	records := []model.CleanedRecord{
		rec("2024-07-10", "Тернопіль 1", "Кардіо", "Кардіолін", 10),
		rec("2024-07-10", "Тернопіль 1", "Кардіо", "Кардіолін", 5),
		rec("2024-07-10", "Тернопіль 1", "Кардіо", "Тонорма", 3),
		rec("2024-07-10", "Тернопіль 2", "Гастро", "Гастрофіт", 30),
	}

	summary := Summarize(records)

	// Totals sorted by quantity, highest first.
	require.Len(t, summary.ProductTotals, 3)
	assert.Equal(t, ProductTotal{ProductName: "Гастрофіт", Quantity: 30}, summary.ProductTotals[0])
	assert.Equal(t, ProductTotal{ProductName: "Кардіолін", Quantity: 15}, summary.ProductTotals[1])
	assert.Equal(t, ProductTotal{ProductName: "Тонорма", Quantity: 3}, summary.ProductTotals[2])

	assert.InDelta(t, 16.0, summary.MeanQuantity, 1e-9)

	require.Len(t, summary.TreemapGroups, 3)
	assert.Equal(t, "Гастро", summary.TreemapGroups[0].ProductLine)
	assert.Equal(t, "Кардіолін", summary.TreemapGroups[1].ProductName)
	assert.Equal(t, 15.0, summary.TreemapGroups[1].Quantity)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Empty(t, summary.ProductTotals)
	assert.Zero(t, summary.MeanQuantity)
}

func TestNormalizeStreet(t *testing.T) {
	assert.Equal(t, "Вул.Руська", NormalizeStreet("  вул.руська "))
	assert.Equal(t, "", NormalizeStreet("   "))
}

func TestWithNormalizedStreets(t *testing.T) {
	records := []model.CleanedRecord{
		{Street: " вул.зарічна", Client: "Аптека"},
	}
	rows := WithNormalizedStreets(records)
	require.Len(t, rows, 1)
	assert.Equal(t, "Вул.Зарічна", rows[0].StreetNormalized)
	assert.Equal(t, "Аптека", rows[0].Client)
}
