package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GrayMists/sales-ingress/pkg/model"
	"github.com/GrayMists/sales-ingress/pkg/region"
)

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := NewPipeline(region.DefaultRegistry(), zap.NewNop())
	require.NoError(t, err)
	return p
}

func TestNewPipeline_Validation(t *testing.T) {
	_, err := NewPipeline(nil, zap.NewNop())
	assert.Error(t, err)

	_, err = NewPipeline(region.DefaultRegistry(), nil)
	assert.Error(t, err)
}

func TestCleanRows_FullSequence(t *testing.T) {
	p := newTestPipeline(t)

	rows := []model.RawRecord{{
		Region:          "24. Тернопіль",
		City:            "Тернопіль",
		Client:          " Аптека №1 ",
		DeliveryAddress: model.Text("Тернопільська обл., м. Тернопіль, вул. Зарічна, 12"),
		ProductName:     model.Text("Кардіолін табл. №20"),
		Quantity:        7,
		Distributor:     "БаДМ",
	}}

	cleaned, ops := p.CleanRows(rows, "monthly_sales_2024_07_01.xlsx")
	require.Len(t, cleaned, 1)

	rec := cleaned[0]
	assert.Equal(t, "м.Тернопіль, вул.Зарічна, 12", rec.DeliveryAddress)
	assert.Equal(t, "м.Тернопіль", rec.City)
	assert.Equal(t, "вул.Зарічна", rec.Street)
	assert.Equal(t, "12", rec.HouseNumber)
	// The street override beats the base city territory.
	assert.Equal(t, "Тернопіль 2", rec.Territory)
	assert.Equal(t, "Кардіо", rec.ProductLine)
	assert.Equal(t, "2024-07-01", rec.SourceFileDate)
	assert.Equal(t, "Аптека №1", rec.Client)

	require.NotEmpty(t, ops)
	assert.Equal(t, "address_normalization", ops[0].Operation)
	assert.Equal(t, "Тернопільська обл., м. Тернопіль, вул. Зарічна, 12", ops[0].OriginalValue)
}

func TestCleanRows_CollapsesDoubledSeparator(t *testing.T) {
	p := newTestPipeline(t)

	rows := []model.RawRecord{{
		Region:          "24. Тернопіль",
		DeliveryAddress: model.Text("м.Тернопіль,Тернопільський район, вул.Руська, 8"),
		ProductName:     model.Text("Гастрофіт"),
	}}

	cleaned, _ := p.CleanRows(rows, "sales_2024_07_10.xlsx")
	require.Len(t, cleaned, 1)
	assert.Equal(t, "м.Тернопіль, вул.Руська, 8", cleaned[0].DeliveryAddress)
	assert.Equal(t, "вул.Руська", cleaned[0].Street)
	assert.Equal(t, "Тернопіль 1", cleaned[0].Territory)
}

func TestCleanRows_UnknownRegionPassesThrough(t *testing.T) {
	p := newTestPipeline(t)

	raw := model.RawRecord{
		Region:          "99. Невідомий",
		City:            " Київ ",
		Client:          "Клієнт",
		DeliveryAddress: model.Text("Київська обл., м.Київ, вул.Хрещатик, 1"),
		ProductName:     model.Text("Кардіолін"),
		Quantity:        3,
		Distributor:     "Оптіма",
	}

	cleaned, ops := p.CleanRows([]model.RawRecord{raw}, "sales_2024_07_01.xlsx")
	require.Len(t, cleaned, 1)
	assert.Empty(t, ops)

	rec := cleaned[0]
	assert.Equal(t, raw.City, rec.City)
	assert.Equal(t, "Київська обл., м.Київ, вул.Хрещатик, 1", rec.DeliveryAddress)
	assert.Equal(t, "", rec.Territory)
	assert.Equal(t, "", rec.ProductLine)
	assert.Equal(t, "", rec.Street)
	assert.Equal(t, "", rec.SourceFileDate)
}

func TestCleanRows_CityLosesInternalSpaces(t *testing.T) {
	p := newTestPipeline(t)

	rows := []model.RawRecord{{
		Region:          "10. Івано-Франк",
		DeliveryAddress: model.Text("м. Івано - Франківськ, вул.Незалежності, 44"),
		ProductName:     model.Text("Респіброн сироп"),
	}}

	cleaned, _ := p.CleanRows(rows, "sales_2024_06_20.xlsx")
	require.Len(t, cleaned, 1)
	assert.NotContains(t, cleaned[0].City, " ")
}

func TestCleanRows_MissingAddressDegradesToEmptyFields(t *testing.T) {
	p := newTestPipeline(t)

	rows := []model.RawRecord{{
		Region:          "24. Тернопіль",
		DeliveryAddress: model.Missing(),
		ProductName:     model.Missing(),
		Quantity:        1,
	}}

	cleaned, _ := p.CleanRows(rows, "sales_2024_07_01.xlsx")
	require.Len(t, cleaned, 1)
	assert.Equal(t, "", cleaned[0].DeliveryAddress)
	assert.Equal(t, "", cleaned[0].City)
	assert.Equal(t, "", cleaned[0].Territory)
	assert.Equal(t, "", cleaned[0].ProductLine)
	assert.Equal(t, "2024-07-01", cleaned[0].SourceFileDate)
}
