package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func buildWorkbook(t *testing.T, header []string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &headerCells))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return buf
}

func fullHeader() []string {
	return []string{
		"Регіон", "Місто", "Клієнт", "Факт.адреса доставки",
		"Найменування", "Кількість", "Дистриб'ютор",
	}
}

func newTestImporter(t *testing.T, allowed []string) *Importer {
	t.Helper()
	imp, err := New(allowed, zap.NewNop())
	require.NoError(t, err)
	return imp
}

func TestNew_RequiresLogger(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestReadWorkbook_ParsesRows(t *testing.T) {
	buf := buildWorkbook(t, fullHeader(), [][]interface{}{
		{"24. Тернопіль", "Тернопіль", "Аптека №1", "м.Тернопіль, вул.Руська, 8", "Кардіолін табл. №20", 7, "БаДМ"},
		{"24. Тернопіль", "Тернопіль", "Аптека №2", "м.Тернопіль, вул.Зарічна, 12", "Гастрофіт", "3,5", "Оптіма"},
	})

	imp := newTestImporter(t, nil)
	records, err := imp.ReadWorkbook(buf, "sales_2024_07_01.xlsx")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "24. Тернопіль", records[0].Region)
	assert.Equal(t, "Аптека №1", records[0].Client)
	assert.Equal(t, "м.Тернопіль, вул.Руська, 8", records[0].DeliveryAddress.String())
	assert.Equal(t, "Кардіолін табл. №20", records[0].ProductName.String())
	assert.Equal(t, 7.0, records[0].Quantity)
	assert.Equal(t, "БаДМ", records[0].Distributor)

	// Comma decimal separator is accepted.
	assert.Equal(t, 3.5, records[1].Quantity)
}

func TestReadWorkbook_MissingColumns(t *testing.T) {
	buf := buildWorkbook(t, []string{"Регіон", "Клієнт", "Кількість"}, nil)

	imp := newTestImporter(t, nil)
	_, err := imp.ReadWorkbook(buf, "broken.xlsx")
	require.Error(t, err)

	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.ElementsMatch(t, []string{
		"Місто", "Факт.адреса доставки", "Найменування", "Дистриб'ютор",
	}, missingErr.Columns)
}

func TestReadWorkbook_SkipsEmptyRows(t *testing.T) {
	buf := buildWorkbook(t, fullHeader(), [][]interface{}{
		{"24. Тернопіль", "Тернопіль", "Аптека", "адреса", "Тонорма", 1, "БаДМ"},
		{"", "", "", "", "", "", ""},
		{"24. Тернопіль", "Тернопіль", "Аптека", "адреса", "Седафітон", 2, "БаДМ"},
	})

	imp := newTestImporter(t, nil)
	records, err := imp.ReadWorkbook(buf, "sales.xlsx")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReadWorkbook_FiltersRegions(t *testing.T) {
	buf := buildWorkbook(t, fullHeader(), [][]interface{}{
		{"24. Тернопіль", "Тернопіль", "Аптека", "адреса", "Тонорма", 1, "БаДМ"},
		{"05. Вінниця", "Вінниця", "Аптека", "адреса", "Тонорма", 4, "БаДМ"},
	})

	imp := newTestImporter(t, []string{"24. Тернопіль"})
	records, err := imp.ReadWorkbook(buf, "sales.xlsx")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "24. Тернопіль", records[0].Region)
}

func TestReadWorkbook_BlankCellsBecomeMissing(t *testing.T) {
	buf := buildWorkbook(t, fullHeader(), [][]interface{}{
		{"24. Тернопіль", "Тернопіль", "Аптека", "", "", "x", "БаДМ"},
	})

	imp := newTestImporter(t, nil)
	records, err := imp.ReadWorkbook(buf, "sales.xlsx")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.False(t, records[0].DeliveryAddress.IsText())
	assert.False(t, records[0].ProductName.IsText())
	// Unparseable quantity degrades to zero instead of failing the upload.
	assert.Equal(t, 0.0, records[0].Quantity)
}

func TestReadWorkbook_NotAWorkbook(t *testing.T) {
	imp := newTestImporter(t, nil)
	_, err := imp.ReadWorkbook(bytes.NewReader([]byte("not an xlsx")), "garbage.xlsx")
	assert.Error(t, err)
}
