// pkg/importer/importer.go
package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/GrayMists/sales-ingress/pkg/model"
)

// Importer reads distributor sales workbooks into raw records. It validates
// headers, drops empty rows and filters out regions the pipeline is not
// configured for.
type Importer struct {
	logger         *zap.Logger
	allowedRegions map[string]bool
}

// New creates an Importer. allowedRegions may be empty, which admits every
// region in the upload.
func New(allowedRegions []string, logger *zap.Logger) (*Importer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	allowed := make(map[string]bool, len(allowedRegions))
	for _, r := range allowedRegions {
		allowed[strings.TrimSpace(r)] = true
	}

	return &Importer{
		logger:         logger,
		allowedRegions: allowed,
	}, nil
}

// ReadWorkbook parses an uploaded .xlsx stream into raw records. The first
// sheet is read; the first row must hold the required headers.
func (i *Importer) ReadWorkbook(r io.Reader, filename string) ([]model.RawRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filename, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			i.logger.Warn("Failed to close workbook", zap.Error(cerr))
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", filename)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s is empty", filename)
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var (
		records  []model.RawRecord
		skipped  int
		filtered int
	)

	for idx, row := range rows[1:] {
		if isEmptyRow(row) {
			skipped++
			continue
		}

		rec := i.parseRow(row, columns, idx+2)
		if len(i.allowedRegions) > 0 && !i.allowedRegions[rec.Region] {
			filtered++
			continue
		}

		records = append(records, rec)
	}

	i.logger.Info("Workbook parsed",
		zap.String("filename", filename),
		zap.String("sheet", sheets[0]),
		zap.Int("records", len(records)),
		zap.Int("emptyRows", skipped),
		zap.Int("filteredByRegion", filtered))

	return records, nil
}

// mapColumns resolves header names to their column index and reports every
// missing required header at once.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, exists := columns[name]; !exists {
			columns[name] = idx
		}
	}

	var missing []string
	for _, required := range RequiredColumns() {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	return columns, nil
}

func (i *Importer) parseRow(row []string, columns map[string]int, rowNum int) model.RawRecord {
	return model.RawRecord{
		Region:          cellAt(row, columns[ColRegion]),
		City:            cellAt(row, columns[ColCity]),
		Client:          cellAt(row, columns[ColClient]),
		DeliveryAddress: valueAt(row, columns[ColAddress]),
		ProductName:     valueAt(row, columns[ColProduct]),
		Quantity:        i.parseQuantity(cellAt(row, columns[ColQuantity]), rowNum),
		Distributor:     cellAt(row, columns[ColDistributor]),
	}
}

// cellAt returns the cell at idx or "" when the row is shorter. GetRows trims
// trailing empty cells, so short rows are routine.
func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

// valueAt treats blank cells as missing rather than empty text, so downstream
// cleaning can tell "no address" apart from an address it emptied itself.
func valueAt(row []string, idx int) model.Value {
	cell := strings.TrimSpace(cellAt(row, idx))
	if cell == "" {
		return model.Missing()
	}
	return model.Text(cell)
}

// parseQuantity coerces a quantity cell to float64. Distributor exports use
// both dot and comma decimal separators.
func (i *Importer) parseQuantity(cell string, rowNum int) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0
	}

	normalized := strings.ReplaceAll(cell, ",", ".")
	normalized = strings.ReplaceAll(normalized, " ", "")

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		i.logger.Warn("Unparseable quantity cell, using zero",
			zap.String("cell", cell),
			zap.Int("row", rowNum))
		return 0
	}
	return value
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
