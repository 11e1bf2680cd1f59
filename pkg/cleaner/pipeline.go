// pkg/cleaner/pipeline.go
package cleaner

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GrayMists/sales-ingress/pkg/model"
	"github.com/GrayMists/sales-ingress/pkg/region"
)

// Pipeline cleans uploaded rows: address normalization, field extraction and
// territory/product-line classification, driven by the per-region lookup
// tables. Each row is processed independently; the pipeline holds no mutable
// state between rows.
type Pipeline struct {
	registry *region.Registry
	products []region.ProductRule
	logger   *zap.Logger
}

// NewPipeline creates a cleaning pipeline over the given region registry.
func NewPipeline(registry *region.Registry, logger *zap.Logger) (*Pipeline, error) {
	if registry == nil {
		return nil, errors.New("region registry cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Pipeline{
		registry: registry,
		products: region.ProductLines(),
		logger:   logger,
	}, nil
}

// CleanRows cleans a batch of raw rows and returns the cleaned records along
// with the audit trail of mutations performed. Rows whose region has no
// configuration are passed through unmodified by policy. Cleaning never
// fails: malformed values degrade to empty derived fields.
func (p *Pipeline) CleanRows(rows []model.RawRecord, sourceFilename string) ([]model.CleanedRecord, []model.CleaningOperation) {
	fileDate := SourceFileDate(sourceFilename)

	cleaned := make([]model.CleanedRecord, 0, len(rows))
	var operations []model.CleaningOperation

	passedThrough := 0
	for i, row := range rows {
		record, ops, known := p.cleanRow(row, strconv.Itoa(i), fileDate)
		if !known {
			passedThrough++
		}
		cleaned = append(cleaned, record)
		operations = append(operations, ops...)
	}

	p.logger.Info("Cleaned upload rows",
		zap.String("sourceFilename", sourceFilename),
		zap.String("sourceFileDate", fileDate),
		zap.Int("rows", len(rows)),
		zap.Int("passedThrough", passedThrough),
		zap.Int("cleaningOperations", len(operations)))

	return cleaned, operations
}

// cleanRow runs the full per-row sequence. The returned bool reports whether
// the row's region had a configuration.
func (p *Pipeline) cleanRow(row model.RawRecord, rowID, fileDate string) (model.CleanedRecord, []model.CleaningOperation, bool) {
	cfg, ok := p.registry.ConfigFor(row.Region)
	if !ok {
		// Unknown region: keep every field as uploaded.
		return model.CleanedRecord{
			Region:          row.Region,
			City:            row.City,
			Client:          row.Client,
			DeliveryAddress: row.DeliveryAddress.Or(""),
			ProductName:     row.ProductName.Or(""),
			Quantity:        row.Quantity,
			Distributor:     row.Distributor,
		}, nil, false
	}

	var operations []model.CleaningOperation
	original := row.DeliveryAddress.Or("")

	// Normalization must run to completion before extraction: deletions
	// first, then both rewrite passes, then separator collapse.
	address := RemoveUnwanted(row.DeliveryAddress, cfg.Deletions)
	address = ApplyReplacements(address, cfg.CityReplacements)
	address = ApplyReplacements(address, cfg.StreetReplacements)
	address = CollapseSeparators(address)

	if address.IsText() && address.String() != original {
		operations = append(operations, model.CleaningOperation{
			Region:        row.Region,
			Column:        "delivery_address",
			OriginalValue: original,
			NewValue:      address.String(),
			RowIdentifier: rowID,
			Operation:     "address_normalization",
			Reason:        "region_lookup_tables",
			CleanedAt:     time.Now(),
		})
	}

	addr := address.Or("")
	city := strings.ReplaceAll(strings.TrimSpace(ExtractCity(addr)), " ", "")
	street := strings.TrimSpace(ExtractStreet(addr))
	houseNumber := strings.TrimSpace(ExtractHouseNumber(addr))

	territory := Territory(city, cfg.Territories)
	streetValue := model.Missing()
	if address.IsText() {
		streetValue = model.Text(street)
	}
	overridden := OverrideTerritory(territory, cfg, row.Region, city, streetValue)
	if overridden != territory {
		operations = append(operations, model.CleaningOperation{
			Region:        row.Region,
			Column:        "territory",
			OriginalValue: territory,
			NewValue:      overridden,
			RowIdentifier: rowID,
			Operation:     "territory_override",
			Reason:        "street_match",
			CleanedAt:     time.Now(),
		})
		territory = overridden
	}

	return model.CleanedRecord{
		Region:          row.Region,
		City:            city,
		Client:          strings.TrimSpace(row.Client),
		DeliveryAddress: addr,
		ProductName:     row.ProductName.Or(""),
		Quantity:        row.Quantity,
		Territory:       territory,
		ProductLine:     ProductLine(row.ProductName, p.products),
		HouseNumber:     houseNumber,
		Street:          street,
		SourceFileDate:  fileDate,
		Distributor:     strings.TrimSpace(row.Distributor),
	}, operations, true
}
