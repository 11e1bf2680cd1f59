// pkg/analytics/dynamics.go
package analytics

import (
	"sort"
	"time"

	"github.com/GrayMists/sales-ingress/pkg/model"
)

// DynamicsRow is the per-month decade breakdown for one territory, product
// line and product. Decade columns hold net sales for each ten-day period,
// derived from the cumulative day-10/20/30 snapshots the distributors export.
type DynamicsRow struct {
	Month       string  `json:"month"` // "2006-01"
	Territory   string  `json:"territory"`
	ProductLine string  `json:"product_line"`
	ProductName string  `json:"product_name"`
	Decade1     float64 `json:"decade1"`
	Decade2     float64 `json:"decade2"`
	Decade3     float64 `json:"decade3"`
	MonthTotal  float64 `json:"month_total"`
}

type dynamicsKey struct {
	month       string
	territory   string
	productLine string
	productName string
}

// AnalyzeSalesDynamics groups records by month, territory, product line and
// product, and converts the cumulative decade snapshots into per-decade net
// quantities.
func AnalyzeSalesDynamics(records []model.CleanedRecord) []DynamicsRow {
	byDay := make(map[dynamicsKey]map[int]float64)

	for _, rec := range records {
		month, day, ok := splitFileDate(rec.SourceFileDate)
		if !ok {
			continue
		}

		key := dynamicsKey{
			month:       month,
			territory:   rec.Territory,
			productLine: rec.ProductLine,
			productName: rec.ProductName,
		}
		if byDay[key] == nil {
			byDay[key] = make(map[int]float64)
		}
		byDay[key][day] += rec.Quantity
	}

	rows := make([]DynamicsRow, 0, len(byDay))
	for key, days := range byDay {
		d10 := days[10]
		d20 := days[20]
		d30 := days[30]

		row := DynamicsRow{
			Month:       key.month,
			Territory:   key.territory,
			ProductLine: key.productLine,
			ProductName: key.productName,
			Decade1:     d10,
			Decade2:     d20 - d10,
			Decade3:     d30 - d20,
		}
		row.MonthTotal = row.Decade1 + row.Decade2 + row.Decade3
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		if rows[i].Territory != rows[j].Territory {
			return rows[i].Territory < rows[j].Territory
		}
		if rows[i].ProductLine != rows[j].ProductLine {
			return rows[i].ProductLine < rows[j].ProductLine
		}
		return rows[i].ProductName < rows[j].ProductName
	})

	return rows
}

// splitFileDate breaks a "2006-01-02" source file date into its month prefix
// and day-of-month period code.
func splitFileDate(fileDate string) (month string, day int, ok bool) {
	t, err := time.Parse("2006-01-02", fileDate)
	if err != nil {
		return "", 0, false
	}
	return t.Format("2006-01"), t.Day(), true
}
