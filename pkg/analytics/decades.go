// pkg/analytics/decades.go
package analytics

import (
	"sort"

	"github.com/GrayMists/sales-ingress/pkg/model"
)

// DecadeTable is a pivot of net decade sales: one row per "month - decade"
// period, one column per product. Only positive quantities appear.
type DecadeTable struct {
	Periods  []string                      `json:"periods"`
	Products []string                      `json:"products"`
	Values   map[string]map[string]float64 `json:"values"` // period -> product -> quantity
}

// Empty reports whether the table has no rows.
func (t *DecadeTable) Empty() bool {
	return len(t.Periods) == 0
}

type monthProduct struct {
	month   string
	product string
}

// CalculateDecades builds the formatted decade pivot. Months where only the
// day-30 snapshot exists get a single "Місяць Всього" row instead of the
// three decade rows, since per-decade values cannot be derived for them.
func CalculateDecades(records []model.CleanedRecord) *DecadeTable {
	byDay := make(map[monthProduct]map[int]float64)
	monthDays := make(map[string]map[int]bool)

	for _, rec := range records {
		month, day, ok := splitFileDate(rec.SourceFileDate)
		if !ok {
			continue
		}

		key := monthProduct{month: month, product: rec.ProductName}
		if byDay[key] == nil {
			byDay[key] = make(map[int]float64)
		}
		byDay[key][day] += rec.Quantity

		if monthDays[month] == nil {
			monthDays[month] = make(map[int]bool)
		}
		monthDays[month][day] = true
	}

	table := &DecadeTable{Values: make(map[string]map[string]float64)}
	productSet := make(map[string]bool)

	add := func(period, product string, quantity float64) {
		if quantity <= 0 {
			return
		}
		if table.Values[period] == nil {
			table.Values[period] = make(map[string]float64)
		}
		table.Values[period][product] += quantity
		productSet[product] = true
	}

	for key, days := range byDay {
		present := monthDays[key.month]
		d10 := days[10]
		d20 := days[20]
		d30 := days[30]

		if present[30] && !present[20] && !present[10] {
			add(key.month+" - Місяць Всього", key.product, d30)
			continue
		}

		add(key.month+" - Декада 1", key.product, d10)
		add(key.month+" - Декада 2", key.product, d20-d10)
		add(key.month+" - Декада 3", key.product, d30-d20)
	}

	for period := range table.Values {
		table.Periods = append(table.Periods, period)
	}
	sort.Strings(table.Periods)

	for product := range productSet {
		table.Products = append(table.Products, product)
	}
	sort.Strings(table.Products)

	return table
}

// FilterByProductLine returns only the records belonging to one product line.
func FilterByProductLine(records []model.CleanedRecord, line string) []model.CleanedRecord {
	if line == "" {
		return records
	}

	var filtered []model.CleanedRecord
	for _, rec := range records {
		if rec.ProductLine == line {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
