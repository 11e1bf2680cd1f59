// pkg/analytics/reps.go
package analytics

import (
	"sort"

	"github.com/GrayMists/sales-ingress/pkg/model"
)

// MonthOrder lists Ukrainian month names in calendar order, the order the
// rep views display them in.
var MonthOrder = []string{
	"Січень", "Лютий", "Березень", "Квітень", "Травень", "Червень",
	"Липень", "Серпень", "Вересень", "Жовтень", "Листопад", "Грудень",
}

var monthIndex = func() map[string]int {
	idx := make(map[string]int, len(MonthOrder))
	for i, m := range MonthOrder {
		idx[m] = i
	}
	return idx
}()

// MonthlyQuantity is one bar of the per-manager sales chart.
type MonthlyQuantity struct {
	Month    string  `json:"month"`
	Year     int     `json:"year"`
	Quantity float64 `json:"quantity"`
}

// RepRow is a representative sales row with internal identifiers stripped.
type RepRow struct {
	Region      string  `json:"region"`
	ManagerName string  `json:"manager_name"`
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	Quantity    float64 `json:"quantity"`
}

// ManagerSales groups one manager's rows and their month/year totals.
type ManagerSales struct {
	ManagerName string            `json:"manager_name"`
	Rows        []RepRow          `json:"rows"`
	Monthly     []MonthlyQuantity `json:"monthly"`
}

// RegionReps groups managers under their region.
type RegionReps struct {
	Region   string         `json:"region"`
	Managers []ManagerSales `json:"managers"`
}

// GroupReps organizes raw rep rows by region and manager, summing quantities
// per month and year. Months sort in calendar order, not alphabetically.
func GroupReps(records []model.RepRecord) []RegionReps {
	type managerKey struct {
		region  string
		manager string
	}

	rowsByManager := make(map[managerKey][]RepRow)
	regionOrder := make([]string, 0)
	seenRegion := make(map[string]bool)
	managerOrder := make(map[string][]string)
	seenManager := make(map[managerKey]bool)

	for _, rec := range records {
		key := managerKey{region: rec.Region, manager: rec.ManagerName}
		rowsByManager[key] = append(rowsByManager[key], RepRow{
			Region:      rec.Region,
			ManagerName: rec.ManagerName,
			Month:       rec.Month,
			Year:        rec.Year,
			Quantity:    rec.Quantity,
		})

		if !seenRegion[rec.Region] {
			seenRegion[rec.Region] = true
			regionOrder = append(regionOrder, rec.Region)
		}
		if !seenManager[key] {
			seenManager[key] = true
			managerOrder[rec.Region] = append(managerOrder[rec.Region], rec.ManagerName)
		}
	}

	result := make([]RegionReps, 0, len(regionOrder))
	for _, region := range regionOrder {
		regionGroup := RegionReps{Region: region}
		for _, manager := range managerOrder[region] {
			key := managerKey{region: region, manager: manager}
			regionGroup.Managers = append(regionGroup.Managers, ManagerSales{
				ManagerName: manager,
				Rows:        rowsByManager[key],
				Monthly:     sumMonthly(rowsByManager[key]),
			})
		}
		result = append(result, regionGroup)
	}

	return result
}

func sumMonthly(rows []RepRow) []MonthlyQuantity {
	type periodKey struct {
		month string
		year  int
	}

	totals := make(map[periodKey]float64)
	for _, row := range rows {
		totals[periodKey{month: row.Month, year: row.Year}] += row.Quantity
	}

	monthly := make([]MonthlyQuantity, 0, len(totals))
	for key, quantity := range totals {
		monthly = append(monthly, MonthlyQuantity{
			Month:    key.month,
			Year:     key.year,
			Quantity: quantity,
		})
	}

	sort.Slice(monthly, func(i, j int) bool {
		mi, mj := monthIndex[monthly[i].Month], monthIndex[monthly[j].Month]
		if mi != mj {
			return mi < mj
		}
		return monthly[i].Year < monthly[j].Year
	})

	return monthly
}
