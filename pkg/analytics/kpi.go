// pkg/analytics/kpi.go
package analytics

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// MonthKPI is one month of the historical KPI series: packs sold, revenue
// and the derived average check. Revenue arrives from accounting with kopiyka
// precision, so it stays decimal end to end.
type MonthKPI struct {
	Year     int             `json:"year"`
	Month    string          `json:"month"`
	Units    int64           `json:"units"`
	Revenue  decimal.Decimal `json:"revenue"`
	AvgCheck decimal.Decimal `json:"avg_check"`
}

// YearKPI totals one year and carries the year-over-year deltas. Delta
// pointers are nil for the first year of a series.
type YearKPI struct {
	Year            int             `json:"year"`
	TotalUnits      int64           `json:"total_units"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	UnitsDeltaPct   *float64        `json:"units_delta_pct"`
	RevenueDeltaPct *float64        `json:"revenue_delta_pct"`
}

// RegionKPI is the full historical series for one dashboard region.
type RegionKPI struct {
	Region string     `json:"region"`
	Months []MonthKPI `json:"months"`
	Years  []YearKPI  `json:"years"`
}

// Historical figures carried over from the accounting reports. Values
// alternate units and revenue, in calendar month order; short years are
// in-progress.
var kpiSource = []struct {
	region string
	years  []int
	series map[int][]string
}{
	{
		region: "Закарпаття",
		years:  []int{2022, 2023, 2024, 2025},
		series: map[int][]string{
			2022: {
				"2118", "616304", "2303", "604831", "1479", "453703", "2100", "560958",
				"1588", "436293", "1439", "400815", "2326", "632512", "1173", "344932",
				"2384", "746046", "1319", "445338", "2156", "751650", "2528", "922485",
			},
			2023: {
				"2556", "919894", "1877", "734646", "2438", "949108", "2099", "805817",
				"2062", "837388", "1887", "824256", "1644", "672264", "2049", "894975",
				"2558", "1145809", "1624", "689082", "1706", "753126", "1336", "566975",
			},
			2024: {
				"2364", "1051896", "1852", "817549", "2239", "1026967", "2281", "1051436",
				"1795", "798985", "2225", "1055998", "1974", "927515", "1922", "924807",
				"1893", "902224", "2566", "1287506", "2325", "1218878", "2093", "1089686",
			},
			2025: {
				"1937", "984370", "2195", "1171898", "2353", "1301441", "1763", "990816",
				"1956", "1134646",
			},
		},
	},
	{
		region: "Франківськ",
		years:  []int{2023, 2024, 2025},
		series: map[int][]string{
			2023: {
				"3624", "1300032.63", "3449", "1307180.224", "4256", "1586944.108", "3477", "1277983.45",
				"3488", "1367056.557", "3281", "1271070.101", "3308", "1307494.899", "3210", "1296404.84",
				"3288", "1273796.381", "3426", "1337554.69", "3869", "1582592.567", "3363", "1363627.171",
			},
			2024: {
				"3966", "1685581.66", "3968", "1703964.872", "3875", "1722723.289", "3491", "1535684.104",
				"3293", "1518496.493", "2889", "1344563.181", "3270", "1548738.938", "3436", "1598489.619",
				"3764", "1780718.066", "4270", "2132420.31", "3821", "1992584.473", "4317", "2265478.894",
			},
			2025: {
				"4408", "2384938.5", "4126", "2224246.714", "3923", "2114451.55", "3601", "2015096.51",
				"3585", "2051865.17",
			},
		},
	},
	{
		region: "Тернопіль",
		years:  []int{2023, 2024, 2025},
		series: map[int][]string{
			2023: {
				"3539", "1316497.55", "3614", "1371111.896", "4436", "1707149.59", "3246", "1261372.455",
				"3435", "1354105.06", "3607", "1392839.697", "2925", "1231417.106", "3493", "1453472.409",
				"3230", "1379399.683", "3153", "1335257.752", "3441", "1534969.727", "3130", "1371110.051",
			},
			2024: {
				"3652", "1708644.422", "3758", "1677959.069", "3934", "1806192.562", "3186", "1496881.81",
				"2955", "1359941.071", "2831", "1287966.514", "2898", "1434855.861", "3417", "1666852.782",
				"3801", "1983997.049", "3518", "1831820.611", "3313", "1742052.81", "3497", "1860517.708",
			},
			2025: {
				"3803", "2182147.938", "3641", "1932081.49", "3684", "2032575.69", "3179", "1867185.124",
				"3323", "1894080.453",
			},
		},
	},
}

var kpiTables = buildKPITables()

func buildKPITables() map[string]*RegionKPI {
	tables := make(map[string]*RegionKPI, len(kpiSource))

	for _, src := range kpiSource {
		regionKPI := &RegionKPI{Region: src.region}

		for _, year := range src.years {
			values := src.series[year]
			var totalUnits int64
			totalRevenue := decimal.Zero

			for i := 0; i*2+1 < len(values); i++ {
				units, err := strconv.ParseInt(values[i*2], 10, 64)
				if err != nil {
					continue
				}
				revenue := decimal.RequireFromString(values[i*2+1])

				month := MonthKPI{
					Year:    year,
					Month:   MonthOrder[i],
					Units:   units,
					Revenue: revenue,
				}
				if units > 0 {
					month.AvgCheck = revenue.Div(decimal.NewFromInt(units)).Round(2)
				}
				regionKPI.Months = append(regionKPI.Months, month)

				totalUnits += units
				totalRevenue = totalRevenue.Add(revenue)
			}

			yearKPI := YearKPI{
				Year:         year,
				TotalUnits:   totalUnits,
				TotalRevenue: totalRevenue,
			}
			if n := len(regionKPI.Years); n > 0 {
				prev := regionKPI.Years[n-1]
				if prev.Year == year-1 {
					yearKPI.UnitsDeltaPct = deltaPct(float64(totalUnits), float64(prev.TotalUnits))
					yearKPI.RevenueDeltaPct = deltaPct(totalRevenue.InexactFloat64(), prev.TotalRevenue.InexactFloat64())
				}
			}
			regionKPI.Years = append(regionKPI.Years, yearKPI)
		}

		tables[src.region] = regionKPI
	}

	return tables
}

func deltaPct(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	pct := (current - previous) / previous * 100
	return &pct
}

// KPIRegions lists the regions with a historical KPI series, in dashboard
// order.
func KPIRegions() []string {
	regions := make([]string, 0, len(kpiSource))
	for _, src := range kpiSource {
		regions = append(regions, src.region)
	}
	return regions
}

// KPIFor returns the historical KPI series for one region.
func KPIFor(region string) (*RegionKPI, bool) {
	kpi, ok := kpiTables[region]
	return kpi, ok
}
