// pkg/importer/columns.go
package importer

import (
	"fmt"
	"strings"
)

// Upload column headers as they appear in distributor exports. The files come
// from the distributors' own reporting tools, so the headers are Ukrainian
// and fixed.
const (
	ColRegion      = "Регіон"
	ColCity        = "Місто"
	ColClient      = "Клієнт"
	ColAddress     = "Факт.адреса доставки"
	ColProduct     = "Найменування"
	ColQuantity    = "Кількість"
	ColDistributor = "Дистриб'ютор"
)

// RequiredColumns lists every header an upload must carry, in report order.
func RequiredColumns() []string {
	return []string{
		ColRegion,
		ColCity,
		ColClient,
		ColAddress,
		ColProduct,
		ColQuantity,
		ColDistributor,
	}
}

// MissingColumnsError reports which required headers an upload lacks.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("workbook is missing required columns: %s", strings.Join(e.Columns, ", "))
}
