// pkg/analytics/streets.go
package analytics

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/GrayMists/sales-ingress/pkg/model"
)

var (
	streetUpper = cases.Upper(language.Ukrainian)
	streetLower = cases.Lower(language.Ukrainian)
)

// NormalizeStreet trims and title-cases a street name so filter dropdowns
// collapse spelling variants like "вул.руська" and "Вул.Руська". Every
// letter run restarts capitalization, so the prefix after "вул." counts as
// a new word.
func NormalizeStreet(street string) string {
	var b strings.Builder
	prevLetter := false

	for _, r := range strings.TrimSpace(street) {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteString(streetLower.String(string(r)))
			} else {
				b.WriteString(streetUpper.String(string(r)))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}

	return b.String()
}

// SalesRow is a cleaned record extended with the normalized street used by
// the browsing views.
type SalesRow struct {
	model.CleanedRecord
	StreetNormalized string `json:"street_normalized"`
}

// WithNormalizedStreets attaches normalized street names to records.
func WithNormalizedStreets(records []model.CleanedRecord) []SalesRow {
	rows := make([]SalesRow, len(records))
	for i, rec := range records {
		rows[i] = SalesRow{
			CleanedRecord:    rec,
			StreetNormalized: NormalizeStreet(rec.Street),
		}
	}
	return rows
}
