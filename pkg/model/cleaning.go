// pkg/model/cleaning.go
package model

import (
	"time"
)

// CleaningOperation records a single mutation the pipeline applied to a field,
// so every derived value can be traced back to the raw upload.
type CleaningOperation struct {
	Region        string    `db:"region"`         // Region code of the record
	Column        string    `db:"column_name"`    // Field that was cleaned
	OriginalValue string    `db:"original_value"` // Value before cleaning
	NewValue      string    `db:"new_value"`      // Value after cleaning
	RowIdentifier string    `db:"row_identifier"` // Identifies the row within the upload
	Operation     string    `db:"operation"`      // Type of cleaning performed (e.g. "address_normalization")
	Reason        string    `db:"reason"`         // Why the cleaning was applied (e.g. "deletion_list")
	CleanedAt     time.Time `db:"cleaned_at"`     // When the cleaning occurred
}
