// pkg/cleaner/extract.go
package cleaner

import "strings"

// The cleaned delivery address is treated as comma-separated positional
// fields: city, street, house number. Segments beyond the third are ignored.

// ExtractCity returns the trimmed text before the first comma.
func ExtractCity(address string) string {
	return strings.TrimSpace(strings.Split(address, ",")[0])
}

// ExtractStreet returns the trimmed second segment, or "" if absent.
func ExtractStreet(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) > 1 {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// ExtractHouseNumber returns the trimmed third segment, or "" if absent.
func ExtractHouseNumber(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) > 2 {
		return strings.TrimSpace(parts[2])
	}
	return ""
}
