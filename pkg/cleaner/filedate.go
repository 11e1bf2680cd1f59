// pkg/cleaner/filedate.go
package cleaner

import "time"

// SourceFileDate derives the reporting date embedded in an upload filename.
// Filenames end with a date token and extension, e.g. "sales_2024_07_01.xlsx":
// the last 15 characters minus the 5-character extension leave the token,
// parsed as YYYY_MM_DD. Any shape or parse failure yields "" rather than an
// error.
func SourceFileDate(filename string) string {
	if filename == "" {
		return ""
	}
	runes := []rune(filename)
	if len(runes) > 15 {
		runes = runes[len(runes)-15:]
	}
	if len(runes) <= 5 {
		return ""
	}
	token := string(runes[:len(runes)-5])
	t, err := time.Parse("2006_01_02", token)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}
