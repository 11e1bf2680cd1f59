// pkg/region/uzhhorod.go
package region

// Uzhhorod returns the configuration for the "21. Ужгород" region. No lookup
// tables are maintained for it yet: rows still get field extraction and a
// source-file date, but no deletions, rewrites or territory assignment.
func Uzhhorod() *Config {
	return &Config{
		Code:          "21. Ужгород",
		DisplayName:   "Ужгородська",
		CanonicalCity: "м.Ужгород",
		Territories:   map[string]string{},
	}
}
