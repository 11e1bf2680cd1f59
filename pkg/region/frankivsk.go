// pkg/region/frankivsk.go
package region

// Frankivsk returns the lookup tables for the "10. Івано-Франк" region.
func Frankivsk() *Config {
	return &Config{
		Code:          "10. Івано-Франк",
		DisplayName:   "Івано-Франківська",
		CanonicalCity: "м.Івано-Франківськ",

		Deletions: []string{
			"Івано-Франківська обл., ",
			"Івано-Франківська обл.,",
			"Івано-Франківська обл.",
			"Івано-Франківська область",
			"Івано-Франківський р-н, ",
			"Івано-Франківський р-н",
			"Коломийський р-н",
			"Калуський р-н",
			"Україна, ",
		},

		CityReplacements: []Replacement{
			{"м. Івано-Франківськ", "м.Івано-Франківськ"},
			{"м.Івано-Франковськ", "м.Івано-Франківськ"},
			{"м. Коломия", "м.Коломия"},
			{"м. Калуш", "м.Калуш"},
			{"м. Долина", "м.Долина"},
			{"м. Надвірна", "м.Надвірна"},
			{"смт. ", "смт."},
			{"с. ", "с."},
		},

		StreetReplacements: []Replacement{
			{"вул. ", "вул."},
			{"вулиця ", "вул."},
			{"вул.Незалежності ", "вул.Незалежності"},
			{"вул.Галицка", "вул.Галицька"},
			{"вул.Шевченко", "вул.Шевченка"},
		},

		Territories: map[string]string{
			"м.Івано-Франківськ": "Франківськ 1",
			"м.Коломия":          "Коломия",
			"м.Калуш":            "Калуш",
			"м.Долина":           "Калуш",
			"м.Надвірна":         "Надвірна",
			"м.Яремче":           "Надвірна",
			"смт.Богородчани":    "Франківськ 2",
		},

		StreetOverrides: []StreetOverride{
			{"Галицька", "Франківськ 2"},
			{"Вовчинецька", "Франківськ 2"},
			{"Незалежності", "Франківськ 1"},
			{"Шевченка", "Франківськ 1"},
		},
	}
}
