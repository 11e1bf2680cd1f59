// pkg/region/ternopil.go
package region

// Ternopil returns the lookup tables for the "24. Тернопіль" region.
//
// The deletion list and replacement tables are hand-maintained: they grow as
// new misspellings show up in distributor exports.
func Ternopil() *Config {
	return &Config{
		Code:          "24. Тернопіль",
		DisplayName:   "Тернопільська",
		CanonicalCity: "м.Тернопіль",

		Deletions: []string{
			"Тернопільська обл., ",
			"Тернопільська обл.,",
			"Тернопільська обл.",
			"Тернопільська область, ",
			"Тернопільська область",
			"Тернопільський р-н, ",
			"Тернопільський р-н,",
			"Тернопільський р-н",
			"Тернопільський район",
			"Чортківський р-н",
			"Кременецький р-н",
			"Україна, ",
		},

		CityReplacements: []Replacement{
			{"м. Тернопіль", "м.Тернопіль"},
			{"м.Тернопль", "м.Тернопіль"},
			{"м. Чортків", "м.Чортків"},
			{"м. Кременець", "м.Кременець"},
			{"м. Бережани", "м.Бережани"},
			{"м. Збараж", "м.Збараж"},
			{"м. Теребовля", "м.Теребовля"},
			{"смт. ", "смт."},
			{"с. ", "с."},
		},

		StreetReplacements: []Replacement{
			{"вул. ", "вул."},
			{"вулиця ", "вул."},
			{"просп. ", "просп."},
			{"проспект ", "просп."},
			{"вул.Зарична", "вул.Зарічна"},
			{"вул.С.Бандери", "вул.Степана Бандери"},
			{"вул.Микулинецка", "вул.Микулинецька"},
			{"вул.Руска", "вул.Руська"},
		},

		Territories: map[string]string{
			"м.Тернопіль":  "Тернопіль 1",
			"м.Чортків":    "Чортків",
			"м.Кременець":  "Кременець",
			"м.Бережани":   "Бережани",
			"м.Збараж":     "Тернопіль 2",
			"м.Теребовля":  "Теребовля",
			"смт.Козова":   "Бережани",
			"смт.Ланівці":  "Кременець",
			"смт.Залізці":  "Тернопіль 2",
		},

		StreetOverrides: []StreetOverride{
			{"Зарічна", "Тернопіль 2"},
			{"Микулинецька", "Тернопіль 2"},
			{"Збаразька", "Тернопіль 2"},
			{"Галицька", "Тернопіль 2"},
			{"Степана Бандери", "Тернопіль 1"},
			{"Руська", "Тернопіль 1"},
			{"Протасевича", "Тернопіль 1"},
		},
	}
}
