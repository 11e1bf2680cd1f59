// pkg/region/products.go
package region

// ProductRule assigns a product line when the product name contains Substring.
type ProductRule struct {
	Substring string
	Line      string
}

// ProductLines returns the ordered product-name to product-line table shared by
// all regions. The scan stops at the first matching rule.
func ProductLines() []ProductRule {
	return []ProductRule{
		{"Кардіолін", "Кардіо"},
		{"Тонорма", "Кардіо"},
		{"Магнікор", "Кардіо"},
		{"Гастрофіт", "Гастро"},
		{"Ентеросгель", "Гастро"},
		{"Панкреазим", "Гастро"},
		{"Гепарсил", "Гастро"},
		{"Невралгін", "Невро"},
		{"Седафітон", "Невро"},
		{"Респіброн", "Респіра"},
		{"Бронхофіт", "Респіра"},
		{"Грипокод", "Респіра"},
	}
}
