// pkg/model/value.go
package model

// Value is a text cell that may be absent. Spreadsheet exports routinely carry
// empty or non-text cells through the cleaning pipeline, and those must pass
// through unchanged instead of raising, so the missing case is an explicit
// branch rather than an implicit type check.
type Value struct {
	text    string
	present bool
}

// Text wraps a string as a present Value.
func Text(s string) Value {
	return Value{text: s, present: true}
}

// Missing returns the absent Value.
func Missing() Value {
	return Value{}
}

// IsText reports whether the value carries text.
func (v Value) IsText() bool {
	return v.present
}

// String returns the text, or "" for a missing value.
func (v Value) String() string {
	return v.text
}

// Or returns the text for a present value and fallback otherwise.
func (v Value) Or(fallback string) string {
	if v.present {
		return v.text
	}
	return fallback
}
