// pkg/cleaner/normalize.go
package cleaner

import (
	"strings"

	"github.com/GrayMists/sales-ingress/pkg/model"
	"github.com/GrayMists/sales-ingress/pkg/region"
)

// RemoveUnwanted deletes every listed substring from the value, in list
// order, then trims surrounding whitespace. A single left fold: a substring
// that only appears after an earlier removal is not removed. Missing values
// pass through unchanged.
func RemoveUnwanted(v model.Value, deletions []string) model.Value {
	if !v.IsText() {
		return v
	}
	text := v.String()
	for _, del := range deletions {
		text = strings.ReplaceAll(text, del, "")
	}
	return model.Text(strings.TrimSpace(text))
}

// ApplyReplacements applies the ordered key-to-value substitutions one by one,
// so later rules see the results of earlier ones. The result is trimmed.
// Missing values pass through unchanged.
func ApplyReplacements(v model.Value, rules []region.Replacement) model.Value {
	if !v.IsText() {
		return v
	}
	text := v.String()
	for _, rule := range rules {
		text = strings.ReplaceAll(text, rule.From, rule.To)
	}
	return model.Text(strings.TrimSpace(text))
}

// CollapseSeparators folds the doubled commas left behind by deletions into
// single ones.
func CollapseSeparators(v model.Value) model.Value {
	if !v.IsText() {
		return v
	}
	return model.Text(strings.ReplaceAll(v.String(), ",,", ","))
}
