// pkg/cleaner/classify.go
package cleaner

import (
	"strings"

	"github.com/GrayMists/sales-ingress/pkg/model"
	"github.com/GrayMists/sales-ingress/pkg/region"
)

// Territory looks up the territory for an extracted city, defaulting to "".
func Territory(city string, territories map[string]string) string {
	return strings.TrimSpace(territories[city])
}

// OverrideTerritory reassigns the territory by street when the record sits in
// the region's canonical city. The override table is scanned in order and the
// first substring match wins; a missing street means no override.
func OverrideTerritory(base string, cfg *region.Config, recordRegion, city string, street model.Value) string {
	if recordRegion != cfg.Code || city != cfg.CanonicalCity {
		return base
	}
	if !street.IsText() {
		return base
	}
	for _, o := range cfg.StreetOverrides {
		if strings.Contains(street.String(), o.Substring) {
			return o.Territory
		}
	}
	return base
}

// ProductLine scans the ordered product table and returns the line of the
// first rule whose substring occurs in the product name. No match, or a
// missing name, yields "".
func ProductLine(name model.Value, rules []region.ProductRule) string {
	if !name.IsText() {
		return ""
	}
	for _, rule := range rules {
		if strings.Contains(name.String(), rule.Substring) {
			return rule.Line
		}
	}
	return ""
}
