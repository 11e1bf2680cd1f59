// pkg/region/region.go
package region

import (
	"sort"
	"strings"
)

// Replacement is one ordered key-to-value substitution. Replacements are kept in
// slices rather than maps so the application order is deterministic: later
// rules see the results of earlier ones.
type Replacement struct {
	From string
	To   string
}

// StreetOverride reassigns the territory when the street contains Substring.
type StreetOverride struct {
	Substring string
	Territory string
}

// Config bundles the lookup tables governing cleaning and classification for
// one region. Instances are built once at startup and never mutated.
type Config struct {
	Code          string // Region code as it appears in uploads, e.g. "24. Тернопіль"
	DisplayName   string // Oblast display name, e.g. "Тернопільська"
	CanonicalCity string // City the street overrides apply in, e.g. "м.Тернопіль"

	Deletions          []string          // Substrings removed from the delivery address
	CityReplacements   []Replacement     // City spelling corrections
	StreetReplacements []Replacement     // Street spelling corrections
	Territories        map[string]string // Extracted city to territory
	StreetOverrides    []StreetOverride  // Street substring to territory, first match wins
}

// Registry holds the region configurations keyed by region code. Unknown
// codes have no configuration: their rows pass through the pipeline
// unmodified by policy, not as an error.
type Registry struct {
	configs map[string]*Config
}

// NewRegistry builds a registry from the given configurations.
func NewRegistry(configs ...*Config) *Registry {
	r := &Registry{configs: make(map[string]*Config, len(configs))}
	for _, cfg := range configs {
		r.configs[cfg.Code] = cfg
	}
	return r
}

// DefaultRegistry returns the registry with all known regions.
func DefaultRegistry() *Registry {
	return NewRegistry(Ternopil(), Frankivsk(), Uzhhorod())
}

// ConfigFor looks up the configuration for a region code.
func (r *Registry) ConfigFor(code string) (*Config, bool) {
	cfg, ok := r.configs[code]
	return cfg, ok
}

// Codes returns the known region codes in sorted order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.configs))
	for code := range r.configs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// DistrictName maps a raw region code to its oblast display name, the value
// stored in the region column. Codes without a known mapping are returned
// trimmed but otherwise unchanged.
func (r *Registry) DistrictName(region string) string {
	region = strings.TrimSpace(region)
	if cfg, ok := r.configs[region]; ok {
		return cfg.DisplayName
	}
	return region
}
