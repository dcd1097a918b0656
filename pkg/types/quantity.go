package domain

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// unitAliases folds the spellings seen on pharmacy pages to canonical units.
// Keys are lowercase with any trailing dot removed.
var unitAliases = map[string]Unit{
	"mg":  UnitMg,
	"mcg": UnitMcg,
	"μg":  UnitMcg, // greek mu
	"µg":  UnitMcg, // micro sign
	"ug":  UnitMcg,
	"g":   UnitGram,
	"%":   UnitPercent,
	"ml":  UnitMl,
	"l":   UnitLiter,

	"tabl":     UnitTablet,
	"tab":      UnitTablet,
	"tabletek": UnitTablet,
	"tabletki": UnitTablet,
	"szt":      UnitPiece,
	"sztuk":    UnitPiece,
	"kaps":     UnitCapsule,
	"kapsułek": UnitCapsule,
	"kapsulek": UnitCapsule,
	"kapsułki": UnitCapsule,
	"amp":      UnitAmpoule,
	"ampułek":  UnitAmpoule,
	"ampulek":  UnitAmpoule,
	"ampułki":  UnitAmpoule,
}

// quantityRe matches "<number>[,.]<number>? <unit>" with optional space.
var quantityRe = regexp.MustCompile(`^\s*(\d+(?:[.,]\d+)?)\s*([^\s\d|]+)\s*$`)

// FoldUnit maps a unit spelling to its canonical form. It reports false for
// spellings outside every known set.
func FoldUnit(s string) (Unit, bool) {
	key := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ".")
	u, ok := unitAliases[key]
	return u, ok
}

// ParseQuantity parses a single "<number> <unit>" token and accepts it only
// when the unit belongs to allowed. Unparseable text yields the unknown
// quantity and false.
func ParseQuantity(s string, allowed []Unit) (Quantity, bool) {
	m := quantityRe.FindStringSubmatch(s)
	if m == nil {
		return Quantity{}, false
	}

	v, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil {
		return Quantity{}, false
	}

	u, ok := FoldUnit(m[2])
	if !ok || !slices.Contains(allowed, u) {
		return Quantity{}, false
	}

	return NewQuantity(v, u), true
}
