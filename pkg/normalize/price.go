package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// priceRe captures the first amount in strings like "12,99 zł", "od 9,50"
// or "1 234,00 PLN".
var priceRe = regexp.MustCompile(`(\d{1,3}(?:[ \x{00a0}]\d{3})+|\d+)(?:[.,](\d{1,2}))?`)

// Price parses an amount from free text. It reports false when none is
// present; a missing price is never zero.
func Price(s string) (decimal.Decimal, bool) {
	m := priceRe.FindStringSubmatch(s)
	if m == nil {
		return decimal.Decimal{}, false
	}
	num := strings.NewReplacer(" ", "", "\u00a0", "").Replace(m[1])
	if m[2] != "" {
		num += "." + m[2]
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Decimal{}, false
	}
	// Re-read the shortest form so that 9.50 and 9.5 are the same value.
	d, err = decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func (n *normalizer) price(field, s string) decimal.NullDecimal {
	if strings.TrimSpace(s) == "" {
		return decimal.NullDecimal{}
	}
	d, ok := Price(s)
	if !ok {
		n.ambiguous(field, s)
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// availabilityLabels maps folded, lowercase stock labels to levels.
var availabilityLabels = map[string]domain.Availability{
	"none":             domain.AvailabilityNone,
	"brak":             domain.AvailabilityNone,
	"niedostepny":      domain.AvailabilityNone,
	"niedostepne":      domain.AvailabilityNone,
	"brak w magazynie": domain.AvailabilityNone,
	"low":              domain.AvailabilityLow,
	"malo":             domain.AvailabilityLow,
	"ostatnie sztuki":  domain.AvailabilityLow,
	"ograniczona":      domain.AvailabilityLow,
	"high":             domain.AvailabilityHigh,
	"duzo":             domain.AvailabilityHigh,
	"dostepny":         domain.AvailabilityHigh,
	"dostepne":         domain.AvailabilityHigh,
}

// Availability maps a stock label to a level.
func Availability(s string) (domain.Availability, bool) {
	label := collapse(strings.ToLower(FoldDiacritics(s)))
	label = strings.TrimRight(label, ".!")
	a, ok := availabilityLabels[label]
	if !ok {
		return domain.AvailabilityUnknown, false
	}
	return a, true
}

func (n *normalizer) availability(s string) domain.Availability {
	if strings.TrimSpace(s) == "" {
		return domain.AvailabilityUnknown
	}
	a, ok := Availability(s)
	if !ok {
		n.ambiguous(FieldAvailability, s)
	}
	return a
}
