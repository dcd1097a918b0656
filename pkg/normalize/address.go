package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	postalCodeRe = regexp.MustCompile(`\b(\d{2})\s?-\s?(\d{3})\b`)

	// flatRe matches a flat number introduced by an explicit marker after a
	// building number: "126/134 m. 5", "12 lok. 3a", "7, apt 2".
	flatRe = regexp.MustCompile(`(\d+[a-z]?(?:/\d+[a-z]?)?)\s*,?\s*\b(?:m|lok|apt)\b\.?\s*\d+[a-z]?\b`)

	// Letters that NFD does not decompose.
	strokeReplacer = strings.NewReplacer("ł", "l", "Ł", "L", "đ", "d", "Đ", "D", "ø", "o", "Ø", "O")
)

// streetPrefixes are dropped wherever they appear as a whole token.
var streetPrefixes = map[string]bool{
	"ul": true,
	"al": true,
	"os": true,
	"pl": true,
}

// FoldDiacritics strips combining marks and maps stroked letters to their
// base form.
func FoldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strokeReplacer.Replace(s))
	if err != nil {
		return s
	}
	return out
}

// Address returns the comparison key and the postal code of a free-text
// address. Either may be empty.
func Address(s string) (key, postal string) {
	s = strings.ToLower(FoldDiacritics(s))

	if m := postalCodeRe.FindStringSubmatchIndex(s); m != nil {
		postal = s[m[2]:m[3]] + "-" + s[m[4]:m[5]]
		s = s[:m[0]] + " " + s[m[1]:]
	}

	s = flatRe.ReplaceAllString(s, "$1")

	s = strings.Map(func(r rune) rune {
		switch {
		case r == '/':
			return r
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return r
		default:
			return ' '
		}
	}, s)

	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if streetPrefixes[f] {
			continue
		}
		kept = append(kept, strings.Trim(f, "/"))
	}

	return strings.Join(strings.Fields(strings.Join(kept, " ")), " "), postal
}

func (n *normalizer) address(s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	n.rec.AddressKey, n.rec.PostalCode = Address(s)
	if n.rec.AddressKey == "" && n.rec.PostalCode == "" {
		n.ambiguous(FieldAddress, s)
	}
}
