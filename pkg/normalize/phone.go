package normalize

import (
	"regexp"
	"strings"
)

// phoneRunRe matches a digit run that may be broken up by spaces, dashes,
// dots or parentheses, with an optional leading plus.
var phoneRunRe = regexp.MustCompile(`\+?\(?\d[\d\s\-.()]*\d`)

const countryPrefix = "48"

// Phone extracts the first 9-11 digit national number from free text such as
// "tel: 22 123 45 67" or "callTo('221234567')" and returns it as +48XXXXXXXXX.
// A run that is not a number on its own is retried without its trailing
// space-separated groups, so "221234567 8:00" still yields the phone. It
// reports false when no usable number is present.
func Phone(s string) (string, bool) {
	for _, run := range phoneRunRe.FindAllString(s, -1) {
		groups := strings.Fields(run)
		for n := len(groups); n > 0; n-- {
			if p, ok := national(digitsOf(strings.Join(groups[:n], ""))); ok {
				return p, true
			}
		}
	}
	return "", false
}

// national formats a digit string as +48XXXXXXXXX when it is a Polish
// number with or without its trunk or country prefix.
func national(digits string) (string, bool) {
	switch {
	case len(digits) == 9:
		return "+" + countryPrefix + digits, true
	case len(digits) == 10 && digits[0] == '0':
		return "+" + countryPrefix + digits[1:], true
	case len(digits) == 11 && strings.HasPrefix(digits, countryPrefix):
		return "+" + digits, true
	default:
		return "", false
	}
}

func digitsOf(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func (n *normalizer) phone(s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	p, ok := Phone(s)
	if !ok {
		n.ambiguous(FieldPhone, s)
		return
	}
	n.rec.PhoneE164 = p
}
