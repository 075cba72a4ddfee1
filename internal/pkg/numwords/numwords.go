// Package numwords spells amounts in Tamil words using Indian grouping
// (ஆயிரம், இலட்சம், கோடி).
package numwords

import (
	"strconv"
	"strings"
)

const (
	thousand = 1000
	lakh     = 100000
	crore    = 10000000
)

var (
	units = [...]string{"", "ஒன்று", "இரண்டு", "மூன்று", "நான்கு", "ஐந்து", "ஆறு", "ஏழு", "எட்டு", "ஒன்பது"}
	teens = [...]string{"பத்து", "பதினொன்று", "பன்னிரண்டு", "பதின்மூன்று", "பதினான்கு", "பதினைந்து", "பதினாறு", "பதினேழு", "பதினெட்டு", "பத்தொன்பது"}

	tens       = [...]string{"", "", "இருபது", "முப்பது", "நாற்பது", "ஐம்பது", "அறுபது", "எழுபது", "எண்பது", "தொண்ணூறு"}
	tensJoined = [...]string{"", "", "இருபத்து", "முப்பத்து", "நாற்பத்து", "ஐம்பத்து", "அறுபத்து", "எழுபத்து", "எண்பத்து", "தொண்ணூற்று"}

	hundreds       = [...]string{"", "நூறு", "இருநூறு", "முந்நூறு", "நானூறு", "ஐநூறு", "அறுநூறு", "எழுநூறு", "எண்ணூறு", "தொள்ளாயிரம்"}
	hundredsJoined = [...]string{"", "நூற்று", "இருநூற்று", "முந்நூற்று", "நானூற்று", "ஐநூற்று", "அறுநூற்று", "எழுநூற்று", "எண்ணூற்று", "தொள்ளாயிரத்து"}
)

const zero = "பூஜ்ஜியம்"

// Tamil returns n in Tamil words. Negative input yields "".
func Tamil(n int64) string {
	if n < 0 {
		return ""
	}
	if n == 0 {
		return zero
	}
	return spell(n)
}

// FromString parses an entered amount and spells it. Anything that is not a
// non-negative number yields "".
func FromString(s string) string {
	n, ok := ParseAmount(s)
	if !ok {
		return ""
	}
	return Tamil(n)
}

// ParseAmount accepts digits with optional ',' or space grouping, an optional
// leading ₹ and an optional fractional part, which is truncated.
func ParseAmount(s string) (int64, bool) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "₹")
	clean = strings.NewReplacer(",", "", " ", "").Replace(clean)
	if clean == "" {
		return 0, false
	}

	whole, fraction, hasFraction := strings.Cut(clean, ".")
	if whole == "" || !allDigits(whole) {
		return 0, false
	}
	if hasFraction && !allDigits(fraction) {
		return 0, false
	}

	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func spell(n int64) string {
	var parts []string

	if c := n / crore; c > 0 {
		n %= crore
		parts = append(parts, multiplier(c)+" "+scaleWord(n, "கோடியே", "கோடி"))
	}
	if l := n / lakh; l > 0 {
		n %= lakh
		parts = append(parts, multiplier(l)+" "+scaleWord(n, "இலட்சத்து", "இலட்சம்"))
	}
	if t := n / thousand; t > 0 {
		n %= thousand
		word := scaleWord(n, "ஆயிரத்து", "ஆயிரம்")
		if t == 1 {
			parts = append(parts, word)
		} else {
			parts = append(parts, multiplier(t)+" "+word)
		}
	}
	if n > 0 {
		parts = append(parts, below1000(n))
	}
	return strings.Join(parts, " ")
}

// scaleWord picks the joining form when a remainder follows.
func scaleWord(rest int64, joined, final string) string {
	if rest > 0 {
		return joined
	}
	return final
}

// multiplier spells a count that qualifies a scale word; a trailing one
// takes its attributive form (ஒரு இலட்சம், not ஒன்று இலட்சம்).
func multiplier(n int64) string {
	w := spell(n)
	if strings.HasSuffix(w, units[1]) {
		return strings.TrimSuffix(w, units[1]) + "ஒரு"
	}
	return w
}

func below1000(n int64) string {
	h, r := n/100, n%100
	switch {
	case h == 0:
		return below100(r)
	case r == 0:
		return hundreds[h]
	default:
		return hundredsJoined[h] + " " + below100(r)
	}
}

func below100(n int64) string {
	switch {
	case n < 10:
		return units[n]
	case n < 20:
		return teens[n-10]
	}
	t, u := n/10, n%10
	if u == 0 {
		return tens[t]
	}
	return tensJoined[t] + " " + units[u]
}
