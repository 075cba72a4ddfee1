package composer

import "strings"

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// when concatenates parts if gate is non-empty, otherwise yields "".
func when(gate string, parts ...string) string {
	if blank(gate) {
		return ""
	}
	return strings.Join(parts, "")
}

// anyOf returns the first non-empty value; used as a gate over several fields.
func anyOf(values ...string) string {
	for _, v := range values {
		if !blank(v) {
			return v
		}
	}
	return ""
}

// join joins the non-empty segments with sep.
func join(sep string, segments ...string) string {
	kept := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, sep)
}

// sentence joins the non-empty segments with single spaces.
func sentence(segments ...string) string {
	return join(" ", segments...)
}

// framed wraps segments in a lead and a tail that only appear when at least
// one segment is present.
func framed(lead, tail string, segments ...string) string {
	body := sentence(segments...)
	if body == "" {
		return ""
	}
	return sentence(lead, body, tail)
}

// terminate ends non-empty prose with a full stop.
func terminate(s string) string {
	if s == "" || strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

// amount renders ரூ.50000/- (ரூபாய் ஐம்பது ஆயிரம் மட்டும்).
func amount(value, words string) string {
	return when(value, "ரூ.", value, "/-", when(words, " (ரூபாய் ", words, " மட்டும்)"))
}

// dated renders "<date> ஆம் தேதியில்".
func dated(date string) string {
	return when(date, date, " ஆம் தேதியில்")
}

func placed(place string) string {
	return when(place, place, " என்ற இடத்தில்")
}

type party struct {
	name         string
	relationType string
	relationName string
	age          string
	address      string
}

// phrase renders "<address> என்ற முகவரியில் வசிக்கும் <name> (த/பெ. <relation>, வயது <age>)".
// A party without a name renders nothing.
func (p party) phrase() string {
	if blank(p.name) {
		return ""
	}
	details := join(", ",
		when(p.relationName, relationPrefix(p.relationType), " ", p.relationName),
		when(p.age, "வயது ", p.age),
	)
	return sentence(
		when(p.address, p.address, " என்ற முகவரியில் வசிக்கும்"),
		p.name+when(details, " (", details, ")"),
	)
}

func relationPrefix(relationType string) string {
	rt := strings.TrimSuffix(strings.TrimSpace(relationType), ".")
	if rt == "" {
		rt = "த/பெ"
	}
	return rt + "."
}

// priorDocument renders the registration reference of an earlier deed.
func priorDocument(office, year, number string) []string {
	return []string{
		when(office, office, " சார்பதிவாளர் அலுவலகத்தில்"),
		when(year, year, " ஆம் ஆண்டு"),
		when(number, "ஆவண எண்:- ", number, " ஆக"),
	}
}
