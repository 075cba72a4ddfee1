package numwords

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestTamil(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "பூஜ்ஜியம்"},
		{7, "ஏழு"},
		{10, "பத்து"},
		{15, "பதினைந்து"},
		{21, "இருபத்து ஒன்று"},
		{90, "தொண்ணூறு"},
		{100, "நூறு"},
		{101, "நூற்று ஒன்று"},
		{999, "தொள்ளாயிரத்து தொண்ணூற்று ஒன்பது"},
		{1000, "ஆயிரம்"},
		{1001, "ஆயிரத்து ஒன்று"},
		{21000, "இருபத்து ஒரு ஆயிரம்"},
		{50000, "ஐம்பது ஆயிரம்"},
		{100000, "ஒரு இலட்சம்"},
		{150000, "ஒரு இலட்சத்து ஐம்பது ஆயிரம்"},
		{1100000, "பதினொன்று இலட்சம்"},
		{10000000, "ஒரு கோடி"},
		{12345678, "ஒரு கோடியே இருபத்து மூன்று இலட்சத்து நாற்பத்து ஐந்து ஆயிரத்து அறுநூற்று எழுபத்து எட்டு"},
		{1000000000, "நூறு கோடி"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Tamil(tc.n), "Tamil(%d)", tc.n)
	}
}

func TestTamilNegative(t *testing.T) {
	assert.Equal(t, "", Tamil(-1))
}

func TestFromString(t *testing.T) {
	cases := map[string]string{
		"50000":                "ஐம்பது ஆயிரம்",
		"1,50,000":             "ஒரு இலட்சத்து ஐம்பது ஆயிரம்",
		" 2 000 ":              "இரண்டு ஆயிரம்",
		"₹1000":                "ஆயிரம்",
		"50000.75":             "ஐம்பது ஆயிரம்",
		"":                     "",
		"abc":                  "",
		"-5":                   "",
		"12a":                  "",
		".":                    "",
		"1.2.3":                "",
		"99999999999999999999": "",
	}
	for in, want := range cases {
		assert.Equal(t, want, FromString(in), "FromString(%q)", in)
	}
}

func TestParseAmount(t *testing.T) {
	n, ok := ParseAmount("1,00,000.00")
	assert.True(t, ok)
	assert.Equal(t, int64(100000), n)

	_, ok = ParseAmount("ten")
	assert.False(t, ok)
}

func TestTamilDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Tamil(n) is deterministic and non-empty", prop.ForAll(
		func(n int64) bool {
			first := Tamil(n)
			return first != "" && first == Tamil(n)
		},
		gen.Int64Range(0, 1000000000000),
	))

	properties.Property("FromString never panics and is deterministic", prop.ForAll(
		func(s string) bool {
			return FromString(s) == FromString(s)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
