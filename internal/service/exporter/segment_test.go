package exporter

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

var testFonts = FontSet{Latin: "L", Tamil: "T"}

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Run
	}{
		{"empty", "", nil},
		{"latin only", "ABC123", []Run{{"ABC123", ScriptLatin, "L"}}},
		{"tamil only", "ராமன்", []Run{{"ராமன்", ScriptTamil, "T"}}},
		{"document number", "ஆவண எண்:- ABC123", []Run{
			{"ஆவண எண்:- ", ScriptTamil, "T"},
			{"ABC123", ScriptLatin, "L"},
		}},
		{"digit inside word", "2025ம் ஆண்டு", []Run{
			{"2025", ScriptLatin, "L"},
			{"ம் ஆண்டு", ScriptTamil, "T"},
		}},
		{"space splits latin words", "Main Road", []Run{
			{"Main", ScriptLatin, "L"},
			{" ", ScriptTamil, "T"},
			{"Road", ScriptLatin, "L"},
		}},
		{"amount", "ரூ.50000/-", []Run{
			{"ரூ.", ScriptTamil, "T"},
			{"50000", ScriptLatin, "L"},
			{"/-", ScriptTamil, "T"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segment(tt.line, testFonts))
		})
	}
}

func TestSegmentNonASCIIDigitsAreTamil(t *testing.T) {
	runs := Segment("௧௨", testFonts)
	if len(runs) != 1 || runs[0].Script != ScriptTamil {
		t.Fatalf("Tamil numerals should stay in the Tamil run, got %+v", runs)
	}
}

func TestSegmentProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	mixed := gen.SliceOf(gen.OneGenOf(
		gen.AlphaString(),
		gen.NumString(),
		gen.OneConstOf("ராமன்", "எண்:- ", " ", "ரூ.", "/-", "ம்"),
	)).Map(func(parts []string) string { return strings.Join(parts, "") })

	properties.Property("runs concatenate back to the input", prop.ForAll(
		func(s string) bool {
			var b strings.Builder
			for _, r := range Segment(s, testFonts) {
				b.WriteString(r.Text)
			}
			return b.String() == s
		},
		mixed,
	))

	properties.Property("arbitrary strings round-trip", prop.ForAll(
		func(s string) bool {
			var b strings.Builder
			for _, r := range Segment(s, testFonts) {
				b.WriteString(r.Text)
			}
			return b.String() == s
		},
		gen.AnyString(),
	))

	properties.Property("adjacent runs differ in script and fonts follow script", prop.ForAll(
		func(s string) bool {
			runs := Segment(s, testFonts)
			for i, r := range runs {
				if r.Text == "" || r.Font != testFonts.For(r.Script) {
					return false
				}
				for _, c := range r.Text {
					if classify(c) != r.Script {
						return false
					}
				}
				if i > 0 && runs[i-1].Script == r.Script {
					return false
				}
			}
			return true
		},
		mixed,
	))

	properties.TestingRun(t)
}
