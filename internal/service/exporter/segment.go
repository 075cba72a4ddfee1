package exporter

import (
	"regexp"
	"unicode/utf8"
)

// Script classifies a run of text for font selection.
type Script int

const (
	ScriptTamil Script = iota // Tamil and everything else that is not ASCII alphanumeric
	ScriptLatin
)

func (s Script) String() string {
	if s == ScriptLatin {
		return "latin"
	}
	return "tamil"
}

// FontSet is the typeface pair assigned to segmented runs.
type FontSet struct {
	Latin string `yaml:"latin"`
	Tamil string `yaml:"tamil"`
}

// DefaultFonts are the typeface names written into DOCX runs.
var DefaultFonts = FontSet{Latin: "Times New Roman", Tamil: "Latha"}

func (f FontSet) For(s Script) string {
	if s == ScriptLatin {
		return f.Latin
	}
	return f.Tamil
}

// Run is a script-homogeneous span of one line.
type Run struct {
	Text   string
	Script Script
	Font   string
}

var latinChar = regexp.MustCompile(`^[a-zA-Z0-9]$`)

func classify(r rune) Script {
	if latinChar.MatchString(string(r)) {
		return ScriptLatin
	}
	return ScriptTamil
}

// Segment splits line into runs at every change of character class. Spaces
// and punctuation belong to the Tamil class, so "எண்:- ABC123" yields two
// runs. Concatenating the run texts gives back line exactly.
func Segment(line string, fonts FontSet) []Run {
	if line == "" {
		return nil
	}
	first, _ := utf8.DecodeRuneInString(line)
	var (
		runs   []Run
		start  int
		script = classify(first)
	)
	for i, r := range line {
		if s := classify(r); s != script {
			runs = append(runs, Run{Text: line[start:i], Script: script, Font: fonts.For(script)})
			start, script = i, s
		}
	}
	runs = append(runs, Run{Text: line[start:], Script: script, Font: fonts.For(script)})
	return runs
}
