package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// ordinalScanner implements the ordinal-heading grammar: a fixed keyword
// phrase followed by an Arabic ordinal word ("الحديث الأول", "الحديث الثاني
// والعشرون") starts a unit. Matching runs on the diacritic-stripped text so
// vocalization never affects recognition; the matched span is mapped back to
// the original text before slicing.
type ordinalScanner struct {
	profile Profile
	re      *regexp.Regexp
}

func newOrdinalScanner(p Profile) *ordinalScanner {
	kw := regexp.QuoteMeta(stripString(p.OrdinalKeyword))
	// Group 1: whole marker. Groups 2 and 3: ordinal word and its optional
	// continuation (عشر / والعشرون ...).
	re := regexp.MustCompile(`(?m)(?:^|\s)(` + kw + `[ \t]+(\S+)(?:[ \t]+(\S+))?)`)
	return &ordinalScanner{profile: p, re: re}
}

func (sc *ordinalScanner) Scan(s *Stream) []Boundary {
	stripped, idx := Strip(s.Text)
	matches := sc.re.FindAllStringSubmatchIndex(stripped, -1)

	var boundaries []Boundary
	for _, m := range matches {
		kwStart, word1Start, word1End := m[2], m[4], m[5]

		if sc.noisyLinePrefix(stripped, kwStart) {
			continue
		}

		// Prefer the two-word ordinal; fall back to the single word so a
		// following content word never blocks recognition.
		consumedEnd := word1End
		words := []string{stripped[word1Start:word1End]}
		if m[6] >= 0 {
			two := append(words, stripped[m[6]:m[7]])
			if _, ok := parseOrdinal(two); ok {
				words = two
				consumedEnd = m[7]
			}
		}
		value, ok := parseOrdinal(words)
		if !ok {
			continue
		}

		boundaries = append(boundaries, Boundary{
			Start:      idx[kwStart],
			End:        idx[consumedEnd],
			Raw:        s.Text[idx[kwStart]:idx[consumedEnd]],
			Number:     s.Text[idx[word1Start]:idx[consumedEnd]],
			Sequential: value,
			Kind:       BoundaryUnit,
		})
	}
	return boundaries
}

// noisyLinePrefix rejects a candidate when more than the configured number
// of non-blank characters precede it on the same line: such matches are
// page-number noise in running text, not a true line-leading heading.
func (sc *ordinalScanner) noisyLinePrefix(stripped string, pos int) bool {
	lineStart := strings.LastIndexByte(stripped[:pos], '\n') + 1
	count := 0
	for _, r := range stripped[lineStart:pos] {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count > sc.profile.OrdinalPrefixLimit
}
