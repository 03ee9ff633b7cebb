package extract

import (
	"regexp"
	"strings"
)

// subNumberRe matches a leading parenthesized sub-number: the mark of a
// content item's internal numbering, e.g. "(١)" or "(2)".
var subNumberRe = regexp.MustCompile(`^\s*\([٠-٩0-9]+\)`)

// itemScanner implements the item/heading grammar used by du'a and adhkar
// collections: a numeral-dash marker opens either a content item or a
// chapter heading. The two are disambiguated by lookahead into the text
// following the marker — a leading parenthesized sub-number or any content
// delimiter glyph within the first line marks an item; anything else is a
// structural heading whose first line becomes the new section heading.
type itemScanner struct {
	profile Profile
	glyphs  []string
}

func newItemScanner(p Profile) *itemScanner {
	glyphs := make([]string, 0, len(p.Delimiters)*2)
	for _, d := range p.Delimiters {
		glyphs = append(glyphs, d.Open, d.Close)
	}
	return &itemScanner{profile: p, glyphs: glyphs}
}

func (sc *itemScanner) Scan(s *Stream) []Boundary {
	matches := numberedMarkerRe.FindAllStringSubmatchIndex(s.Text, -1)
	boundaries := make([]Boundary, 0, len(matches))

	for _, m := range matches {
		digits := s.Text[m[2]:m[3]]
		n, err := arabicDigitsToInt(digits)
		if err != nil {
			continue
		}

		b := Boundary{
			Start:      m[0],
			End:        m[1],
			Raw:        s.Text[m[0]:m[1]],
			Number:     digits,
			Sequential: n,
			Kind:       BoundaryUnit,
		}

		firstLine := sc.lookaheadFirstLine(s.Text[m[1]:])
		if !sc.isContentItem(firstLine) {
			b.Kind = BoundaryHeading
			b.Number = ""
			b.Sequential = 0
			b.HeadingText = truncateRunes(strings.TrimSpace(firstLine), sc.profile.HeadingMaxLen)
		}
		boundaries = append(boundaries, b)
	}
	return boundaries
}

// lookaheadFirstLine returns the first line of the lookahead window after a
// marker. The window is capped before the line split, so a line running past
// the cap is examined only up to it.
func (sc *itemScanner) lookaheadFirstLine(rest string) string {
	window := truncateRunes(rest, sc.profile.ItemLookahead)
	if i := strings.IndexByte(window, '\n'); i >= 0 {
		window = window[:i]
	}
	return window
}

// isContentItem reports whether the first line after a marker reads as item
// content: it opens with a parenthesized sub-number, or carries one of the
// quotation / Qur'anic-bracket glyphs that never appear in chapter headings.
func (sc *itemScanner) isContentItem(firstLine string) bool {
	if subNumberRe.MatchString(firstLine) {
		return true
	}
	for _, g := range sc.glyphs {
		if strings.Contains(firstLine, g) {
			return true
		}
	}
	return false
}

// truncateRunes caps s at n runes without splitting a rune.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
