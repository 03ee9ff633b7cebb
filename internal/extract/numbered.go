package extract

import "regexp"

// numberedMarkerRe matches a line beginning with a run of Arabic-Indic
// digits followed by a dash: the numbered-grammar unit marker. The trailing
// whitespace is part of the marker so bodies start at their first real
// character.
var numberedMarkerRe = regexp.MustCompile(`(?m)^[ \t]*([٠-٩]+)[ \t]*-[ \t]*`)

// numberedScanner implements the numbered-marker grammar: every marker
// starts a unit, and the digit run is the unit's original numeral. Overlap
// duplicates are not filtered at scan time; deduplication happens post hoc
// on (unitNumber, pageStart).
type numberedScanner struct{}

func (sc *numberedScanner) Scan(s *Stream) []Boundary {
	matches := numberedMarkerRe.FindAllStringSubmatchIndex(s.Text, -1)
	boundaries := make([]Boundary, 0, len(matches))

	for _, m := range matches {
		digits := s.Text[m[2]:m[3]]
		n, err := arabicDigitsToInt(digits)
		if err != nil {
			continue
		}
		boundaries = append(boundaries, Boundary{
			Start:      m[0],
			End:        m[1],
			Raw:        s.Text[m[0]:m[1]],
			Number:     digits,
			Sequential: n,
			Kind:       BoundaryUnit,
		})
	}
	return boundaries
}
