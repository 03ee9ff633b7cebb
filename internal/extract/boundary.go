package extract

import "fmt"

// BoundaryKind classifies a detected marker.
type BoundaryKind int

const (
	// BoundaryUnit starts a content unit.
	BoundaryUnit BoundaryKind = iota

	// BoundaryHeading is a structural chapter marker: it updates heading
	// state and produces no unit.
	BoundaryHeading
)

// Boundary is a detected unit-start (or heading) marker in the assembled
// stream. Ephemeral: boundaries are consumed immediately to slice body text.
type Boundary struct {
	// Start and End delimit the marker itself (byte offsets into the
	// stream text). A unit's body runs from End to the Start of the next
	// boundary of any kind.
	Start int
	End   int

	// Raw is the matched marker text as it appears in the original.
	Raw string

	// Number is the unit's original numeral string (Arabic-Indic digits or
	// an ordinal phrase), empty for headings.
	Number string

	// Sequential is the canonical decimal value of Number, 0 when the
	// marker carries none.
	Sequential int

	Kind BoundaryKind

	// HeadingText holds the new section heading for BoundaryHeading.
	HeadingText string
}

// Scanner locates all boundaries in an assembled stream in document order.
// Scanning is a single pass completed before any body slicing, so the
// classification of one marker never depends on the body of another.
type Scanner interface {
	Scan(s *Stream) []Boundary
}

// NewScanner selects the boundary grammar for a profile.
func NewScanner(p Profile) (Scanner, error) {
	switch p.Grammar {
	case GrammarNumbered:
		return &numberedScanner{}, nil
	case GrammarOrdinal:
		return newOrdinalScanner(p), nil
	case GrammarItem:
		return newItemScanner(p), nil
	default:
		return nil, fmt.Errorf("unknown boundary grammar %q", p.Grammar)
	}
}
