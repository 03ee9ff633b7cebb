package extract

import (
	"strings"

	"github.com/hadithlab/rawi/internal/types"
)

// HeadingTracker maintains the active section/chapter heading state. It is
// updated only from text preceding a boundary, never from a unit's own body.
// A container (kitab) line replaces the top-level heading and clears the
// subsection; a section (bab) line replaces the subsection only. State
// inherited from a previous chunk's carry is used until a heading of the
// chunk's own text is found.
type HeadingTracker struct {
	profile Profile
	cur     types.Heading
}

// NewHeadingTracker seeds a tracker, typically with the previous chunk's
// carried heading.
func NewHeadingTracker(p Profile, initial types.Heading) *HeadingTracker {
	return &HeadingTracker{profile: p, cur: initial}
}

// Observe scans text line by line and applies any recognized heading lines
// in order. Unrecognized lines are ignored.
func (t *HeadingTracker) Observe(text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		stripped := stripString(line)
		switch {
		case hasKeywordPrefix(stripped, t.profile.ContainerKeywords):
			t.cur.Kitab = truncateRunes(line, t.profile.HeadingMaxLen)
			t.cur.Bab = ""
		case hasKeywordPrefix(stripped, t.profile.SectionKeywords):
			t.cur.Bab = truncateRunes(line, t.profile.HeadingMaxLen)
		}
	}
}

// SetBab replaces the subsection heading directly. Used by the item grammar,
// where a marker itself can be classified as a chapter heading.
func (t *HeadingTracker) SetBab(bab string) {
	if bab != "" {
		t.cur.Bab = bab
	}
}

// Current returns the active (kitab, bab) pair.
func (t *HeadingTracker) Current() types.Heading {
	return t.cur
}

// hasKeywordPrefix reports whether a diacritic-stripped line opens with one
// of the keywords followed by further text. The trailing space requirement
// keeps derived words (e.g. بابه) from matching باب.
func hasKeywordPrefix(stripped string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.HasPrefix(stripped, kw+" ") {
			return true
		}
	}
	return false
}
