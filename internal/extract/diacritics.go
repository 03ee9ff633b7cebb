package extract

import "strings"

// isDiacritic reports whether r is one of the Arabic combining marks removed
// for structural matching: the tashkeel block (fathatan through wavy hamza
// below, U+064B..U+065F) and the superscript alef (U+0670). These are
// zero-width visual marks; removing them never reorders characters.
func isDiacritic(r rune) bool {
	return (r >= 0x064B && r <= 0x065F) || r == 0x0670
}

// Strip returns a diacritic-free copy of s together with an index map from
// stripped byte offsets back to original byte offsets. idx has length
// len(stripped)+1: idx[i] is the offset in s of stripped[i], and the final
// entry maps one-past-end to len(s), so any stripped span [a,b) slices the
// original as s[idx[a]:idx[b]]. The map is strictly increasing.
//
// Structural patterns (heading keywords, ordinal words) match on the
// stripped text; the matched span is always cut from the original, fully
// vocalized text via the map.
func Strip(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	idx := make([]int, 0, len(s)+1)

	for i, r := range s {
		if isDiacritic(r) {
			continue
		}
		n := b.Len()
		b.WriteRune(r)
		for j := n; j < b.Len(); j++ {
			idx = append(idx, i+(j-n))
		}
	}
	idx = append(idx, len(s))
	return b.String(), idx
}

// stripString is a convenience for callers that only need the stripped text.
func stripString(s string) string {
	out, _ := Strip(s)
	return out
}
