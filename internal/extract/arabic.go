package extract

import (
	"fmt"
	"strings"
)

// isArabicDigit reports whether r is an Arabic-Indic digit (٠..٩).
func isArabicDigit(r rune) bool {
	return r >= 0x0660 && r <= 0x0669
}

// arabicDigitsToInt converts a run of Arabic-Indic (or ASCII) digits to its
// decimal value. The original numeral string is preserved on the Unit; this
// canonical value feeds the sequential number.
func arabicDigitsToInt(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty digit run")
	}
	n := 0
	for _, r := range s {
		var d int
		switch {
		case isArabicDigit(r):
			d = int(r - 0x0660)
		case r >= '0' && r <= '9':
			d = int(r - '0')
		default:
			return 0, fmt.Errorf("non-digit rune %q in %q", r, s)
		}
		n = n*10 + d
	}
	return n, nil
}

// normalizeOrdinalWord folds orthographic variants so ordinal lookup works
// across hamza spellings: bare-alef vs hamzated alef, final ya vs alef
// maqsura, and tatweel elongation. Input is already diacritic-stripped.
func normalizeOrdinalWord(w string) string {
	var b strings.Builder
	for _, r := range w {
		switch r {
		case 'أ', 'إ', 'آ':
			b.WriteRune('ا')
		case 'ى':
			b.WriteRune('ي')
		case 'ـ': // tatweel
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ordinalUnits maps normalized ordinal words to 1..10. The same word serves
// as the units digit of teens (الحادي عشر) and compound tens (الحادي والعشرون).
var ordinalUnits = map[string]int{
	"الاول":  1,
	"الحادي": 1,
	"الثاني": 2,
	"الثالث": 3,
	"الرابع": 4,
	"الخامس": 5,
	"السادس": 6,
	"السابع": 7,
	"الثامن": 8,
	"التاسع": 9,
	"العاشر": 10,
}

// ordinalTens maps normalized tens words (both nominative and oblique
// spellings) to their value.
var ordinalTens = map[string]int{
	"العشرون":  20,
	"العشرين":  20,
	"الثلاثون": 30,
	"الثلاثين": 30,
	"الاربعون": 40,
	"الاربعين": 40,
	"الخمسون":  50,
	"الخمسين":  50,
}

// parseOrdinal converts an ordinal phrase (one or two diacritic-stripped
// words) to its value: "الثالث" → 3, "الحادي عشر" → 11, "الثاني والعشرون" → 22.
// Returns 0, false when the words form no known ordinal.
func parseOrdinal(words []string) (int, bool) {
	if len(words) == 0 {
		return 0, false
	}
	first := normalizeOrdinalWord(words[0])
	unit, ok := ordinalUnits[first]

	if len(words) == 1 {
		if ok {
			return unit, true
		}
		if tens, tensOK := ordinalTens[first]; tensOK {
			return tens, true
		}
		return 0, false
	}

	second := normalizeOrdinalWord(words[1])

	// Teens: unit word + عشر.
	if second == "عشر" {
		if !ok || unit == 10 {
			return 0, false
		}
		return 10 + unit, true
	}

	// Compound tens: unit word + و + tens word.
	tensWord := strings.TrimPrefix(second, "و")
	if tens, tensOK := ordinalTens[tensWord]; tensOK {
		if !ok || unit == 10 {
			return 0, false
		}
		return tens + unit, true
	}

	return 0, false
}
