package extract

import "testing"

func TestArabicDigitsToInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"١", 1},
		{"٢", 2},
		{"١٢٣", 123},
		{"٠", 0},
		{"42", 42},
		{"٣٠٠٧", 3007},
	}
	for _, c := range cases {
		got, err := arabicDigitsToInt(c.in)
		if err != nil {
			t.Errorf("arabicDigitsToInt(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("arabicDigitsToInt(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestArabicDigitsToInt_Invalid(t *testing.T) {
	for _, in := range []string{"", "اب", "١-٢"} {
		if _, err := arabicDigitsToInt(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestParseOrdinal(t *testing.T) {
	cases := []struct {
		words []string
		want  int
	}{
		{[]string{"الأول"}, 1},
		{[]string{"الاول"}, 1},
		{[]string{"الثاني"}, 2},
		{[]string{"الثالث"}, 3},
		{[]string{"العاشر"}, 10},
		{[]string{"الحادي", "عشر"}, 11},
		{[]string{"الثاني", "عشر"}, 12},
		{[]string{"التاسع", "عشر"}, 19},
		{[]string{"العشرون"}, 20},
		{[]string{"الحادي", "والعشرون"}, 21},
		{[]string{"الثاني", "والعشرون"}, 22},
		{[]string{"التاسع", "والثلاثون"}, 39},
		{[]string{"الأربعون"}, 40},
		{[]string{"الحادي", "والأربعون"}, 41},
	}
	for _, c := range cases {
		got, ok := parseOrdinal(c.words)
		if !ok {
			t.Errorf("parseOrdinal(%v) not recognized", c.words)
			continue
		}
		if got != c.want {
			t.Errorf("parseOrdinal(%v) = %d, want %d", c.words, got, c.want)
		}
	}
}

func TestParseOrdinal_Unrecognized(t *testing.T) {
	cases := [][]string{
		nil,
		{"نص"},
		{"العاشر", "عشر"},
		{"الثالث", "هنا"},
	}
	for _, words := range cases {
		if _, ok := parseOrdinal(words); ok {
			t.Errorf("parseOrdinal(%v) unexpectedly recognized", words)
		}
	}
}
