package extract

import (
	"strings"
	"testing"

	"github.com/hadithlab/rawi/internal/types"
)

func streamOf(text string) *Stream {
	return Assemble([]types.Page{{PageNumber: 1, ContentPlain: text}})
}

func TestNumberedScanner_Basic(t *testing.T) {
	s := streamOf("١ - فلان قال: كذا\n٢ - آخر")
	sc := &numberedScanner{}
	got := sc.Scan(s)

	if len(got) != 2 {
		t.Fatalf("expected 2 boundaries, got %d: %+v", len(got), got)
	}
	if got[0].Number != "١" || got[0].Sequential != 1 {
		t.Errorf("boundary 0: number %q seq %d", got[0].Number, got[0].Sequential)
	}
	if got[1].Number != "٢" || got[1].Sequential != 2 {
		t.Errorf("boundary 1: number %q seq %d", got[1].Number, got[1].Sequential)
	}
	body := s.Text[got[0].End:got[1].Start]
	if strings.TrimSpace(body) != "فلان قال: كذا" {
		t.Errorf("unexpected body for unit 1: %q", body)
	}
}

func TestNumberedScanner_IgnoresMidLineDigits(t *testing.T) {
	s := streamOf("نص فيه ٣ - ليس علامة\n٤ - حديث")
	got := (&numberedScanner{}).Scan(s)
	if len(got) != 1 {
		t.Fatalf("expected 1 boundary, got %d", len(got))
	}
	if got[0].Sequential != 4 {
		t.Fatalf("expected unit 4, got %d", got[0].Sequential)
	}
}

func TestNumberedScanner_MultiDigit(t *testing.T) {
	s := streamOf("١٢٣٤ - حديث طويل")
	got := (&numberedScanner{}).Scan(s)
	if len(got) != 1 || got[0].Sequential != 1234 {
		t.Fatalf("unexpected boundaries: %+v", got)
	}
}

func TestOrdinalScanner_WithAndWithoutTashkeel(t *testing.T) {
	sc := newOrdinalScanner(DefaultOrdinalProfile())

	plain := streamOf("الحديث الثالث\nنص الحديث هنا")
	vocalized := streamOf("الحديثُ الثَّالِثُ\nنص الحديث هنا")

	for name, s := range map[string]*Stream{"plain": plain, "vocalized": vocalized} {
		got := sc.Scan(s)
		if len(got) != 1 {
			t.Fatalf("%s: expected 1 boundary, got %d", name, len(got))
		}
		if got[0].Sequential != 3 {
			t.Errorf("%s: expected ordinal 3, got %d", name, got[0].Sequential)
		}
	}
}

func TestOrdinalScanner_CompoundOrdinal(t *testing.T) {
	sc := newOrdinalScanner(DefaultOrdinalProfile())
	got := sc.Scan(streamOf("الحديث الحادي والعشرون\nمتن"))
	if len(got) != 1 {
		t.Fatalf("expected 1 boundary, got %d", len(got))
	}
	if got[0].Sequential != 21 {
		t.Fatalf("expected ordinal 21, got %d", got[0].Sequential)
	}
	if !strings.Contains(got[0].Raw, "والعشرون") {
		t.Fatalf("marker should consume the compound: %q", got[0].Raw)
	}
}

func TestOrdinalScanner_RejectsNoisyLinePrefix(t *testing.T) {
	prefix := strings.Repeat("نص", 20) // 40 non-blank chars before the keyword
	sc := newOrdinalScanner(DefaultOrdinalProfile())
	got := sc.Scan(streamOf(prefix + " الحديث الرابع\nمتن"))
	if len(got) != 0 {
		t.Fatalf("expected noisy candidate rejected, got %+v", got)
	}
}

func TestOrdinalScanner_AllowsShortLinePrefix(t *testing.T) {
	// A short prefix (page-number scale) stays under the limit.
	sc := newOrdinalScanner(DefaultOrdinalProfile())
	got := sc.Scan(streamOf("١٢ الحديث الرابع\nمتن"))
	if len(got) != 1 {
		t.Fatalf("expected 1 boundary, got %d", len(got))
	}
	if got[0].Sequential != 4 {
		t.Fatalf("expected ordinal 4, got %d", got[0].Sequential)
	}
}

func TestOrdinalScanner_KeywordInRunningTextIgnored(t *testing.T) {
	sc := newOrdinalScanner(DefaultOrdinalProfile())
	got := sc.Scan(streamOf("وذكر الحديث بطوله ثم قال"))
	if len(got) != 0 {
		t.Fatalf("expected no boundaries, got %+v", got)
	}
}

func TestItemScanner_HeadingVsItem(t *testing.T) {
	text := "٥ - باب في الذكر\nنص الباب\n٦ - «دعاء الصباح»"
	sc := newItemScanner(DefaultItemProfile())
	got := sc.Scan(streamOf(text))

	if len(got) != 2 {
		t.Fatalf("expected 2 boundaries, got %d", len(got))
	}
	if got[0].Kind != BoundaryHeading {
		t.Errorf("marker ٥ should be a heading, got kind %d", got[0].Kind)
	}
	if got[0].HeadingText != "باب في الذكر" {
		t.Errorf("unexpected heading text: %q", got[0].HeadingText)
	}
	if got[1].Kind != BoundaryUnit {
		t.Errorf("marker ٦ should be a content item, got kind %d", got[1].Kind)
	}
	if got[1].Sequential != 6 {
		t.Errorf("expected item 6, got %d", got[1].Sequential)
	}
}

func TestItemScanner_SubNumberMarksItem(t *testing.T) {
	sc := newItemScanner(DefaultItemProfile())
	got := sc.Scan(streamOf("٧ - (١) اللهم إني أسألك"))
	if len(got) != 1 || got[0].Kind != BoundaryUnit {
		t.Fatalf("parenthesized sub-number should mark an item: %+v", got)
	}
}

func TestItemScanner_HeadingTruncated(t *testing.T) {
	p := DefaultItemProfile()
	p.HeadingMaxLen = 10
	sc := newItemScanner(p)
	got := sc.Scan(streamOf("٨ - باب طويل جدا يتجاوز الحد المقرر للعناوين"))
	if len(got) != 1 || got[0].Kind != BoundaryHeading {
		t.Fatalf("expected heading boundary: %+v", got)
	}
	if n := len([]rune(got[0].HeadingText)); n > 10 {
		t.Fatalf("heading not truncated: %d runes", n)
	}
}

func TestNewScanner_UnknownGrammar(t *testing.T) {
	if _, err := NewScanner(Profile{Grammar: "bogus"}); err == nil {
		t.Fatal("expected error for unknown grammar")
	}
}
