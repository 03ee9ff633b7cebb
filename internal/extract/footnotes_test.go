package extract

import "testing"

func TestSplitFootnotes_SingleBlock(t *testing.T) {
	main, notes := SplitFootnotes("نص الحديث\n_________\n(1) شرح")
	if main != "نص الحديث" {
		t.Errorf("unexpected main: %q", main)
	}
	if notes != "(1) شرح" {
		t.Errorf("unexpected footnotes: %q", notes)
	}
}

func TestSplitFootnotes_NoSeparator(t *testing.T) {
	body := "نص بلا حاشية"
	main, notes := SplitFootnotes(body)
	if main != body {
		t.Errorf("unexpected main: %q", main)
	}
	if notes != "" {
		t.Errorf("expected no footnotes, got %q", notes)
	}
}

func TestSplitFootnotes_OnlyFirstSeparatorCounts(t *testing.T) {
	main, notes := SplitFootnotes("متن\n____\n(1) أولى\n____\n(2) ثانية")
	if main != "متن" {
		t.Errorf("unexpected main: %q", main)
	}
	// Everything after the first separator is footnote text in single mode.
	if notes != "(1) أولى\n____\n(2) ثانية" {
		t.Errorf("unexpected footnotes: %q", notes)
	}
}

func TestSplitFootnotes_UnderscoresInlineNotSeparator(t *testing.T) {
	body := "نص فيه ____ فراغ للإكمال"
	main, notes := SplitFootnotes(body)
	if main != body || notes != "" {
		t.Errorf("inline underscores must not split: main=%q notes=%q", main, notes)
	}
}

func TestSplitFootnotesMulti_ContinuationReattached(t *testing.T) {
	body := "بداية المتن\n____\n(1) حاشية أولى\nتكملة المتن\n____\n(2) حاشية ثانية"
	main, notes := SplitFootnotesMulti(body)

	if main != "بداية المتن\nتكملة المتن" {
		t.Errorf("unexpected main: %q", main)
	}
	if notes != "(1) حاشية أولى\n(2) حاشية ثانية" {
		t.Errorf("unexpected footnotes: %q", notes)
	}
}

func TestSplitFootnotesMulti_OrderPreserved(t *testing.T) {
	body := "متن\n____\nتكملة أولى\n(1) حاشية\nتكملة ثانية\n(2) حاشية أخرى"
	main, notes := SplitFootnotesMulti(body)

	if main != "متن\nتكملة أولى\nتكملة ثانية" {
		t.Errorf("continuation order lost: %q", main)
	}
	if notes != "(1) حاشية\n(2) حاشية أخرى" {
		t.Errorf("footnote order lost: %q", notes)
	}
}

func TestSplitFootnotesMulti_ArabicIndicFootnoteNumbers(t *testing.T) {
	body := "متن\n____\n(٣) حاشية بأرقام عربية"
	main, notes := SplitFootnotesMulti(body)
	if main != "متن" {
		t.Errorf("unexpected main: %q", main)
	}
	if notes != "(٣) حاشية بأرقام عربية" {
		t.Errorf("unexpected footnotes: %q", notes)
	}
}

func TestSplitFootnotesMulti_NoSeparator(t *testing.T) {
	body := "متن كامل بلا فواصل"
	main, notes := SplitFootnotesMulti(body)
	if main != body || notes != "" {
		t.Errorf("unexpected split: main=%q notes=%q", main, notes)
	}
}
