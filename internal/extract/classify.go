package extract

import (
	"strings"
	"unicode/utf8"
)

// Split is a unit body divided into chain text (isnad) and content text
// (matn). Either side may be empty; the classifier is a structural
// heuristic, not a linguistic parse, and deeper correction is deferred to
// the LLM refinement step.
type Split struct {
	Chain   string
	Content string
}

// SplitChainContent divides a unit body per the profile's split mode.
//
// Delimiter mode: the outermost matching delimiter pair encloses the
// content; text before the opening glyph is the chain. When no pair is
// found, the whole body becomes chain or content per the profile.
//
// Transition mode: the last reporting-verb phrase ending at or before the
// transition cutoff of the span splits chain from content; without one, the
// whole span is content.
func SplitChainContent(body string, p Profile) Split {
	body = strings.TrimSpace(body)

	switch p.SplitMode {
	case SplitTransition:
		return splitByTransition(body, p)
	default:
		return splitByDelimiters(body, p)
	}
}

func splitByDelimiters(body string, p Profile) Split {
	open, close, ok := outermostPair(body, p.Delimiters)
	if !ok {
		if p.MissingPair == MissingPairContent {
			return Split{Content: body}
		}
		return Split{Chain: body}
	}
	return Split{
		Chain:   strings.TrimSpace(body[:open[0]]),
		Content: strings.TrimSpace(body[open[1]:close[0]]),
	}
}

func splitByTransition(body string, p Profile) Split {
	// The chain may itself be delimiter-wrapped; split inside the pair
	// when one exists, otherwise over the whole body.
	span := body
	prefix := ""
	if open, close, ok := outermostPair(body, p.Delimiters); ok {
		prefix = strings.TrimSpace(body[:open[0]])
		span = strings.TrimSpace(body[open[1]:close[0]])
	}

	cut := lastTransitionEnd(span, p)
	if cut < 0 {
		return Split{Chain: prefix, Content: span}
	}

	chain := strings.TrimSpace(span[:cut])
	if prefix != "" {
		chain = strings.TrimSpace(prefix + " " + chain)
	}
	return Split{Chain: chain, Content: strings.TrimSpace(span[cut:])}
}

// outermostPair finds the first delimiter pair present in the body: the
// first opening glyph and the last closing glyph after it. Pairs are tried
// in profile order.
func outermostPair(body string, pairs []DelimiterPair) (open, close [2]int, ok bool) {
	for _, d := range pairs {
		if d.Open == "" || d.Close == "" {
			continue
		}
		o := strings.Index(body, d.Open)
		if o < 0 {
			continue
		}
		rest := body[o+len(d.Open):]
		c := strings.LastIndex(rest, d.Close)
		if c < 0 {
			continue
		}
		openEnd := o + len(d.Open)
		return [2]int{o, openEnd}, [2]int{openEnd + c, openEnd + c + len(d.Close)}, true
	}
	return open, close, false
}

// lastTransitionEnd returns the byte offset just past the last reporting
// verb whose end falls at or before the cutoff fraction of the span, or -1.
func lastTransitionEnd(span string, p Profile) int {
	limit := int(float64(len(span)) * p.TransitionCutoff)
	best := -1
	for _, verb := range p.TransitionVerbs {
		from := 0
		for {
			i := strings.Index(span[from:], verb)
			if i < 0 {
				break
			}
			end := from + i + len(verb)
			if end <= limit && end > best {
				best = end
			}
			from += i + len(verb)
		}
	}
	return best
}

// IsCrossReference reports whether the content text is a brief reference to
// an earlier unit rather than full content: its diacritic-stripped form is
// under the short-text threshold and either carries one of the fixed
// "similarly" phrases or is very short outright.
func IsCrossReference(content string, p Profile) bool {
	stripped := strings.TrimSpace(stripString(content))
	n := utf8.RuneCountInString(stripped)
	if n >= p.ShortTextThreshold {
		return false
	}
	if n < p.VeryShortThreshold {
		return true
	}
	for _, phrase := range p.CrossRefPhrases {
		if strings.Contains(stripped, stripString(phrase)) {
			return true
		}
	}
	return false
}
