package extract

import (
	"regexp"
	"strings"
)

// footnoteSeparatorRe matches a footnote separator line: a run of
// underscores, optionally padded with spaces, alone on its line.
var footnoteSeparatorRe = regexp.MustCompile(`(?m)^[ \t]*_{3,}[ \t]*$`)

// footnoteLineRe marks a footnote line: it starts with a parenthesized
// digit run, e.g. "(1) شرح" or "(٢) بيان".
var footnoteLineRe = regexp.MustCompile(`^[ \t]*\([٠-٩0-9]+\)`)

// SplitFootnotes separates a unit body into main text and footnote text
// using the single-block rule: everything before the first separator line is
// main text, everything after it (separator stripped) is footnotes. Returns
// an empty footnote string when no separator is present.
func SplitFootnotes(body string) (main, footnotes string) {
	loc := footnoteSeparatorRe.FindStringIndex(body)
	if loc == nil {
		return body, ""
	}
	main = strings.TrimRight(body[:loc[0]], " \t\n")
	footnotes = strings.TrimSpace(body[loc[1]:])
	return main, footnotes
}

// SplitFootnotesMulti separates a body whose footnote blocks can occur
// mid-body. The body is split at every separator line; within each
// post-separator section, lines starting with a parenthesized digit run are
// footnote lines and anything else is a continuation line reattached to the
// main text. Order is preserved within each category, and a line's
// classification never depends on its position within the section.
func SplitFootnotesMulti(body string) (main, footnotes string) {
	sections := footnoteSeparatorRe.Split(body, -1)
	if len(sections) == 1 {
		return body, ""
	}

	mainParts := []string{strings.TrimRight(sections[0], " \t\n")}
	var noteParts []string

	for _, section := range sections[1:] {
		for _, line := range strings.Split(section, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if footnoteLineRe.MatchString(line) {
				noteParts = append(noteParts, strings.TrimSpace(line))
			} else {
				mainParts = append(mainParts, strings.TrimSpace(line))
			}
		}
	}

	return strings.Join(mainParts, "\n"), strings.Join(noteParts, "\n")
}
