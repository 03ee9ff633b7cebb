package extract

import (
	"sort"
	"strings"

	"github.com/hadithlab/rawi/internal/types"
)

// Stream is the assembled text of one chunk: the pages joined with a single
// newline, plus the byte offset at which each page's content begins, so any
// offset in the buffer maps back to its source page.
type Stream struct {
	Text string

	breaks []pageBreak
}

type pageBreak struct {
	offset int
	page   types.Page
}

// Assemble joins the ordered pages into one buffer. The first page begins at
// offset 0 and gains no leading separator; every following page begins one
// byte after the previous page's content.
func Assemble(pages []types.Page) *Stream {
	s := &Stream{breaks: make([]pageBreak, 0, len(pages))}

	var b strings.Builder
	for i, p := range pages {
		if i > 0 {
			b.WriteByte('\n')
		}
		s.breaks = append(s.breaks, pageBreak{offset: b.Len(), page: p})
		b.WriteString(p.ContentPlain)
	}
	s.Text = b.String()
	return s
}

// PageAt returns the page whose recorded start offset is the greatest value
// ≤ pos. Every offset in [0, len(Text)) maps to exactly one page. Calling
// PageAt on an empty stream returns a zero Page.
func (s *Stream) PageAt(pos int) types.Page {
	if len(s.breaks) == 0 {
		return types.Page{}
	}
	// First break whose offset is > pos; the page before it owns pos.
	i := sort.Search(len(s.breaks), func(i int) bool {
		return s.breaks[i].offset > pos
	})
	if i == 0 {
		return s.breaks[0].page
	}
	return s.breaks[i-1].page
}

// LastPage returns the final page of the stream, or a zero Page when the
// stream holds no pages.
func (s *Stream) LastPage() types.Page {
	if len(s.breaks) == 0 {
		return types.Page{}
	}
	return s.breaks[len(s.breaks)-1].page
}
