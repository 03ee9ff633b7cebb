// Package extract implements the deterministic document-segmentation engine:
// it assembles a chunk's pages into one text stream, locates unit boundaries
// with a collection-specific grammar, tracks chapter/section heading state
// across units and chunk boundaries, splits footnote blocks, classifies
// chain vs. content text, and deduplicates units produced by page overlap
// between adjacent chunks.
//
// The engine is storage- and network-agnostic: it consumes ordered chunk
// values plus an explicit carry state and produces extracted chunks plus the
// carry state for the next chunk. Processing is single-threaded and purely
// CPU-bound; chunks of one collection must be folded strictly in ascending
// chunk id order because consecutive chunks have a hard data dependency
// through the carry state.
package extract

import (
	"log/slog"

	"github.com/hadithlab/rawi/internal/types"
)

// Engine segments chunks of one collection. Safe to reuse across chunks;
// all cross-chunk state travels in the CarryState value.
type Engine struct {
	profile Profile
	scanner Scanner
	logger  *slog.Logger
}

// New builds an engine for a collection profile.
func New(profile Profile, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	scanner, err := NewScanner(profile)
	if err != nil {
		return nil, err
	}
	return &Engine{
		profile: profile,
		scanner: scanner,
		logger:  logger.With("component", "extract", "grammar", string(profile.Grammar)),
	}, nil
}

// ProcessChunk segments one chunk. Given identical input and carry state the
// output is byte-identical across runs. A chunk producing zero boundaries is
// not an error: it yields an empty unit list and the carry state unchanged.
func (e *Engine) ProcessChunk(chunk types.Chunk, carry types.CarryState) (types.ExtractedChunk, types.CarryState, error) {
	stream := Assemble(chunk.Pages)
	boundaries := e.scanner.Scan(stream)

	// The ordinal grammar filters re-scanned overlap pages up front; the
	// numbered and item grammars rely on post-hoc deduplication instead.
	if e.profile.Grammar == GrammarOrdinal && carry.LastPage > 0 {
		kept := boundaries[:0]
		for _, b := range boundaries {
			if stream.PageAt(b.Start).PageNumber > carry.LastPage {
				kept = append(kept, b)
			}
		}
		boundaries = kept
	}

	out := types.ExtractedChunk{
		ChunkID:     chunk.ChunkID,
		LastHeading: carry.LastHeading,
		Units:       []types.Unit{},
	}
	if len(boundaries) == 0 {
		return out, carry, nil
	}

	tracker := NewHeadingTracker(e.profile, carry.LastHeading)
	running := carry.LastUnitNumber
	prevEnd := 0

	for i, b := range boundaries {
		// Heading state comes strictly from text preceding the boundary,
		// never from the unit's own body.
		tracker.Observe(stream.Text[prevEnd:b.Start])

		if b.Kind == BoundaryHeading {
			tracker.SetBab(b.HeadingText)
			prevEnd = b.End
			continue
		}

		bodyEnd := len(stream.Text)
		if i+1 < len(boundaries) {
			bodyEnd = boundaries[i+1].Start
		}
		body := stream.Text[b.End:bodyEnd]

		var main, notes string
		if e.profile.MultiFootnotes {
			main, notes = SplitFootnotesMulti(body)
		} else {
			main, notes = SplitFootnotes(body)
		}

		split := SplitChainContent(main, e.profile)

		seq := b.Sequential
		if e.profile.Grammar == GrammarOrdinal {
			// Ordinal words restart per book part; the sequential number
			// continues the collection's running order from the carry.
			seq = running + 1
		}
		running = seq

		var footnotes *string
		if notes != "" {
			n := notes
			footnotes = &n
		}

		lastByte := bodyEnd - 1
		if lastByte < b.Start {
			lastByte = b.Start
		}
		out.Units = append(out.Units, types.Unit{
			UnitNumber:           b.Number,
			SequentialNumber:     seq,
			ChainText:            split.Chain,
			ContentText:          split.Content,
			Heading:              tracker.Current(),
			Footnotes:            footnotes,
			PageStart:            stream.PageAt(b.Start).PageNumber,
			PageEnd:              stream.PageAt(lastByte).PageNumber,
			IsCrossReferenceOnly: IsCrossReference(split.Content, e.profile),
		})
		prevEnd = b.End
	}

	out.Units = Deduplicate(out.Units)

	// A unit re-scanned from the pages shared with the previous chunk has
	// the same (unitNumber, pageStart) key the previous chunk already
	// recorded: it starts on an already-processed page and carries an
	// already-passed number. Drop it so adjacent outputs never overlap.
	if e.profile.Grammar != GrammarOrdinal && carry.LastPage > 0 {
		kept := out.Units[:0]
		for _, u := range out.Units {
			if u.PageStart <= carry.LastPage && u.SequentialNumber <= carry.LastUnitNumber {
				continue
			}
			kept = append(kept, u)
		}
		out.Units = kept
	}

	out.LastHeading = tracker.Current()

	next := carry
	next.LastHeading = tracker.Current()
	if n := len(out.Units); n > 0 {
		next.LastUnitNumber = out.Units[n-1].SequentialNumber
		next.LastPage = stream.LastPage().PageNumber
	}

	stats := Stats(out.Units)
	e.logger.Debug("chunk processed",
		"chunk", chunk.ChunkID,
		"units", stats.Units,
		"cross_refs", stats.CrossReferences,
		"footnoted", stats.Footnoted,
	)
	return out, next, nil
}

// Deduplicate removes units sharing an identical (unitNumber, pageStart)
// key, keeping the first occurrence in scan order. Such duplicates arise
// when adjacent chunks share overlap pages. Idempotent, and purely local to
// one chunk's output.
func Deduplicate(units []types.Unit) []types.Unit {
	type key struct {
		number    string
		pageStart int
	}
	seen := make(map[key]struct{}, len(units))
	out := units[:0]
	for _, u := range units {
		k := key{number: u.UnitNumber, pageStart: u.PageStart}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, u)
	}
	return out
}

// Stats computes the aggregate quality counters for a unit list. Heuristic
// misclassification is never an error; these counters let a reviewer audit
// coverage instead.
func Stats(units []types.Unit) types.QualityStats {
	var s types.QualityStats
	s.Units = len(units)
	for _, u := range units {
		if u.Heading.IsEmpty() {
			s.EmptyHeading++
		}
		if u.ContentText == "" {
			s.EmptyContent++
		}
		if u.IsCrossReferenceOnly {
			s.CrossReferences++
		}
		if u.Footnotes != nil {
			s.Footnoted++
		}
	}
	return s
}
