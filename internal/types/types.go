// Package types holds the shared data model for chunked source texts and
// the structured records extracted from them. JSON tags match the on-disk
// chunk format produced by the export step and consumed by the DB importer.
package types

// Page is one source page of plain text.
type Page struct {
	PageNumber        int    `json:"pageNumber"`
	VolumeNumber      int    `json:"volumeNumber"`
	PrintedPageNumber int    `json:"printedPageNumber"`
	ContentPlain      string `json:"contentPlain"`
}

// Chunk is an ordered window of pages, possibly overlapping the previous
// chunk by a fixed page count. Chunks are processed strictly in ascending
// ChunkID order.
type Chunk struct {
	ChunkID   int    `json:"chunkId"`
	PagesFrom int    `json:"pagesFrom"`
	PagesTo   int    `json:"pagesTo"`
	Pages     []Page `json:"pages"`
}

// Heading is the structural context above a unit: the container-level kitab
// and the subsection-level bab.
type Heading struct {
	Kitab string `json:"kitab"`
	Bab   string `json:"bab"`
}

// IsEmpty reports whether neither kitab nor bab is set.
func (h Heading) IsEmpty() bool {
	return h.Kitab == "" && h.Bab == ""
}

// Unit is one structured record extracted from the source text: a hadith,
// an ordinal item, or a du'a entry. Immutable after creation.
type Unit struct {
	// UnitNumber is the original numeral string as printed in the source
	// (Arabic-Indic digits or an ordinal phrase), preserved verbatim.
	UnitNumber string `json:"unitNumber"`

	// SequentialNumber is the canonical decimal position of the unit in the
	// collection's running order.
	SequentialNumber int `json:"sequentialNumber"`

	// ChainText is the narrator-attribution portion (isnad).
	ChainText string `json:"chainText"`

	// ContentText is the substantive text (matn).
	ContentText string `json:"contentText"`

	Heading Heading `json:"heading"`

	// Footnotes holds the unit's footnote text, nil when the body carried
	// no footnote block.
	Footnotes *string `json:"footnotes"`

	PageStart int `json:"pageStart"`
	PageEnd   int `json:"pageEnd"`

	// IsCrossReferenceOnly marks units whose content is a brief reference
	// to an earlier unit ("similarly", "with the same chain") rather than
	// full content.
	IsCrossReferenceOnly bool `json:"isCrossReferenceOnly"`
}

// ExtractedChunk is one chunk's output: the units found in it plus the
// heading state active at its end, which seeds the next chunk's carry.
type ExtractedChunk struct {
	ChunkID     int     `json:"chunkId"`
	LastHeading Heading `json:"lastHeading"`
	Units       []Unit  `json:"units"`
}

// CarryState is the continuation data threaded explicitly from one chunk's
// processing to the next. A single value flows through the whole chunk
// sequence of one collection; there is no implicit global state.
type CarryState struct {
	LastUnitNumber int     `json:"lastUnitNumber"`
	LastHeading    Heading `json:"lastHeading"`
	LastPage       int     `json:"lastPage"`
}

// QualityStats are aggregate counters reported for human review of
// heuristic coverage. They never gate processing.
type QualityStats struct {
	Units           int `json:"units"`
	EmptyHeading    int `json:"emptyHeading"`
	EmptyContent    int `json:"emptyContent"`
	CrossReferences int `json:"crossReferences"`
	Footnoted       int `json:"footnoted"`
}

// Add accumulates counters from another stats value.
func (q *QualityStats) Add(other QualityStats) {
	q.Units += other.Units
	q.EmptyHeading += other.EmptyHeading
	q.EmptyContent += other.EmptyContent
	q.CrossReferences += other.CrossReferences
	q.Footnoted += other.Footnoted
}
