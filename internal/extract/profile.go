package extract

// Grammar selects the boundary-scanning strategy for a collection family.
type Grammar string

const (
	// GrammarNumbered marks collections whose units start with a
	// line-leading Arabic-Indic numeral and a dash (e.g. "١ - ...").
	GrammarNumbered Grammar = "numbered"

	// GrammarOrdinal marks collections whose units start with a keyword
	// phrase and an ordinal word (e.g. "الحديث الأول").
	GrammarOrdinal Grammar = "ordinal"

	// GrammarItem marks collections where a numeral-dash marker may open
	// either a content item or a chapter heading and must be
	// disambiguated by lookahead.
	GrammarItem Grammar = "item"
)

// SplitMode selects the chain/content classification strategy.
type SplitMode string

const (
	// SplitDelimiters cuts content out of the outermost delimiter pair;
	// text before the opening delimiter is the chain.
	SplitDelimiters SplitMode = "delimiters"

	// SplitTransition additionally splits the delimited span at the last
	// reporting-verb phrase within the transition cutoff.
	SplitTransition SplitMode = "transition"
)

// MissingPairMode says what to do when no delimiter pair is found in a body.
type MissingPairMode string

const (
	// MissingPairChain treats the whole body as chain text.
	MissingPairChain MissingPairMode = "chain"

	// MissingPairContent treats the whole body as content text.
	MissingPairContent MissingPairMode = "content"
)

// DelimiterPair is an opening/closing glyph pair that encloses content text.
type DelimiterPair struct {
	Open  string `mapstructure:"open" json:"open" yaml:"open"`
	Close string `mapstructure:"close" json:"close" yaml:"close"`
}

// Profile holds the per-collection segmentation parameters. Every heuristic
// constant observed in real collections is tunable here rather than
// hard-coded; Default* constructors carry the observed values.
type Profile struct {
	Grammar Grammar `mapstructure:"grammar" json:"grammar" yaml:"grammar"`

	// OverlapPages is the number of pages shared with the previous chunk
	// by the export step.
	OverlapPages int `mapstructure:"overlap_pages" json:"overlapPages" yaml:"overlap_pages"`

	// OrdinalKeyword precedes the ordinal word in the ordinal grammar
	// (diacritic-stripped form).
	OrdinalKeyword string `mapstructure:"ordinal_keyword" json:"ordinalKeyword" yaml:"ordinal_keyword"`

	// OrdinalPrefixLimit rejects an ordinal candidate when more than this
	// many non-blank characters precede it on its line (page-number noise
	// rather than a true line start).
	OrdinalPrefixLimit int `mapstructure:"ordinal_prefix_limit" json:"ordinalPrefixLimit" yaml:"ordinal_prefix_limit"`

	// ItemLookahead is how many characters after an item-grammar marker
	// are examined for disambiguation.
	ItemLookahead int `mapstructure:"item_lookahead" json:"itemLookahead" yaml:"item_lookahead"`

	// HeadingMaxLen truncates recognized heading lines.
	HeadingMaxLen int `mapstructure:"heading_max_len" json:"headingMaxLen" yaml:"heading_max_len"`

	// ContainerKeywords open top-level (kitab) heading lines.
	ContainerKeywords []string `mapstructure:"container_keywords" json:"containerKeywords" yaml:"container_keywords"`

	// SectionKeywords open subsection (bab) heading lines.
	SectionKeywords []string `mapstructure:"section_keywords" json:"sectionKeywords" yaml:"section_keywords"`

	// MultiFootnotes selects the multi-block footnote splitter, used where
	// footnote blocks can occur mid-body.
	MultiFootnotes bool `mapstructure:"multi_footnotes" json:"multiFootnotes" yaml:"multi_footnotes"`

	SplitMode   SplitMode       `mapstructure:"split_mode" json:"splitMode" yaml:"split_mode"`
	MissingPair MissingPairMode `mapstructure:"missing_pair" json:"missingPair" yaml:"missing_pair"`

	// Delimiters are tried in order; the first pair present in a body wins.
	Delimiters []DelimiterPair `mapstructure:"delimiters" json:"delimiters" yaml:"delimiters"`

	// TransitionVerbs are the reporting-verb phrases ending a chain.
	TransitionVerbs []string `mapstructure:"transition_verbs" json:"transitionVerbs" yaml:"transition_verbs"`

	// TransitionCutoff bounds where a transition verb may end, as a
	// fraction of the span length.
	TransitionCutoff float64 `mapstructure:"transition_cutoff" json:"transitionCutoff" yaml:"transition_cutoff"`

	// ShortTextThreshold is the stripped-content length (in runes) under
	// which a unit is a cross-reference candidate.
	ShortTextThreshold int `mapstructure:"short_text_threshold" json:"shortTextThreshold" yaml:"short_text_threshold"`

	// VeryShortThreshold flags a short unit as cross-reference regardless
	// of phrase match.
	VeryShortThreshold int `mapstructure:"very_short_threshold" json:"veryShortThreshold" yaml:"very_short_threshold"`

	// CrossRefPhrases mean "similarly" / "with the same chain".
	CrossRefPhrases []string `mapstructure:"cross_ref_phrases" json:"crossRefPhrases" yaml:"cross_ref_phrases"`
}

// defaultBase carries the parameters shared by all grammar families.
func defaultBase() Profile {
	return Profile{
		OverlapPages:       2,
		OrdinalKeyword:     "الحديث",
		OrdinalPrefixLimit: 30,
		ItemLookahead:      500,
		HeadingMaxLen:      100,
		ContainerKeywords:  []string{"كتاب"},
		SectionKeywords:    []string{"باب"},
		SplitMode:          SplitDelimiters,
		MissingPair:        MissingPairChain,
		Delimiters: []DelimiterPair{
			{Open: "«", Close: "»"},
			{Open: "﴿", Close: "﴾"},
			{Open: "“", Close: "”"},
			{Open: `"`, Close: `"`},
		},
		TransitionVerbs:    []string{"قال:", "قال :", "يقول:", "فقال:"},
		TransitionCutoff:   0.7,
		ShortTextThreshold: 40,
		VeryShortThreshold: 12,
		CrossRefPhrases:    []string{"مثله", "بمثله", "نحوه", "بنحوه", "بهذا الإسناد", "بالإسناد"},
	}
}

// DefaultNumberedProfile returns the profile for numbered-marker
// collections (musnad-style running hadith numbers).
func DefaultNumberedProfile() Profile {
	p := defaultBase()
	p.Grammar = GrammarNumbered
	p.SplitMode = SplitTransition
	return p
}

// DefaultOrdinalProfile returns the profile for ordinal-heading collections
// (arba'in-style "الحديث الأول" section markers).
func DefaultOrdinalProfile() Profile {
	p := defaultBase()
	p.Grammar = GrammarOrdinal
	p.MissingPair = MissingPairContent
	return p
}

// DefaultItemProfile returns the profile for item/heading collections
// (adhkar-style numbered items with interleaved chapter headings).
func DefaultItemProfile() Profile {
	p := defaultBase()
	p.Grammar = GrammarItem
	p.MultiFootnotes = true
	p.MissingPair = MissingPairContent
	return p
}

// DefaultProfile returns the default profile for a grammar.
func DefaultProfile(g Grammar) Profile {
	switch g {
	case GrammarOrdinal:
		return DefaultOrdinalProfile()
	case GrammarItem:
		return DefaultItemProfile()
	default:
		return DefaultNumberedProfile()
	}
}
