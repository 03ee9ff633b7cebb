package config

import (
	"sort"

	"github.com/hadithlab/rawi/internal/extract"
)

// Config holds rawi configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Collections map[string]CollectionCfg `mapstructure:"collections" yaml:"collections"`
	Refine      RefineCfg                `mapstructure:"refine" yaml:"refine"`
	Defaults    DefaultsCfg              `mapstructure:"defaults" yaml:"defaults"`
}

// CollectionCfg configures one collection's segmentation profile. Zero
// fields fall back to the grammar's defaults; the heuristic thresholds are
// deliberately tunable per collection rather than hard-coded.
type CollectionCfg struct {
	Title   string `mapstructure:"title" yaml:"title"`     // Display title of the collection
	Grammar string `mapstructure:"grammar" yaml:"grammar"` // "numbered", "ordinal", "item"

	OverlapPages       int     `mapstructure:"overlap_pages" yaml:"overlap_pages"`
	OrdinalKeyword     string  `mapstructure:"ordinal_keyword" yaml:"ordinal_keyword"`
	OrdinalPrefixLimit int     `mapstructure:"ordinal_prefix_limit" yaml:"ordinal_prefix_limit"`
	ItemLookahead      int     `mapstructure:"item_lookahead" yaml:"item_lookahead"`
	HeadingMaxLen      int     `mapstructure:"heading_max_len" yaml:"heading_max_len"`
	TransitionCutoff   float64 `mapstructure:"transition_cutoff" yaml:"transition_cutoff"`
	ShortTextThreshold int     `mapstructure:"short_text_threshold" yaml:"short_text_threshold"`
	VeryShortThreshold int     `mapstructure:"very_short_threshold" yaml:"very_short_threshold"`

	SplitMode      string `mapstructure:"split_mode" yaml:"split_mode"`     // "delimiters", "transition"
	MissingPair    string `mapstructure:"missing_pair" yaml:"missing_pair"` // "chain", "content"
	MultiFootnotes *bool  `mapstructure:"multi_footnotes" yaml:"multi_footnotes,omitempty"`

	Delimiters        []extract.DelimiterPair `mapstructure:"delimiters" yaml:"delimiters,omitempty"`
	ContainerKeywords []string                `mapstructure:"container_keywords" yaml:"container_keywords,omitempty"`
	SectionKeywords   []string                `mapstructure:"section_keywords" yaml:"section_keywords,omitempty"`
	TransitionVerbs   []string                `mapstructure:"transition_verbs" yaml:"transition_verbs,omitempty"`
	CrossRefPhrases   []string                `mapstructure:"cross_ref_phrases" yaml:"cross_ref_phrases,omitempty"`
}

// Profile resolves the collection's extraction profile: the grammar's
// defaults overridden by any explicitly configured field.
func (c CollectionCfg) Profile() extract.Profile {
	p := extract.DefaultProfile(extract.Grammar(c.Grammar))

	if c.OverlapPages > 0 {
		p.OverlapPages = c.OverlapPages
	}
	if c.OrdinalKeyword != "" {
		p.OrdinalKeyword = c.OrdinalKeyword
	}
	if c.OrdinalPrefixLimit > 0 {
		p.OrdinalPrefixLimit = c.OrdinalPrefixLimit
	}
	if c.ItemLookahead > 0 {
		p.ItemLookahead = c.ItemLookahead
	}
	if c.HeadingMaxLen > 0 {
		p.HeadingMaxLen = c.HeadingMaxLen
	}
	if c.TransitionCutoff > 0 {
		p.TransitionCutoff = c.TransitionCutoff
	}
	if c.ShortTextThreshold > 0 {
		p.ShortTextThreshold = c.ShortTextThreshold
	}
	if c.VeryShortThreshold > 0 {
		p.VeryShortThreshold = c.VeryShortThreshold
	}
	if c.SplitMode != "" {
		p.SplitMode = extract.SplitMode(c.SplitMode)
	}
	if c.MissingPair != "" {
		p.MissingPair = extract.MissingPairMode(c.MissingPair)
	}
	if c.MultiFootnotes != nil {
		p.MultiFootnotes = *c.MultiFootnotes
	}
	if len(c.Delimiters) > 0 {
		p.Delimiters = c.Delimiters
	}
	if len(c.ContainerKeywords) > 0 {
		p.ContainerKeywords = c.ContainerKeywords
	}
	if len(c.SectionKeywords) > 0 {
		p.SectionKeywords = c.SectionKeywords
	}
	if len(c.TransitionVerbs) > 0 {
		p.TransitionVerbs = c.TransitionVerbs
	}
	if len(c.CrossRefPhrases) > 0 {
		p.CrossRefPhrases = c.CrossRefPhrases
	}
	return p
}

// RefineCfg configures the optional LLM chain/content refinement step.
type RefineCfg struct {
	Enabled    bool    `mapstructure:"enabled" yaml:"enabled"`
	Model      string  `mapstructure:"model" yaml:"model"`
	APIKey     string  `mapstructure:"api_key" yaml:"api_key"` // Supports ${ENV_VAR} syntax
	BaseURL    string  `mapstructure:"base_url" yaml:"base_url,omitempty"`
	RateLimit  float64 `mapstructure:"rate_limit" yaml:"rate_limit"` // Requests per second
	MaxRetries int     `mapstructure:"max_retries" yaml:"max_retries"`
}

// DefaultsCfg specifies processing defaults.
type DefaultsCfg struct {
	MaxWorkers int `mapstructure:"max_workers" yaml:"max_workers"` // Max concurrent collection runs
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Collections: map[string]CollectionCfg{
			"musnad": {
				Title:   "مسند",
				Grammar: string(extract.GrammarNumbered),
			},
			"arbain": {
				Title:   "الأربعون",
				Grammar: string(extract.GrammarOrdinal),
			},
			"adhkar": {
				Title:   "الأذكار",
				Grammar: string(extract.GrammarItem),
			},
		},
		Refine: RefineCfg{
			Enabled:    false,
			Model:      "gpt-4o-mini",
			APIKey:     "${OPENAI_API_KEY}",
			RateLimit:  2.0,
			MaxRetries: 3,
		},
		Defaults: DefaultsCfg{
			MaxWorkers: 4,
		},
	}
}

// GetCollection returns a collection config by name.
func (c *Config) GetCollection(name string) (CollectionCfg, bool) {
	cfg, ok := c.Collections[name]
	return cfg, ok
}

// CollectionNames returns the configured collection names, sorted.
func (c *Config) CollectionNames() []string {
	names := make([]string, 0, len(c.Collections))
	for name := range c.Collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
