package config

import (
	"os"
	"testing"

	"github.com/hadithlab/rawi/internal/extract"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Collections) == 0 {
		t.Error("expected default collections")
	}
	if cfg.Refine.APIKey != "${OPENAI_API_KEY}" {
		t.Error("expected refine API key placeholder")
	}
	if cfg.Defaults.MaxWorkers <= 0 {
		t.Error("expected positive max workers default")
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Run("resolves environment variable", func(t *testing.T) {
		os.Setenv("TEST_API_KEY", "secret123")
		defer os.Unsetenv("TEST_API_KEY")

		result := ResolveEnvVars("${TEST_API_KEY}")
		if result != "secret123" {
			t.Errorf("expected secret123, got %s", result)
		}
	})

	t.Run("returns empty for missing env var", func(t *testing.T) {
		result := ResolveEnvVars("${DEFINITELY_NOT_SET_12345}")
		if result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})

	t.Run("leaves literal values unchanged", func(t *testing.T) {
		result := ResolveEnvVars("literal-value")
		if result != "literal-value" {
			t.Errorf("expected literal-value, got %s", result)
		}
	})
}

func TestCollectionCfg_ProfileDefaults(t *testing.T) {
	cfg := CollectionCfg{Grammar: "ordinal"}
	p := cfg.Profile()

	if p.Grammar != extract.GrammarOrdinal {
		t.Errorf("unexpected grammar: %s", p.Grammar)
	}
	if p.OverlapPages != 2 {
		t.Errorf("expected default overlap of 2 pages, got %d", p.OverlapPages)
	}
	if p.OrdinalPrefixLimit != 30 {
		t.Errorf("expected default prefix limit 30, got %d", p.OrdinalPrefixLimit)
	}
}

func TestCollectionCfg_ProfileOverrides(t *testing.T) {
	multi := true
	cfg := CollectionCfg{
		Grammar:            "numbered",
		OverlapPages:       3,
		TransitionCutoff:   0.5,
		ShortTextThreshold: 25,
		MultiFootnotes:     &multi,
		SectionKeywords:    []string{"فصل"},
	}
	p := cfg.Profile()

	if p.OverlapPages != 3 {
		t.Errorf("overlap override lost: %d", p.OverlapPages)
	}
	if p.TransitionCutoff != 0.5 {
		t.Errorf("cutoff override lost: %v", p.TransitionCutoff)
	}
	if p.ShortTextThreshold != 25 {
		t.Errorf("threshold override lost: %d", p.ShortTextThreshold)
	}
	if !p.MultiFootnotes {
		t.Error("multi footnotes override lost")
	}
	if len(p.SectionKeywords) != 1 || p.SectionKeywords[0] != "فصل" {
		t.Errorf("section keywords override lost: %v", p.SectionKeywords)
	}
	// Untouched fields keep grammar defaults.
	if p.ItemLookahead != 500 {
		t.Errorf("default lookahead lost: %d", p.ItemLookahead)
	}
}

func TestConfig_GetCollection(t *testing.T) {
	cfg := DefaultConfig()
	if _, ok := cfg.GetCollection("musnad"); !ok {
		t.Error("expected musnad collection")
	}
	if _, ok := cfg.GetCollection("missing"); ok {
		t.Error("did not expect missing collection")
	}
}
