// Package refine is the optional LLM pass over extracted units. It only
// touches units the deterministic splitter could not handle: everything
// else passes through byte-identical, so re-running refinement never
// perturbs already-good output.
package refine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/hadithlab/rawi/internal/config"
	"github.com/hadithlab/rawi/internal/types"
)

const systemPrompt = `You split classical Arabic hadith text into the isnad (narrator chain) and the matn (content). Respond with JSON only: {"chainText": "...", "contentText": "..."}. The two fields concatenated must reproduce the input text exactly, including diacritics. If there is no narrator chain, return an empty chainText and the full input as contentText.`

// Config carries the refiner's runtime settings, resolved from the main
// config file.
type Config struct {
	Model      string
	APIKey     string
	BaseURL    string
	RateLimit  float64 // requests per second
	MaxRetries int
}

// Refiner calls a chat model to split units where the deterministic
// transition-verb pass found no chain.
type Refiner struct {
	client      openai.Client
	model       string
	maxRetries  int
	minInterval time.Duration
	logger      *slog.Logger

	mu       sync.Mutex
	lastCall time.Time
}

// New creates a refiner. The API key must already be resolved.
func New(cfg Config, logger *slog.Logger) (*Refiner, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("refine: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 2.0
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Refiner{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		maxRetries:  cfg.MaxRetries,
		minInterval: time.Duration(float64(time.Second) / cfg.RateLimit),
		logger:      logger.With("component", "refine"),
	}, nil
}

// FromConfig builds a refiner from the loaded config, or returns nil when
// refinement is disabled.
func FromConfig(cfg *config.Config, logger *slog.Logger) (*Refiner, error) {
	if !cfg.Refine.Enabled {
		return nil, nil
	}
	return New(Config{
		Model:      cfg.Refine.Model,
		APIKey:     cfg.ResolveAPIKey(),
		BaseURL:    cfg.Refine.BaseURL,
		RateLimit:  cfg.Refine.RateLimit,
		MaxRetries: cfg.Refine.MaxRetries,
	}, logger)
}

// NeedsRefinement reports whether a unit should go to the model: the
// deterministic pass produced no chain and the unit is not a bare
// cross-reference.
func NeedsRefinement(u types.Unit) bool {
	return u.ChainText == "" && !u.IsCrossReferenceOnly && u.ContentText != ""
}

type splitResult struct {
	ChainText   string `json:"chainText"`
	ContentText string `json:"contentText"`
}

// RefineUnit returns the unit with chain and content re-split by the model.
// Units that do not need refinement, and model answers that fail
// validation, return the input unchanged.
func (r *Refiner) RefineUnit(ctx context.Context, u types.Unit) (types.Unit, error) {
	if !NeedsRefinement(u) {
		return u, nil
	}

	raw, err := r.complete(ctx, u.ContentText)
	if err != nil {
		return u, err
	}

	var res splitResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return u, fmt.Errorf("refine: malformed model response: %w", err)
	}
	if !validSplit(u.ContentText, res) {
		r.logger.Warn("discarding model split that does not reproduce the input",
			"unit", u.UnitNumber, "page", u.PageStart)
		return u, nil
	}

	u.ChainText = strings.TrimSpace(res.ChainText)
	u.ContentText = strings.TrimSpace(res.ContentText)
	return u, nil
}

// RefineChunk refines every flagged unit in an extracted chunk, returning
// the updated chunk and the number of units actually changed.
func (r *Refiner) RefineChunk(ctx context.Context, ec types.ExtractedChunk) (types.ExtractedChunk, int, error) {
	refined := 0
	for i, u := range ec.Units {
		if !NeedsRefinement(u) {
			continue
		}
		out, err := r.RefineUnit(ctx, u)
		if err != nil {
			return ec, refined, fmt.Errorf("unit %s: %w", u.UnitNumber, err)
		}
		if out.ChainText != "" {
			ec.Units[i] = out
			refined++
		}
	}
	return ec, refined, nil
}

func (r *Refiner) complete(ctx context.Context, text string) (string, error) {
	r.throttle()

	var answer string
	err := retry.Do(
		func() error {
			resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
				Model: r.model,
				Messages: []openai.ChatCompletionMessageParamUnion{
					openai.SystemMessage(systemPrompt),
					openai.UserMessage(text),
				},
				ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
					OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
				},
			})
			if err != nil {
				return err
			}
			if len(resp.Choices) == 0 {
				return fmt.Errorf("empty completion")
			}
			answer = resp.Choices[0].Message.Content
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(r.maxRetries)),
		retry.Delay(1*time.Second),
	)
	return answer, err
}

// throttle spaces calls at the configured rate.
func (r *Refiner) throttle() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if wait := r.minInterval - time.Since(r.lastCall); wait > 0 {
		time.Sleep(wait)
	}
	r.lastCall = time.Now()
}

// validSplit accepts a model answer only when the two parts reassemble the
// original text up to whitespace.
func validSplit(original string, res splitResult) bool {
	if strings.TrimSpace(res.ContentText) == "" {
		return false
	}
	join := func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	}
	return join(res.ChainText+" "+res.ContentText) == join(original)
}
