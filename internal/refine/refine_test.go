package refine

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hadithlab/rawi/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNeedsRefinement(t *testing.T) {
	tests := []struct {
		name string
		unit types.Unit
		want bool
	}{
		{
			name: "no chain and real content",
			unit: types.Unit{ContentText: "قال رسول الله كذا وكذا"},
			want: true,
		},
		{
			name: "chain already split",
			unit: types.Unit{ChainText: "حدثنا يحيى", ContentText: "إنما الأعمال بالنيات"},
			want: false,
		},
		{
			name: "cross reference only",
			unit: types.Unit{ContentText: "مثله", IsCrossReferenceOnly: true},
			want: false,
		},
		{
			name: "empty content",
			unit: types.Unit{},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsRefinement(tt.unit); got != tt.want {
				t.Fatalf("NeedsRefinement = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidSplit(t *testing.T) {
	original := "حدثنا يحيى قال سمعت رسول الله"

	if !validSplit(original, splitResult{
		ChainText:   "حدثنا يحيى",
		ContentText: "قال سمعت رسول الله",
	}) {
		t.Fatal("exact re-split rejected")
	}
	if !validSplit(original, splitResult{
		ChainText:   "",
		ContentText: original,
	}) {
		t.Fatal("no-chain answer rejected")
	}
	if validSplit(original, splitResult{
		ChainText:   "حدثنا يحيى",
		ContentText: "نص آخر تماما",
	}) {
		t.Fatal("fabricated content accepted")
	}
	if validSplit(original, splitResult{ChainText: original}) {
		t.Fatal("empty content accepted")
	}
}

func chatServer(t *testing.T, answer string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"id":     "cmpl-test",
			"object": "chat.completion",
			"choices": []map[string]any{{
				"index":   0,
				"message": map[string]any{"role": "assistant", "content": answer},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
}

func TestRefineUnitAppliesModelSplit(t *testing.T) {
	content := "حدثنا أبو بكر قال قال رسول الله إنما الأعمال بالنيات"
	model, err := json.Marshal(splitResult{
		ChainText:   "حدثنا أبو بكر",
		ContentText: "قال قال رسول الله إنما الأعمال بالنيات",
	})
	if err != nil {
		t.Fatal(err)
	}
	srv := chatServer(t, string(model))
	defer srv.Close()

	r, err := New(Config{APIKey: "test", BaseURL: srv.URL, RateLimit: 1000}, testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := r.RefineUnit(context.Background(), types.Unit{UnitNumber: "١", ContentText: content})
	if err != nil {
		t.Fatalf("RefineUnit: %v", err)
	}
	if out.ChainText != "حدثنا أبو بكر" {
		t.Fatalf("ChainText = %q", out.ChainText)
	}
	if out.ContentText != "قال قال رسول الله إنما الأعمال بالنيات" {
		t.Fatalf("ContentText = %q", out.ContentText)
	}
}

func TestRefineUnitDiscardsBadSplit(t *testing.T) {
	srv := chatServer(t, `{"chainText": "سند مخترع", "contentText": "متن مخترع"}`)
	defer srv.Close()

	r, err := New(Config{APIKey: "test", BaseURL: srv.URL, RateLimit: 1000}, testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in := types.Unit{UnitNumber: "٢", ContentText: "النص الأصلي كما ورد"}
	out, err := r.RefineUnit(context.Background(), in)
	if err != nil {
		t.Fatalf("RefineUnit: %v", err)
	}
	if out.ChainText != "" || out.ContentText != in.ContentText {
		t.Fatalf("bad split applied: %+v", out)
	}
}

func TestRefineChunkOnlyTouchesFlaggedUnits(t *testing.T) {
	model, _ := json.Marshal(splitResult{
		ChainText:   "حدثنا سفيان",
		ContentText: "عن الزهري بهذا",
	})
	srv := chatServer(t, string(model))
	defer srv.Close()

	r, err := New(Config{APIKey: "test", BaseURL: srv.URL, RateLimit: 1000}, testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ec := types.ExtractedChunk{
		ChunkID: 3,
		Units: []types.Unit{
			{UnitNumber: "١", ChainText: "حدثنا مالك", ContentText: "نص مكتمل"},
			{UnitNumber: "٢", ContentText: "حدثنا سفيان عن الزهري بهذا"},
		},
	}
	out, refined, err := r.RefineChunk(context.Background(), ec)
	if err != nil {
		t.Fatalf("RefineChunk: %v", err)
	}
	if refined != 1 {
		t.Fatalf("refined = %d, want 1", refined)
	}
	if out.Units[0].ChainText != "حدثنا مالك" {
		t.Fatalf("untouched unit changed: %+v", out.Units[0])
	}
	if out.Units[1].ChainText != "حدثنا سفيان" {
		t.Fatalf("flagged unit not refined: %+v", out.Units[1])
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}, testLogger()); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
