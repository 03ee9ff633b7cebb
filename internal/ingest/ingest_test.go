package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hadithlab/rawi/internal/chunkstore"
	"github.com/hadithlab/rawi/internal/home"
	"github.com/hadithlab/rawi/internal/types"
)

func TestSortPDFsByNumber(t *testing.T) {
	paths := []string{"vol-10.pdf", "vol-2.pdf", "intro.pdf", "vol-1.pdf"}
	sortPDFsByNumber(paths)
	want := []string{"intro.pdf", "vol-1.pdf", "vol-2.pdf", "vol-10.pdf"}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("paths = %v, want %v", paths, want)
		}
	}
}

func TestFindVolumeForPage(t *testing.T) {
	volumes := []Volume{
		{Number: 1, PageCount: 100, GlobalFrom: 1, GlobalTo: 100},
		{Number: 2, PageCount: 50, GlobalFrom: 101, GlobalTo: 150},
	}

	v, inVol, ok := FindVolumeForPage(volumes, 1)
	if !ok || v.Number != 1 || inVol != 1 {
		t.Fatalf("page 1: vol=%d inVol=%d ok=%v", v.Number, inVol, ok)
	}
	v, inVol, ok = FindVolumeForPage(volumes, 100)
	if !ok || v.Number != 1 || inVol != 100 {
		t.Fatalf("page 100: vol=%d inVol=%d ok=%v", v.Number, inVol, ok)
	}
	v, inVol, ok = FindVolumeForPage(volumes, 101)
	if !ok || v.Number != 2 || inVol != 1 {
		t.Fatalf("page 101: vol=%d inVol=%d ok=%v", v.Number, inVol, ok)
	}
	if _, _, ok := FindVolumeForPage(volumes, 151); ok {
		t.Fatal("page 151 should be out of range")
	}
}

func pagesN(n int) []types.Page {
	pages := make([]types.Page, n)
	for i := range pages {
		pages[i] = types.Page{PageNumber: i + 1, ContentPlain: fmt.Sprintf("صفحة %d", i+1)}
	}
	return pages
}

func TestBuildChunksOverlap(t *testing.T) {
	chunks, err := BuildChunks(pagesN(25), 10, 2)
	if err != nil {
		t.Fatalf("BuildChunks: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}

	// Each chunk starts 2 pages before the previous one ended.
	wantRanges := [][2]int{{1, 10}, {9, 18}, {17, 25}}
	for i, c := range chunks {
		if c.ChunkID != i {
			t.Fatalf("chunk %d has id %d", i, c.ChunkID)
		}
		if c.PagesFrom != wantRanges[i][0] || c.PagesTo != wantRanges[i][1] {
			t.Fatalf("chunk %d range = [%d, %d], want %v", i, c.PagesFrom, c.PagesTo, wantRanges[i])
		}
	}
}

func TestBuildChunksNoOverlap(t *testing.T) {
	chunks, err := BuildChunks(pagesN(5), 2, 0)
	if err != nil {
		t.Fatalf("BuildChunks: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if last := chunks[2]; last.PagesFrom != 5 || last.PagesTo != 5 {
		t.Fatalf("trailing chunk range = [%d, %d]", last.PagesFrom, last.PagesTo)
	}
}

func TestBuildChunksRejectsBadOverlap(t *testing.T) {
	if _, err := BuildChunks(pagesN(5), 2, 2); err == nil {
		t.Fatal("overlap equal to chunk size should be rejected")
	}
	if _, err := BuildChunks(pagesN(5), 0, 0); err == nil {
		t.Fatal("zero chunk size should be rejected")
	}
}

func TestCollectPagesSortsAndAnnotates(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []int{3, 1, 2} {
		name := filepath.Join(dir, fmt.Sprintf("page_%04d.txt", n))
		if err := os.WriteFile(name, []byte(fmt.Sprintf("نص %d", n)), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// Non-page files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	volumes := []Volume{{Number: 1, PageCount: 2, GlobalFrom: 1, GlobalTo: 2}}
	pages, err := CollectPages(dir, volumes)
	if err != nil {
		t.Fatalf("CollectPages: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	for i, p := range pages {
		if p.PageNumber != i+1 {
			t.Fatalf("pages out of order: %+v", pages)
		}
	}
	if pages[1].VolumeNumber != 1 || pages[1].PrintedPageNumber != 2 {
		t.Fatalf("page 2 volume annotation: %+v", pages[1])
	}
	// Page 3 falls outside the volume range and stays unannotated.
	if pages[2].VolumeNumber != 0 {
		t.Fatalf("page 3 should have no volume: %+v", pages[2])
	}
}

func TestIngestWritesReadableChunks(t *testing.T) {
	h, err := home.New(t.TempDir())
	if err != nil {
		t.Fatalf("home.New: %v", err)
	}
	if err := h.EnsureCollectionDirs("musnad"); err != nil {
		t.Fatalf("EnsureCollectionDirs: %v", err)
	}
	for n := 1; n <= 4; n++ {
		name := filepath.Join(h.PagesDir("musnad"), fmt.Sprintf("page_%04d.txt", n))
		if err := os.WriteFile(name, []byte(fmt.Sprintf("نص الصفحة %d", n)), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	res, err := Ingest(h, Request{Collection: "musnad", ChunkSize: 2, Overlap: 1})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if res.Pages != 4 || res.Chunks != 3 {
		t.Fatalf("result = %+v", res)
	}

	store, err := chunkstore.New(h.ChunksDir("musnad"))
	if err != nil {
		t.Fatalf("chunkstore.New: %v", err)
	}
	ids, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("ids = %v", ids)
	}
	// Written chunks must pass the store's schema validation on read back.
	c, err := store.ReadChunk(1)
	if err != nil {
		t.Fatalf("ReadChunk(1): %v", err)
	}
	if c.PagesFrom != 2 || c.PagesTo != 3 {
		t.Fatalf("chunk 1 range = [%d, %d]", c.PagesFrom, c.PagesTo)
	}
}
