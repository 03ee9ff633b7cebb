// Package ingest prepares a collection for extraction: it maps multi-volume
// source PDFs to a global page numbering and packs per-page text files into
// overlapping chunk inputs.
package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/hadithlab/rawi/internal/chunkstore"
	"github.com/hadithlab/rawi/internal/home"
	"github.com/hadithlab/rawi/internal/types"
)

// Volume is one source PDF with its position in the collection's global
// page numbering. GlobalFrom and GlobalTo are inclusive.
type Volume struct {
	Path       string `json:"path"`
	Number     int    `json:"number"`
	PageCount  int    `json:"pageCount"`
	GlobalFrom int    `json:"globalFrom"`
	GlobalTo   int    `json:"globalTo"`
}

var volumeSuffixRe = regexp.MustCompile(`-(\d+)\.pdf$`)

// ScanVolumes finds the PDFs in a collection's originals directory, orders
// them by numeric suffix (vol-1.pdf, vol-2.pdf, ...) and assigns cumulative
// global page ranges starting at page 1.
func ScanVolumes(dir string) ([]Volume, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read originals dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no PDF files in %s", dir)
	}
	sortPDFsByNumber(paths)

	volumes := make([]Volume, 0, len(paths))
	next := 1
	for i, p := range paths {
		count, err := pageCount(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		volumes = append(volumes, Volume{
			Path:       p,
			Number:     i + 1,
			PageCount:  count,
			GlobalFrom: next,
			GlobalTo:   next + count - 1,
		})
		next += count
	}
	return volumes, nil
}

// FindVolumeForPage resolves a global page number to its volume and the
// page's position within that volume's PDF (1-based).
func FindVolumeForPage(volumes []Volume, page int) (Volume, int, bool) {
	for _, v := range volumes {
		if page >= v.GlobalFrom && page <= v.GlobalTo {
			return v, page - v.GlobalFrom + 1, true
		}
	}
	return Volume{}, 0, false
}

func pageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()
	count, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count: %w", err)
	}
	return count, nil
}

// sortPDFsByNumber orders paths by their numeric suffix in place. Paths
// without a suffix sort first, alphabetically.
func sortPDFsByNumber(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		mi := volumeSuffixRe.FindStringSubmatch(paths[i])
		mj := volumeSuffixRe.FindStringSubmatch(paths[j])
		if len(mi) > 1 && len(mj) > 1 {
			ni, _ := strconv.Atoi(mi[1])
			nj, _ := strconv.Atoi(mj[1])
			return ni < nj
		}
		if len(mi) > 1 {
			return false
		}
		if len(mj) > 1 {
			return true
		}
		return paths[i] < paths[j]
	})
}

var pageFileRe = regexp.MustCompile(`^page_(\d{4})\.txt$`)

// CollectPages reads the per-page text files of a collection. Page numbers
// come from the file names and need not be contiguous.
func CollectPages(dir string, volumes []Volume) ([]types.Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages dir: %w", err)
	}

	var pages []types.Page
	for _, e := range entries {
		m := pageFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", e.Name(), err)
		}
		page := types.Page{
			PageNumber:   num,
			ContentPlain: string(data),
		}
		if v, inVol, ok := FindVolumeForPage(volumes, num); ok {
			page.VolumeNumber = v.Number
			page.PrintedPageNumber = inVol
		}
		pages = append(pages, page)
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].PageNumber < pages[j].PageNumber
	})
	return pages, nil
}

// BuildChunks packs pages into chunks of chunkSize pages. Each chunk after
// the first repeats the previous chunk's last overlap pages, so markers cut
// by a chunk boundary are seen whole by the following chunk.
func BuildChunks(pages []types.Page, chunkSize, overlap int) ([]types.Chunk, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if overlap < 0 || overlap >= chunkSize {
		return nil, fmt.Errorf("overlap %d must be in [0, %d)", overlap, chunkSize)
	}
	if len(pages) == 0 {
		return nil, nil
	}

	step := chunkSize - overlap
	var chunks []types.Chunk
	for start := 0; ; start += step {
		end := start + chunkSize
		if end > len(pages) {
			end = len(pages)
		}
		window := pages[start:end]
		chunks = append(chunks, types.Chunk{
			ChunkID:   len(chunks),
			PagesFrom: window[0].PageNumber,
			PagesTo:   window[len(window)-1].PageNumber,
			Pages:     window,
		})
		if end == len(pages) {
			break
		}
	}
	return chunks, nil
}

// Request holds the parameters of one ingest run.
type Request struct {
	Collection string
	ChunkSize  int
	Overlap    int
	Logger     *slog.Logger
}

// Result summarizes a completed ingest run.
type Result struct {
	Collection string   `json:"collection"`
	Volumes    []Volume `json:"volumes"`
	Pages      int      `json:"pages"`
	Chunks     int      `json:"chunks"`
}

// Ingest scans a collection's originals, collects its page text and writes
// chunk inputs into the collection's chunk directory. Existing chunk files
// are overwritten.
func Ingest(h *home.Dir, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}
	if req.Collection == "" {
		return nil, fmt.Errorf("collection name is required")
	}
	if req.ChunkSize <= 0 {
		req.ChunkSize = 10
	}
	if err := h.EnsureCollectionDirs(req.Collection); err != nil {
		return nil, fmt.Errorf("failed to create collection directories: %w", err)
	}

	// Volumes are optional: a collection may arrive as page text only.
	volumes, err := ScanVolumes(h.OriginalsDir(req.Collection))
	if err != nil {
		log.Debug("no volume PDFs found", "collection", req.Collection, "error", err)
		volumes = nil
	}

	pages, err := CollectPages(h.PagesDir(req.Collection), volumes)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no page text files in %s", h.PagesDir(req.Collection))
	}

	chunks, err := BuildChunks(pages, req.ChunkSize, req.Overlap)
	if err != nil {
		return nil, err
	}

	store, err := chunkstore.New(h.ChunksDir(req.Collection))
	if err != nil {
		return nil, err
	}
	for _, c := range chunks {
		if err := store.WriteChunk(c); err != nil {
			return nil, err
		}
	}

	log.Info("ingest complete",
		"collection", req.Collection,
		"volumes", len(volumes),
		"pages", len(pages),
		"chunks", len(chunks),
	)
	return &Result{
		Collection: req.Collection,
		Volumes:    volumes,
		Pages:      len(pages),
		Chunks:     len(chunks),
	}, nil
}
