// Package chunkstore reads and writes a collection's page-chunk files. Input
// chunks are JSON files named by zero-padded chunk index, produced by the
// export step with a configurable page overlap; extracted output is written
// alongside with a distinct suffix, in the format the database importer
// consumes unchanged.
package chunkstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hadithlab/rawi/internal/types"
)

//go:embed schemas/chunk.schema.json
var chunkSchemaJSON []byte

// chunkFileRe matches input chunk filenames: chunk_0001.json.
var chunkFileRe = regexp.MustCompile(`^chunk_(\d{4})\.json$`)

// extractedFileRe matches extraction output filenames: chunk_0001.extracted.json.
var extractedFileRe = regexp.MustCompile(`^chunk_(\d{4})\.extracted\.json$`)

// Store gives access to one collection's chunk directory.
type Store struct {
	dir    string
	schema *jsonschema.Schema
}

// New creates a store rooted at dir and compiles the chunk input schema.
func New(dir string) (*Store, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("chunk.schema.json", bytes.NewReader(chunkSchemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to load chunk schema: %w", err)
	}
	schema, err := compiler.Compile("chunk.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile chunk schema: %w", err)
	}
	return &Store{dir: dir, schema: schema}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// List returns the ids of all input chunks in the directory, ascending.
// Chunks must be processed in this order: the carry state fold has a hard
// data dependency between consecutive chunks.
func (s *Store) List() ([]int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read chunk directory: %w", err)
	}

	var ids []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := chunkFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// ListExtracted returns the ids of all chunks with extraction output,
// ascending.
func (s *Store) ListExtracted() ([]int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read chunk directory: %w", err)
	}

	var ids []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := extractedFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// ReadChunk loads and validates one input chunk. A chunk that fails schema
// validation is structurally invalid input: fatal for the collection's run,
// since the computation is deterministic and retrying cannot change the
// outcome.
func (s *Store) ReadChunk(id int) (types.Chunk, error) {
	var chunk types.Chunk

	data, err := os.ReadFile(s.ChunkPath(id))
	if err != nil {
		return chunk, fmt.Errorf("failed to read chunk %d: %w", id, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return chunk, fmt.Errorf("chunk %d is not valid JSON: %w", id, err)
	}
	if err := s.schema.Validate(raw); err != nil {
		return chunk, fmt.Errorf("chunk %d failed schema validation: %w", id, err)
	}

	if err := json.Unmarshal(data, &chunk); err != nil {
		return chunk, fmt.Errorf("failed to decode chunk %d: %w", id, err)
	}
	if chunk.ChunkID != id {
		return chunk, fmt.Errorf("chunk file %d declares chunkId %d", id, chunk.ChunkID)
	}
	return chunk, nil
}

// WriteChunk persists one chunk input file. Used by the ingest step that
// packs page text into chunks.
func (s *Store) WriteChunk(chunk types.Chunk) error {
	data, err := json.MarshalIndent(chunk, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal chunk %d: %w", chunk.ChunkID, err)
	}
	path := s.ChunkPath(chunk.ChunkID)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteExtracted persists one chunk's extraction output next to its input.
func (s *Store) WriteExtracted(ec types.ExtractedChunk) error {
	data, err := json.MarshalIndent(ec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal extracted chunk %d: %w", ec.ChunkID, err)
	}
	path := s.ExtractedPath(ec.ChunkID)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadExtracted loads one chunk's previously written extraction output.
func (s *Store) ReadExtracted(id int) (types.ExtractedChunk, error) {
	var ec types.ExtractedChunk
	data, err := os.ReadFile(s.ExtractedPath(id))
	if err != nil {
		return ec, fmt.Errorf("failed to read extracted chunk %d: %w", id, err)
	}
	if err := json.Unmarshal(data, &ec); err != nil {
		return ec, fmt.Errorf("failed to decode extracted chunk %d: %w", id, err)
	}
	return ec, nil
}

// ChunkPath returns the input path for a chunk id.
func (s *Store) ChunkPath(id int) string {
	return filepath.Join(s.dir, fmt.Sprintf("chunk_%04d.json", id))
}

// ExtractedPath returns the output path for a chunk id.
func (s *Store) ExtractedPath(id int) string {
	return filepath.Join(s.dir, fmt.Sprintf("chunk_%04d.extracted.json", id))
}
