package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the rawi home directory.
	DefaultDirName = ".rawi"

	// CollectionsDirName is the subdirectory holding per-collection data.
	CollectionsDirName = "collections"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
)

// Dir represents the rawi home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.rawi).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// CollectionsPath returns the path to the collections directory.
func (d *Dir) CollectionsPath() string {
	return filepath.Join(d.path, CollectionsDirName)
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// EnsureExists creates the home directory and subdirectories if they don't exist.
func (d *Dir) EnsureExists() error {
	// Creating the collections directory also creates the parent.
	if err := os.MkdirAll(d.CollectionsPath(), 0o755); err != nil {
		return fmt.Errorf("failed to create collections directory: %w", err)
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}

// CollectionDir returns the root directory for a collection.
func (d *Dir) CollectionDir(collection string) string {
	return filepath.Join(d.CollectionsPath(), collection)
}

// ChunksDir returns the directory holding a collection's chunk files.
func (d *Dir) ChunksDir(collection string) string {
	return filepath.Join(d.CollectionDir(collection), "chunks")
}

// OriginalsDir returns the directory for a collection's source PDF volumes.
func (d *Dir) OriginalsDir(collection string) string {
	return filepath.Join(d.CollectionDir(collection), "originals")
}

// PagesDir returns the directory for a collection's per-page text files.
func (d *Dir) PagesDir(collection string) string {
	return filepath.Join(d.CollectionDir(collection), "pages")
}

// EnsureCollectionDirs creates a collection's directory tree.
func (d *Dir) EnsureCollectionDirs(collection string) error {
	for _, dir := range []string{
		d.ChunksDir(collection),
		d.OriginalsDir(collection),
		d.PagesDir(collection),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
