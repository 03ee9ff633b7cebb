package home

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("with explicit path", func(t *testing.T) {
		dir, err := New("/tmp/test-rawi")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir.Path() != "/tmp/test-rawi" {
			t.Errorf("expected path /tmp/test-rawi, got %s", dir.Path())
		}
	})

	t.Run("with empty path uses default", func(t *testing.T) {
		dir, err := New("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, DefaultDirName)
		if dir.Path() != expected {
			t.Errorf("expected path %s, got %s", expected, dir.Path())
		}
	})
}

func TestDir_Paths(t *testing.T) {
	dir, _ := New("/tmp/test-rawi")

	t.Run("CollectionsPath", func(t *testing.T) {
		expected := "/tmp/test-rawi/collections"
		if dir.CollectionsPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.CollectionsPath())
		}
	})

	t.Run("ConfigPath", func(t *testing.T) {
		expected := "/tmp/test-rawi/config.yaml"
		if dir.ConfigPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.ConfigPath())
		}
	})

	t.Run("ChunksDir", func(t *testing.T) {
		expected := "/tmp/test-rawi/collections/musnad/chunks"
		if dir.ChunksDir("musnad") != expected {
			t.Errorf("expected %s, got %s", expected, dir.ChunksDir("musnad"))
		}
	})
}

func TestDir_EnsureExists(t *testing.T) {
	tmpDir := t.TempDir()
	rawiDir := filepath.Join(tmpDir, "rawi-test")

	dir, err := New(rawiDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir.Exists() {
		t.Error("directory should not exist yet")
	}
	if err := dir.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}
	if !dir.Exists() {
		t.Error("directory should exist after EnsureExists")
	}
	if _, err := os.Stat(dir.CollectionsPath()); err != nil {
		t.Errorf("collections directory not created: %v", err)
	}
}

func TestDir_EnsureCollectionDirs(t *testing.T) {
	dir, err := New(filepath.Join(t.TempDir(), "rawi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := dir.EnsureCollectionDirs("arbain"); err != nil {
		t.Fatalf("EnsureCollectionDirs failed: %v", err)
	}
	for _, p := range []string{
		dir.ChunksDir("arbain"),
		dir.OriginalsDir("arbain"),
		dir.PagesDir("arbain"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s not created: %v", p, err)
		}
	}
}
