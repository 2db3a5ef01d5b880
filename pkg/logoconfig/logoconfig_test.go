package logoconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsHeadless(t *testing.T) {
	cfg := Default()
	if cfg.Backend != "nop" {
		t.Errorf("Default().Backend = %q, want %q", cfg.Backend, "nop")
	}
	if len(cfg.ScriptFolders) != 0 {
		t.Errorf("Default().ScriptFolders = %v, want empty", cfg.ScriptFolders)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load(missing) error = %v, want nil", err)
	}
	if cfg.Backend != "nop" {
		t.Errorf("Load(missing).Backend = %q, want %q", cfg.Backend, "nop")
	}
}

func TestLoadParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".logorc.yaml")
	content := "script_folders:\n  - ./scripts\n  - ./lib\nbackend: turtle\nundo_buffer_size: 42\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}
	if cfg.Backend != "turtle" {
		t.Errorf("Backend = %q, want %q", cfg.Backend, "turtle")
	}
	if cfg.UndoBufferSize != 42 {
		t.Errorf("UndoBufferSize = %d, want 42", cfg.UndoBufferSize)
	}
	want := []string{"./scripts", "./lib"}
	if len(cfg.ScriptFolders) != len(want) {
		t.Fatalf("ScriptFolders = %v, want %v", cfg.ScriptFolders, want)
	}
	for i, folder := range want {
		if cfg.ScriptFolders[i] != folder {
			t.Errorf("ScriptFolders[%d] = %q, want %q", i, cfg.ScriptFolders[i], folder)
		}
	}
}

func TestLoadFirstPicksFirstExistingCandidate(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "second.yaml")
	if err := os.WriteFile(second, []byte("backend: turtle\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFirst(filepath.Join(dir, "missing.yaml"), second)
	if err != nil {
		t.Fatalf("LoadFirst error = %v", err)
	}
	if cfg.Backend != "turtle" {
		t.Errorf("Backend = %q, want %q (from second candidate)", cfg.Backend, "turtle")
	}
}

func TestLoadFirstFallsBackToDefault(t *testing.T) {
	cfg, err := LoadFirst(filepath.Join(t.TempDir(), "a.yaml"), filepath.Join(t.TempDir(), "b.yaml"))
	if err != nil {
		t.Fatalf("LoadFirst error = %v", err)
	}
	if cfg.Backend != "nop" {
		t.Errorf("Backend = %q, want %q", cfg.Backend, "nop")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("backend: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load(malformed) error = nil, want an error")
	}
}
