package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const commentedConfig = `# my tweaked glint setup
window:
  # anchored to the corner
  anchor: top right
  margin_top: 20
  margin_right: 20

clock:
  face: analogue # I like hands
  diameter: 200
`

func TestSaveMargins_PreservesOtherFieldsAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(commentedConfig), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := SaveMargins(path, 5, 0, 7, 3); err != nil {
		t.Fatalf("save margins: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(data)

	for _, want := range []string{"margin_top: 5", "margin_right: 0", "margin_bottom: 7", "margin_left: 3"} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in:\n%s", want, text)
		}
	}
	if !strings.Contains(text, "# my tweaked glint setup") || !strings.Contains(text, "# anchored to the corner") {
		t.Fatalf("comments were dropped:\n%s", text)
	}
	if !strings.Contains(text, "face: analogue") || !strings.Contains(text, "diameter: 200") {
		t.Fatalf("unrelated fields were disturbed:\n%s", text)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.Window.MarginTop != 5 || cfg.Window.MarginLeft != 3 {
		t.Fatalf("written margins do not load back: %+v", cfg.Window)
	}
}

func TestSaveOutput_AddsMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(commentedConfig), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := SaveOutput(path, "DP-2"); err != nil {
		t.Fatalf("save output: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.Window.Output != "DP-2" {
		t.Fatalf("output not persisted, got %q", cfg.Window.Output)
	}
}

func TestSaveAnchor_UpdatesInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(commentedConfig), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := SaveAnchor(path, "top left"); err != nil {
		t.Fatalf("save anchor: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.Window.Anchor != "top left" {
		t.Fatalf("anchor not persisted, got %q", cfg.Window.Anchor)
	}
}

func TestSaveMargins_EmptyFileGrowsWindowSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := SaveMargins(path, 1, 2, 3, 4); err != nil {
		t.Fatalf("save margins: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.Window.MarginRight != 2 || cfg.Window.MarginLeft != 4 {
		t.Fatalf("margins not written to empty file: %+v", cfg.Window)
	}
}
