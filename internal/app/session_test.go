package app

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-bezier-editor/internal/component"
	"go-bezier-editor/internal/config"
	"go-bezier-editor/internal/input"
	"go-bezier-editor/internal/surface"
)

func TestSessionWiring(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(config.Default(), component.Viewport{WidthPx: 800, HeightPx: 600, DPR: 1}, log.New(&buf, "", 0))

	rec := surface.NewRecorder()
	if !s.Loop.Frame(rec) {
		t.Fatal("first frame must draw")
	}
	s.Editor.Handle(input.PointerEvent{X: 400, Y: 100, Phase: input.PhaseDown})
	if !s.Loop.Dirty() {
		t.Error("point creation should invalidate the loop")
	}
	if !strings.Contains(buf.String(), "PointCreated: CP1") {
		t.Errorf("log = %q", buf.String())
	}
	if got := s.Status(); !strings.HasPrefix(got, "one control point | quadratic") {
		t.Errorf("Status() = %q", got)
	}
}

func TestLoadSettings(t *testing.T) {
	got, err := LoadSettings("")
	if err != nil || got != config.Default() {
		t.Fatalf("LoadSettings(\"\") = %+v, %v", got, err)
	}

	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"drag_region": 30}`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.DragRegion != 30 || got.PointRadius != config.PointRadius {
		t.Errorf("LoadSettings = %+v", got)
	}

	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
