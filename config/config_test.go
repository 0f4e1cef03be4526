package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"sudoku/view"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultViewYAML)
	if err != nil {
		t.Fatalf("Parse(default) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestDefaultViewSettings(t *testing.T) {
	got := Default().ViewSettings()
	if got != view.DefaultSettings() {
		t.Errorf("ViewSettings() = %+v, expected %+v", got, view.DefaultSettings())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".sudoku")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "view.yaml"), []byte("window:\n  title: Mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Window.Title != "Mine" {
		t.Errorf("Window.Title = %q, expected %q", cfg.Window.Title, "Mine")
	}
}

func TestLoadMalformedUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".sudoku")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "view.yaml"), []byte("board: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(""); err == nil {
		t.Error("Load() with malformed user config expected error, got defaults")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
board:
  position: [0, 20]
  size: [270, 450]
  colors:
    background: [1, 1, 1, 1]
  radius:
    cell_edge: 0.5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s := cfg.ViewSettings()
	if s.Position.X != 0 || s.Position.Y != 20 {
		t.Errorf("Position = %v, expected (0, 20)", s.Position)
	}
	if s.SizeX != 270 || s.SizeY != 450 {
		t.Errorf("Size = %gx%g, expected 270x450", s.SizeX, s.SizeY)
	}
	if s.BackgroundColor != view.RGBA(1, 1, 1, 1) {
		t.Errorf("BackgroundColor = %v, expected white", s.BackgroundColor)
	}
	if s.CellEdgeRadius != 0.5 {
		t.Errorf("CellEdgeRadius = %g, expected 0.5", s.CellEdgeRadius)
	}
	// Keys not in the file keep their defaults.
	if s.SectionEdgeRadius != 2 {
		t.Errorf("SectionEdgeRadius = %g, expected 2", s.SectionEdgeRadius)
	}
	if cfg.Window.Title != "Sudoku" {
		t.Errorf("Window.Title = %q, expected default", cfg.Window.Title)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(malformed) expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  size: [0, 400]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("Load(zero size) error = %v, expected ErrInvalidSettings", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"negative position", func(c *Config) { c.Board.Position = [2]float64{-10, -10} }, true},
		{"zero width", func(c *Config) { c.Board.Size[0] = 0 }, false},
		{"negative height", func(c *Config) { c.Board.Size[1] = -1 }, false},
		{"infinite width", func(c *Config) { c.Board.Size[0] = math.Inf(1) }, false},
		{"NaN position", func(c *Config) { c.Board.Position[1] = math.NaN() }, false},
		{"negative radius", func(c *Config) { c.Board.Radius.SectionEdge = -2 }, false},
		{"zero radius", func(c *Config) { c.Board.Radius.CellEdge = 0 }, true},
		{"zero window", func(c *Config) { c.Window.Width = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)

			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() error = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() error = %v, expected ErrInvalidSettings", err)
			}
		})
	}
}
