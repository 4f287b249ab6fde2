package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Decode(DefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("embedded yaml should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded yaml differs from DefaultConfig:\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, DefaultConfig(), format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			cfg, err := Decode(buf.Bytes(), format)
			if err != nil {
				t.Fatalf("Decode: %v\n%s", err, buf.String())
			}
			if !reflect.DeepEqual(cfg, DefaultConfig()) {
				t.Errorf("round trip changed config:\n got %+v\nwant %+v", cfg, DefaultConfig())
			}
		})
	}
}

func TestDecodePartialOverride(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"yaml", FormatYAML, "gameplay:\n  lives: 2\n"},
		{"toml", FormatTOML, "[gameplay]\nlives = 2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Decode([]byte(tc.data), tc.format)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if cfg.Gameplay.Lives != 2 {
				t.Errorf("lives = %d, want 2", cfg.Gameplay.Lives)
			}
			if cfg.Board.Rows != 5 || cfg.Paddle.Width != 120 {
				t.Error("fields not in the file should keep their defaults")
			}
		})
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	cfg, err := Decode(nil, FormatYAML)
	if err != nil {
		t.Fatalf("empty yaml should decode to defaults: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("empty yaml should yield defaults")
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	if _, err := Decode([]byte("paddle:\n  wdith: 10\n"), FormatYAML); err == nil {
		t.Error("yaml with unknown key should fail")
	}
	_, err := Decode([]byte("[paddle]\nwdith = 10\n"), FormatTOML)
	if err == nil || !strings.Contains(err.Error(), "paddle.wdith") {
		t.Errorf("toml with unknown key should name it, got %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a/blockbreaker.yaml", FormatYAML, false},
		{"blockbreaker.yml", FormatYAML, false},
		{"BLOCKBREAKER.TOML", FormatTOML, false},
		{"blockbreaker.json", "", true},
		{"blockbreaker", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, err := FormatFromPath(tc.path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tc.path, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tc.path, got, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[ball]\nspeed = 7.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if cfg.Ball.Speed != 7.5 {
		t.Errorf("ball speed = %v, want 7.5", cfg.Ball.Speed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.yaml")
	if _, _, err := Load(missing, nil); err == nil {
		t.Error("missing custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  rows: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(invalid, nil)
	if err == nil || !strings.Contains(err.Error(), "invalid") {
		t.Errorf("invalid custom config should fail validation, got %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, source, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, want %q", source, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("embedded config should equal defaults")
	}
}

func TestLoadSearchesLocalConfigs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "blockbreaker.yaml"), []byte("gameplay:\n  lives: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != filepath.Join("configs", "blockbreaker.yaml") {
		t.Errorf("source = %q", source)
	}
	if cfg.Gameplay.Lives != 1 {
		t.Errorf("lives = %d, want 1", cfg.Gameplay.Lives)
	}
}

func TestLoadWarnsAboutBrokenSearchPathConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join("configs", "blockbreaker.yaml")
	if err := os.WriteFile(broken, []byte("gameplay:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cfg, source, err := Load("", log.New(&buf))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != SourceEmbedded || !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("broken file should fall back to embedded defaults, source = %q", source)
	}
	out := buf.String()
	if !strings.Contains(out, "skipping config file") || !strings.Contains(out, broken) || !strings.Contains(out, "lives") {
		t.Errorf("warning should name the file and the problem, got %q", out)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero rows", func(c *Config) { c.Board.Rows = 0 }, "at least one row"},
		{"empty palette", func(c *Config) { c.Board.Palette = nil }, "palette must not be empty"},
		{"bad palette color", func(c *Config) { c.Board.Palette[2] = "yellow" }, "palette[2]"},
		{"grid too wide", func(c *Config) { c.Board.Cols = 9 }, "wider than the screen"},
		{"empty launch set", func(c *Config) { c.Ball.LaunchDX = nil }, "launch_dx"},
		{"paddle too wide", func(c *Config) { c.Paddle.Width = 900 }, "exceeds screen width"},
		{"no lives", func(c *Config) { c.Gameplay.Lives = 0 }, "lives must be positive"},
		{"too many lives", func(c *Config) { c.Gameplay.Lives = MaxLives + 1 }, "lives must be at most 3"},
		{"bad theme", func(c *Config) { c.Theme.Accent = "#12" }, "theme accent"},
		{"zero fps", func(c *Config) { c.Screen.FPS = 0 }, "fps"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gameplay.Lives = 0
	cfg.Ball.Radius = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "lives") || !strings.Contains(err.Error(), "radius") {
		t.Errorf("both problems should be reported, got %q", err)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		width  float64
		speed  float64
	}{
		{DifficultyEasy, 3, 160, 4},
		{DifficultyNormal, 3, 120, 5},
		{DifficultyHard, 2, 90, 6.5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives || cfg.Paddle.Width != tc.width || cfg.Ball.Speed != tc.speed {
				t.Errorf("preset %s gave lives=%d width=%v speed=%v", tc.preset, cfg.Gameplay.Lives, cfg.Paddle.Width, cfg.Ball.Speed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s should stay valid: %v", tc.preset, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) unexpected error: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}
