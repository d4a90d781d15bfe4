package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParsePong(DefaultYAML())
	if err != nil {
		t.Fatalf("ParsePong(embedded) failed: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded YAML differs from DefaultPongConfig():\n%+v\n%+v", cfg, DefaultPongConfig())
	}
}

func TestParsePongPartialOverride(t *testing.T) {
	cfg, err := ParsePong([]byte("computer:\n  speed: 7\n"))
	if err != nil {
		t.Fatalf("ParsePong() failed: %v", err)
	}
	if cfg.Computer.Speed != 7 {
		t.Errorf("Computer.Speed = %g, expected 7", cfg.Computer.Speed)
	}
	if cfg.Computer.DeadZone != 15 {
		t.Errorf("DeadZone should keep default 15, got %g", cfg.Computer.DeadZone)
	}
	if cfg.Surface.Width != 800 {
		t.Errorf("Surface.Width should keep default 800, got %g", cfg.Surface.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PongConfig)
		wantErr string
	}{
		{"defaults", func(*PongConfig) {}, ""},
		{"zero surface", func(c *PongConfig) { c.Surface.Width = 0 }, "surface must be positive"},
		{"tall paddle", func(c *PongConfig) { c.Paddles.Height = 700 }, "exceeds surface height"},
		{"huge ball", func(c *PongConfig) { c.Ball.Radius = 400 }, "ball radius"},
		{"negative speed", func(c *PongConfig) { c.Computer.Speed = -1 }, "must not be negative"},
		{"negative trail", func(c *PongConfig) { c.Effects.TrailLength = -1 }, "trail length"},
		{"no key hold", func(c *PongConfig) { c.Input.KeyHoldFrames = 0 }, "key hold frames"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadPongCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	if err := os.WriteFile(path, []byte("paddles:\n  height: 80\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Paddles.Height != 80 {
		t.Errorf("Paddles.Height = %g, expected 80", cfg.Paddles.Height)
	}
}

func TestLoadPongErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPong(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadPong() with a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("surface: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(bad); err == nil {
		t.Error("LoadPong() with malformed YAML should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultPongConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "dead_zone: 15") {
		t.Errorf("Marshal() output missing dead_zone:\n%s", data)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		speed, zone float64
	}{
		{"", 4, 15},
		{DifficultyNormal, 4, 15},
		{DifficultyEasy, 3, 25},
		{DifficultyHard, 5.5, 8},
	}

	for _, tc := range tests {
		cfg := DefaultPongConfig()
		ApplyPongPreset(&cfg, tc.preset)
		if cfg.Computer.Speed != tc.speed || cfg.Computer.DeadZone != tc.zone {
			t.Errorf("preset %q: speed=%g zone=%g, expected %g/%g",
				tc.preset, cfg.Computer.Speed, cfg.Computer.DeadZone, tc.speed, tc.zone)
		}
	}

	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
}

func TestExpandHome(t *testing.T) {
	path, err := ExpandHome("/tmp/x.db")
	if err != nil || path != "/tmp/x.db" {
		t.Errorf("ExpandHome(absolute) = %q, %v", path, err)
	}
	path, err = ExpandHome("~/x.db")
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if strings.HasPrefix(path, "~") {
		t.Errorf("ExpandHome(~/x.db) = %q, expected expansion", path)
	}
}
