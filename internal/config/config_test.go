package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultCatchConfig() {
		t.Errorf("embedded defaults = %+v\nexpected %+v", cfg, DefaultCatchConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultCatchConfig()
	if cfg.TickInterval() != 20*time.Millisecond {
		t.Errorf("TickInterval() = %v", cfg.TickInterval())
	}
	if cfg.SpawnInterval() != 1200*time.Millisecond {
		t.Errorf("SpawnInterval() = %v", cfg.SpawnInterval())
	}
	if cfg.ReleaseAfter() != 700*time.Millisecond {
		t.Errorf("ReleaseAfter() = %v", cfg.ReleaseAfter())
	}
}

func TestDefaultReleaseOutlastsKeyRepeatDelay(t *testing.T) {
	// X11 waits 660 ms and macOS about 500 ms before the first repeat.
	const slowestRepeatDelay = 660 * time.Millisecond
	if got := DefaultCatchConfig().ReleaseAfter(); got <= slowestRepeatDelay {
		t.Errorf("ReleaseAfter() = %v, a held key would release before its first repeat", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *CatchConfig)
		field  string
	}{
		{"zero field width", func(c *CatchConfig) { c.Field.Width = 0 }, "field.width"},
		{"negative radius", func(c *CatchConfig) { c.Balls.Radius = -1 }, "balls.radius"},
		{"zero fall speed", func(c *CatchConfig) { c.Balls.FallSpeed = 0 }, "balls.fall_speed"},
		{"zero tick", func(c *CatchConfig) { c.Timing.TickMS = 0 }, "timing.tick_ms"},
		{"zero spawn", func(c *CatchConfig) { c.Timing.SpawnMS = 0 }, "timing.spawn_ms"},
		{"paddle wider than field", func(c *CatchConfig) { c.Paddle.Width = 600 }, "paddle.width"},
		{"paddle below field", func(c *CatchConfig) { c.Paddle.BottomOffset = 395 }, "paddle does not fit"},
		{"negative offset", func(c *CatchConfig) { c.Paddle.BottomOffset = -1 }, "paddle.bottom_offset"},
		{"ball wider than field", func(c *CatchConfig) { c.Balls.Radius = 300 }, "balls.radius"},
		{"no lives", func(c *CatchConfig) { c.Gameplay.Lives = 0 }, "gameplay.lives"},
		{"negative release", func(c *CatchConfig) { c.Input.ReleaseAfterMS = -5 }, "input.release_after_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCatchConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := DefaultCatchConfig()
	cfg.Field.Height = 0
	cfg.Gameplay.Lives = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "field.height") || !strings.Contains(msg, "gameplay.lives") {
		t.Errorf("both problems should be reported, got %q", msg)
	}
}

func TestLoadCustomPathPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catch.yaml")
	data := "gameplay:\n  lives: 5\ntiming:\n  spawn_ms: 800\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Gameplay.Lives != 5 || cfg.Timing.SpawnMS != 800 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.Field.Width != 500 || cfg.Timing.TickMS != 20 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "gameplay.lives") {
		t.Errorf("invalid custom file should fail validation, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultCatchConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "release_after_ms: 700") {
		t.Errorf("marshaled config missing input section:\n%s", data)
	}
}

func TestLoadWithSourceSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	_, source, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() error: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, want %q", source, SourceEmbedded)
	}

	local := filepath.Join("configs", catchFile)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(local, []byte("gameplay:\n  lives: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, source, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() error: %v", err)
	}
	if source != local || cfg.Gameplay.Lives != 4 {
		t.Errorf("got source %q lives %d, want %q lives 4", source, cfg.Gameplay.Lives, local)
	}

	user := filepath.Join(home, ".arcade", "configs", catchFile)
	if err := os.MkdirAll(filepath.Dir(user), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(user, []byte("gameplay:\n  lives: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, source, err = LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() error: %v", err)
	}
	if source != user || cfg.Gameplay.Lives != 6 {
		t.Errorf("got source %q lives %d, want %q lives 6", source, cfg.Gameplay.Lives, user)
	}
}

func TestLoadSkipsBrokenSearchFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", catchFile), []byte("field: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, source, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() error: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, want %q", source, SourceEmbedded)
	}
}
