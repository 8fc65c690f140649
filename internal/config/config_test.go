package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Playback.Speed != 5 {
		t.Errorf("Playback.Speed = %d, want 5", cfg.Playback.Speed)
	}
	if cfg.Playback.MinDelayMs != 40 || cfg.Playback.MaxDelayMs != 1500 {
		t.Errorf("Playback delays = %d..%d, want 40..1500", cfg.Playback.MinDelayMs, cfg.Playback.MaxDelayMs)
	}
	if cfg.Playback.AutoPlay {
		t.Error("Playback.AutoPlay should be false by default")
	}

	if cfg.Input.Algorithm != "bubble-sort" {
		t.Errorf("Input.Algorithm = %q, want %q", cfg.Input.Algorithm, "bubble-sort")
	}
	if cfg.Input.Size != 12 || cfg.Input.MinValue != 1 || cfg.Input.MaxValue != 99 || cfg.Input.Nodes != 6 {
		t.Errorf("Input = %+v, want size 12, values 1..99, 6 nodes", cfg.Input)
	}
	if cfg.Input.Seed != 0 {
		t.Errorf("Input.Seed = %d, want 0", cfg.Input.Seed)
	}

	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "default")
	}

	if cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestSpeedDelay(t *testing.T) {
	tests := []struct {
		name  string
		speed int
		want  time.Duration
	}{
		{"slowest", 1, 1000 * time.Millisecond},
		{"middle", 4, 700 * time.Millisecond},
		{"fastest", 10, 100 * time.Millisecond},
		{"below scale clamps", 0, 1000 * time.Millisecond},
		{"above scale clamps", 42, 100 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpeedDelay(tt.speed, 100, 1000); got != tt.want {
				t.Errorf("SpeedDelay(%d, 100, 1000) = %v, want %v", tt.speed, got, tt.want)
			}
		})
	}
}

func TestSpeedDelay_Monotonic(t *testing.T) {
	cfg := Default().Playback
	prev := time.Duration(1<<62)
	for speed := MinSpeed; speed <= MaxSpeed; speed++ {
		cfg.Speed = speed
		d := cfg.Delay()
		if d >= prev {
			t.Errorf("speed %d delay %v is not shorter than speed %d delay %v", speed, d, speed-1, prev)
		}
		prev = d
	}
	if prev != time.Duration(cfg.MinDelayMs)*time.Millisecond {
		t.Errorf("fastest delay = %v, want %dms", prev, cfg.MinDelayMs)
	}
}

func TestSpeedDelay_SwappedBounds(t *testing.T) {
	if got := SpeedDelay(1, 1000, 100); got != time.Second {
		t.Errorf("SpeedDelay with swapped bounds = %v, want 1s", got)
	}
}

func TestSetDefaultsAndLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("playback.speed", 8)
	viper.Set("tui.theme", "nord")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Playback.Speed != 8 {
		t.Errorf("Playback.Speed = %d, want 8", cfg.Playback.Speed)
	}
	if cfg.TUI.Theme != "nord" {
		t.Errorf("TUI.Theme = %q, want nord", cfg.TUI.Theme)
	}
	if cfg.Input.Algorithm != "bubble-sort" {
		t.Errorf("Input.Algorithm = %q, want the default", cfg.Input.Algorithm)
	}
}

func TestLoad_Invalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("playback.speed", 11)

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail for an out-of-range speed")
	}
	if got := Get(); got.Playback.Speed != Default().Playback.Speed {
		t.Errorf("Get() speed = %d, want the default after a failed load", got.Playback.Speed)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)

		if got, want := ConfigDir(), filepath.Join(xdg, "algoviz"); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
		if got, want := ConfigFile(), filepath.Join(xdg, "algoviz", "config.yaml"); got != want {
			t.Errorf("ConfigFile() = %q, want %q", got, want)
		}
	})

	t.Run("falls back to home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		if got, want := ConfigDir(), filepath.Join(home, ".config", "algoviz"); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestResolveStateDir(t *testing.T) {
	t.Run("explicit absolute path", func(t *testing.T) {
		dir := t.TempDir()
		p := PathsConfig{StateDir: dir}
		if got := p.ResolveStateDir(); got != dir {
			t.Errorf("ResolveStateDir() = %q, want %q", got, dir)
		}
	})

	t.Run("expands home", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		p := PathsConfig{StateDir: "~/viz-state"}
		if got, want := p.ResolveStateDir(), filepath.Join(home, "viz-state"); got != want {
			t.Errorf("ResolveStateDir() = %q, want %q", got, want)
		}
	})

	t.Run("defaults to XDG_STATE_HOME", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_STATE_HOME", xdg)
		p := PathsConfig{}
		if got, want := p.ResolveStateDir(), filepath.Join(xdg, "algoviz"); got != want {
			t.Errorf("ResolveStateDir() = %q, want %q", got, want)
		}
	})
}
