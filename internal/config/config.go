package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete algoviz configuration
type Config struct {
	Playback PlaybackConfig `mapstructure:"playback"`
	Input    InputConfig    `mapstructure:"input"`
	TUI      TUIConfig      `mapstructure:"tui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Paths    PathsConfig    `mapstructure:"paths"`
}

// Playback speed bounds. Speed is an integer on this scale; higher is faster.
const (
	MinSpeed = 1
	MaxSpeed = 10
)

// PlaybackConfig controls automatic stepping
type PlaybackConfig struct {
	// Speed is the playback speed from 1 (slowest) to 10 (fastest) (default: 5)
	Speed int `mapstructure:"speed"`
	// MinDelayMs is the delay between steps at the fastest speed (default: 40)
	MinDelayMs int `mapstructure:"min_delay_ms"`
	// MaxDelayMs is the delay between steps at the slowest speed (default: 1500)
	MaxDelayMs int `mapstructure:"max_delay_ms"`
	// AutoPlay starts playback as soon as a run is loaded (default: false)
	AutoPlay bool `mapstructure:"auto_play"`
}

// Delay returns the interval between automatic steps at the configured speed.
func (c PlaybackConfig) Delay() time.Duration {
	return SpeedDelay(c.Speed, c.MinDelayMs, c.MaxDelayMs)
}

// SpeedDelay maps speed onto [minMs, maxMs] inversely and linearly: MinSpeed
// yields maxMs and MaxSpeed yields minMs. Speed is clamped to the scale.
func SpeedDelay(speed, minMs, maxMs int) time.Duration {
	speed = ClampSpeed(speed)
	if maxMs < minMs {
		minMs, maxMs = maxMs, minMs
	}
	span := maxMs - minMs
	ms := maxMs - (speed-MinSpeed)*span/(MaxSpeed-MinSpeed)
	return time.Duration(ms) * time.Millisecond
}

// ClampSpeed limits speed to [MinSpeed, MaxSpeed].
func ClampSpeed(speed int) int {
	return min(max(speed, MinSpeed), MaxSpeed)
}

// InputConfig controls how problem instances are chosen and synthesized
type InputConfig struct {
	// Algorithm is the algorithm shown at startup (default: "bubble-sort")
	Algorithm string `mapstructure:"algorithm"`
	// Size is the length of synthesized arrays (default: 12)
	Size int `mapstructure:"size"`
	// MinValue and MaxValue bound synthesized array values (default: 1..99)
	MinValue int `mapstructure:"min_value"`
	MaxValue int `mapstructure:"max_value"`
	// Nodes is the node count of synthesized graphs (default: 6)
	Nodes int `mapstructure:"nodes"`
	// Seed fixes instance synthesis; 0 picks a new seed per run (default: 0)
	Seed uint64 `mapstructure:"seed"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// ShowHelp expands the full key help at startup (default: false)
	ShowHelp bool `mapstructure:"show_help"`
	// MaxBarHeight caps the height of array bars in rows; 0 fits the terminal (default: 0)
	MaxBarHeight int `mapstructure:"max_bar_height"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated log files (default: false)
	Compress bool `mapstructure:"compress"`
}

// PathsConfig controls where algoviz stores data
type PathsConfig struct {
	// StateDir holds debug.log. If empty, defaults to $XDG_STATE_HOME/algoviz
	// or ~/.local/state/algoviz. Supports ~ for home directory expansion.
	StateDir string `mapstructure:"state_dir"`
}

// ResolveStateDir returns the absolute state directory.
func (p *PathsConfig) ResolveStateDir() string {
	path := p.StateDir
	if path == "" {
		return defaultStateDir()
	}
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func defaultStateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "algoviz")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".algoviz"
	}
	return filepath.Join(home, ".local", "state", "algoviz")
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{
			Speed:      5,
			MinDelayMs: 40,
			MaxDelayMs: 1500,
			AutoPlay:   false,
		},
		Input: InputConfig{
			Algorithm: "bubble-sort",
			Size:      12,
			MinValue:  1,
			MaxValue:  99,
			Nodes:     6,
			Seed:      0,
		},
		TUI: TUIConfig{
			Theme:        "default",
			ShowHelp:     false,
			MaxBarHeight: 0,
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
		Paths: PathsConfig{
			StateDir: "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Playback defaults
	viper.SetDefault("playback.speed", defaults.Playback.Speed)
	viper.SetDefault("playback.min_delay_ms", defaults.Playback.MinDelayMs)
	viper.SetDefault("playback.max_delay_ms", defaults.Playback.MaxDelayMs)
	viper.SetDefault("playback.auto_play", defaults.Playback.AutoPlay)

	// Input defaults
	viper.SetDefault("input.algorithm", defaults.Input.Algorithm)
	viper.SetDefault("input.size", defaults.Input.Size)
	viper.SetDefault("input.min_value", defaults.Input.MinValue)
	viper.SetDefault("input.max_value", defaults.Input.MaxValue)
	viper.SetDefault("input.nodes", defaults.Input.Nodes)
	viper.SetDefault("input.seed", defaults.Input.Seed)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_help", defaults.TUI.ShowHelp)
	viper.SetDefault("tui.max_bar_height", defaults.TUI.MaxBarHeight)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)

	// Paths defaults
	viper.SetDefault("paths.state_dir", defaults.Paths.StateDir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "algoviz")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".algoviz"
	}
	return filepath.Join(home, ".config", "algoviz")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidThemes returns the names of the built-in color themes
func ValidThemes() []string {
	return []string{"default", "monokai", "dracula", "nord"}
}
