package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Iron-Ham/algoviz/internal/config"
	"github.com/Iron-Ham/algoviz/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify algoviz configuration",
	Long: `View or modify algoviz configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  algoviz config set playback.speed 8
  algoviz config set tui.theme nord
  algoviz config set input.algorithm quick-sort

Valid keys:
  playback.speed        - Playback speed from 1 (slowest) to 10 (fastest)
  playback.min_delay_ms - Delay between steps at the fastest speed
  playback.max_delay_ms - Delay between steps at the slowest speed
  playback.auto_play    - Start playing when a run is loaded (true/false)
  input.algorithm       - Algorithm shown at startup
  input.size            - Length of synthesized arrays
  input.min_value       - Smallest synthesized value
  input.max_value       - Largest synthesized value
  input.nodes           - Node count of synthesized graphs
  input.seed            - Synthesis seed (0 picks a new one per run)
  tui.theme             - Color theme: default, monokai, dracula, nord
  tui.show_help         - Show the full key help (true/false)
  tui.max_bar_height    - Tallest bar in rows (0 fits the terminal)
  logging.enabled       - Write debug.log to the state directory (true/false)
  logging.level         - Minimum log level: debug, info, warn, error
  paths.state_dir       - Directory for logs`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/algoviz/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return invalidConfig(err)
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "playback:")
	fmt.Fprintf(out, "  speed: %d\n", cfg.Playback.Speed)
	fmt.Fprintf(out, "  min_delay_ms: %d\n", cfg.Playback.MinDelayMs)
	fmt.Fprintf(out, "  max_delay_ms: %d\n", cfg.Playback.MaxDelayMs)
	fmt.Fprintf(out, "  auto_play: %v\n", cfg.Playback.AutoPlay)

	fmt.Fprintln(out, "input:")
	fmt.Fprintf(out, "  algorithm: %s\n", cfg.Input.Algorithm)
	fmt.Fprintf(out, "  size: %d\n", cfg.Input.Size)
	fmt.Fprintf(out, "  min_value: %d\n", cfg.Input.MinValue)
	fmt.Fprintf(out, "  max_value: %d\n", cfg.Input.MaxValue)
	fmt.Fprintf(out, "  nodes: %d\n", cfg.Input.Nodes)
	fmt.Fprintf(out, "  seed: %d\n", cfg.Input.Seed)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  show_help: %v\n", cfg.TUI.ShowHelp)
	fmt.Fprintf(out, "  max_bar_height: %d\n", cfg.TUI.MaxBarHeight)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)
	fmt.Fprintf(out, "  compress: %v\n", cfg.Logging.Compress)

	fmt.Fprintln(out, "paths:")
	fmt.Fprintf(out, "  state_dir: %s\n", cfg.Paths.ResolveStateDir())

	return nil
}

// settableKeys maps each key accepted by "config set" to its value type.
var settableKeys = map[string]string{
	"playback.speed":        "int",
	"playback.min_delay_ms": "int",
	"playback.max_delay_ms": "int",
	"playback.auto_play":    "bool",
	"input.algorithm":       "string",
	"input.size":            "int",
	"input.min_value":       "int",
	"input.max_value":       "int",
	"input.nodes":           "int",
	"input.seed":            "uint",
	"tui.theme":             "string",
	"tui.show_help":         "bool",
	"tui.max_bar_height":    "int",
	"logging.enabled":       "bool",
	"logging.level":         "string",
	"logging.max_size_mb":   "int",
	"logging.max_backups":   "int",
	"logging.compress":      "bool",
	"paths.state_dir":       "string",
}

// parseSetting converts value to the type registered for key.
func parseSetting(key, value string) (any, error) {
	keyType, ok := settableKeys[key]
	if !ok {
		return nil, errors.NewValidationError("unknown configuration key; run 'algoviz config set --help' to see valid keys").
			WithField(key).WithCause(errors.ErrInvalidInput)
	}

	switch keyType {
	case "bool":
		if value != "true" && value != "false" {
			return nil, settingError(key, value, "expected true or false")
		}
		return value == "true", nil
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, settingError(key, value, "expected an integer")
		}
		return intVal, nil
	case "uint":
		uintVal, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, settingError(key, value, "expected a non-negative integer")
		}
		return uintVal, nil
	default:
		return value, nil
	}
}

func settingError(key, value, message string) error {
	return errors.NewValidationError(message).WithField(key).WithValue(value).WithCause(errors.ErrInvalidInput)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue, err := parseSetting(key, args[1])
	if err != nil {
		return err
	}

	// Range checks live in Config.Validate
	prev := viper.Get(key)
	viper.Set(key, typedValue)
	if _, err := config.Load(); err != nil {
		viper.Set(key, prev)
		return errors.NewValidationError("rejected by validation").WithField(key).WithValue(args[1]).WithCause(err)
	}

	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

const defaultConfigContent = `# algoviz configuration

# Automatic stepping
playback:
  # Speed from 1 (slowest) to 10 (fastest)
  speed: 5
  # Delay between steps at the fastest and slowest speed
  min_delay_ms: 40
  max_delay_ms: 1500
  # Start playing as soon as a run is loaded
  auto_play: false

# Problem instances
input:
  # Algorithm shown at startup (see 'algoviz list')
  algorithm: bubble-sort
  # Synthesized arrays: length and value range
  size: 12
  min_value: 1
  max_value: 99
  # Node count of synthesized graphs
  nodes: 6
  # Fixed synthesis seed; 0 picks a new one per run
  seed: 0

# Terminal player
tui:
  # Options: default, monokai, dracula, nord
  theme: default
  # Show the full key help instead of the short bar
  show_help: false
  # Tallest bar in rows; 0 fits the terminal
  max_bar_height: 0

# Debug log written to <state_dir>/debug.log
logging:
  enabled: false
  # Options: debug, info, warn, error
  level: info
  max_size_mb: 10
  max_backups: 3
  compress: false

paths:
  # Defaults to ~/.local/state/algoviz
  state_dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return errors.NewValidationError("config file already exists; use 'algoviz config set' to modify values").
			WithField("config").WithValue(configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize algoviz.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/algoviz/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: ALGOVIZ_* (e.g., ALGOVIZ_PLAYBACK_SPEED)")

	return nil
}
