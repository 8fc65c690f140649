package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/Iron-Ham/algoviz/internal/algorithm/catalog"
	"github.com/Iron-Ham/algoviz/internal/config"
	"github.com/Iron-Ham/algoviz/internal/errors"
	"github.com/Iron-Ham/algoviz/internal/logging"
	"github.com/Iron-Ham/algoviz/internal/tui"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [algorithm]",
	Short: "Play an algorithm in the terminal",
	Long: `Play an algorithm step by step in a full-screen terminal player.

Without an argument the configured algorithm (input.algorithm) is shown.
Parts of the instance not given by flags are synthesized from the seed.

Examples:
  # Bubble sort on a fixed array
  algoviz run bubble-sort --values 5,3,8,1,9,2

  # Binary search for 42, playing at full speed
  algoviz run binary-search --target 42 --speed 10

  # Reproduce a graph instance
  algoviz run dijkstra --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

var (
	runFlags instanceFlags
	runSpeed int
	runPlay  bool
	runTheme string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runFlags.register(runCmd)
	runCmd.Flags().IntVar(&runSpeed, "speed", 0, fmt.Sprintf("Playback speed from %d to %d (default from config)", config.MinSpeed, config.MaxSpeed))
	runCmd.Flags().BoolVar(&runPlay, "play", false, "Start playing as soon as the run is loaded")
	runCmd.Flags().StringVar(&runTheme, "theme", "", "Color theme (default from config)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return invalidConfig(err)
	}
	if err := applyRunFlags(cmd, cfg); err != nil {
		return err
	}

	reg := catalog.Default()
	name := cfg.Input.Algorithm
	if len(args) > 0 {
		name = args[0]
	}
	if _, err := reg.Lookup(name); err != nil {
		return err
	}

	in, err := runFlags.input(cmd, cfg)
	if err != nil {
		return err
	}
	seed := runFlags.resolveSeed(cmd, cfg)

	logger := createLogger(cfg)
	defer func() { _ = logger.Close() }()
	logger.Info("player starting", "algorithm", name, "seed", seed, "speed", cfg.Playback.Speed)

	err = tui.Run(tui.Options{
		Registry:  reg,
		Config:    cfg,
		Logger:    logger,
		Algorithm: name,
		Input:     in,
		Seed:      seed,
	})
	if err != nil {
		logger.Error("player exited with error", "error", err.Error())
		return err
	}
	logger.Info("player stopped")
	return nil
}

// applyRunFlags overlays the playback flags onto cfg.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("speed") {
		if runSpeed < config.MinSpeed || runSpeed > config.MaxSpeed {
			return errors.NewValidationError(fmt.Sprintf("must be between %d and %d", config.MinSpeed, config.MaxSpeed)).
				WithField("speed").WithValue(runSpeed).WithCause(errors.ErrInvalidInput)
		}
		cfg.Playback.Speed = runSpeed
	}
	if cmd.Flags().Changed("play") {
		cfg.Playback.AutoPlay = runPlay
	}
	if cmd.Flags().Changed("theme") {
		if !slices.Contains(config.ValidThemes(), runTheme) {
			return errors.NewValidationError(fmt.Sprintf("unknown theme (valid: %s)", strings.Join(config.ValidThemes(), ", "))).
				WithField("theme").WithValue(runTheme).WithCause(errors.ErrInvalidInput)
		}
		cfg.TUI.Theme = runTheme
	}
	return nil
}

// createLogger creates a logger if logging is enabled in config.
// Returns a NopLogger if logging is disabled or if creation fails.
func createLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}

	rotationConfig := logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	}

	logger, err := logging.NewLoggerWithRotation(cfg.Paths.ResolveStateDir(), cfg.Logging.Level, rotationConfig)
	if err != nil {
		// The player still runs without a log file
		fmt.Fprintf(os.Stderr, "Warning: failed to create logger: %v\n", err)
		return logging.NopLogger()
	}
	return logger
}
