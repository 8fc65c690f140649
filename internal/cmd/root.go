package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Iron-Ham/algoviz/internal/config"
	"github.com/Iron-Ham/algoviz/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "algoviz",
	Short: "Step-by-step algorithm visualizer for the terminal",
	Long: `algoviz plays classic algorithms one step at a time in the terminal.

Searches and sorts are drawn as bar charts, graph algorithms as node and
edge tables, dynamic programming as filled grids and backtracking as a
chessboard. Playback can be paused, stepped and sped up while it runs.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		reportError(cmd.ErrOrStderr(), cmd.CommandPath(), err)
	}
	return err
}

// reportError prints err for the user. Input problems get just the message;
// internal failures point at the debug log; anything else, such as a bad
// flag, adds a pointer to the command's help.
func reportError(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	switch {
	case errors.IsUserFacing(err):
	case errors.GetSeverity(err) >= errors.SeverityCritical:
		fmt.Fprintln(w, "This is a bug in algoviz. Enable logging and check 'algoviz logs' for details.")
	default:
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", path)
	}
}

// invalidConfig marks a configuration that failed validation as an input
// problem.
func invalidConfig(err error) error {
	return errors.NewValidationError("invalid configuration").WithField("config").WithCause(err)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/algoviz/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/algoviz")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("ALGOVIZ")
	// ALGOVIZ_PLAYBACK_SPEED for playback.speed
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
