package cmd

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Iron-Ham/algoviz/internal/config"
	"github.com/Iron-Ham/algoviz/internal/errors"
	"github.com/Iron-Ham/algoviz/internal/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View player logs",
	Long: `View and filter the player's debug log.

Logs are written to <state_dir>/debug.log when logging.enabled is set.
Use flags to filter and format the output.

Examples:
  # Show the last 50 entries
  algoviz logs

  # Show everything logged for one run
  algoviz logs --run quick-sort-3 -n 0

  # Warnings and errors from the last hour
  algoviz logs --level warn --since 1h

  # Render failures as CSV
  algoviz logs --grep "could not|failed" --format csv`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var (
	logsTail      int
	logsLevel     string
	logsSince     string
	logsRun       string
	logsAlgorithm string
	logsComponent string
	logsGrep      string
	logsFormat    string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show logs since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsRun, "run", "", "Only entries of this run ID")
	logsCmd.Flags().StringVar(&logsAlgorithm, "algorithm", "", "Only entries of this algorithm")
	logsCmd.Flags().StringVar(&logsComponent, "component", "", "Only entries of this component (tui, playback)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Filter messages matching pattern (regex)")
	logsCmd.Flags().StringVar(&logsFormat, "format", "text", "Output format (text, json, csv)")
}

var levelStyles = map[string]lipgloss.Style{
	logging.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	logging.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	logging.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	logging.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return invalidConfig(err)
	}
	out := cmd.OutOrStdout()
	dir := cfg.Paths.ResolveStateDir()

	filter, err := buildLogFilter(time.Now())
	if err != nil {
		return err
	}

	var grepRegex *regexp.Regexp
	if logsGrep != "" {
		grepRegex, err = regexp.Compile(logsGrep)
		if err != nil {
			return errors.NewValidationError("invalid pattern").WithField("grep").WithValue(logsGrep).WithCause(err)
		}
	}

	entries, err := logging.ReadLogs(dir)
	if err != nil {
		fmt.Fprintf(out, "No logs found in %s\n", dir)
		if !cfg.Logging.Enabled {
			fmt.Fprintln(out, "Logging is disabled; enable it with 'algoviz config set logging.enabled true'")
		}
		return nil
	}

	entries = logging.FilterLogs(entries, filter)
	if grepRegex != nil {
		entries = grepEntries(entries, grepRegex)
	}
	if logsTail > 0 && len(entries) > logsTail {
		entries = entries[len(entries)-logsTail:]
	}

	if strings.ToLower(logsFormat) != "text" {
		return logging.WriteLogEntries(out, entries, logsFormat)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No matching log entries found.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintln(out, formatLogEntry(e))
	}
	return nil
}

// buildLogFilter converts the filter flags, resolving --since against now.
func buildLogFilter(now time.Time) (logging.LogFilter, error) {
	filter := logging.LogFilter{
		RunID:     logsRun,
		Algorithm: logsAlgorithm,
		Component: logsComponent,
	}
	if logsLevel != "" {
		filter.Level = logging.ParseLevel(logsLevel)
	}
	if logsSince != "" {
		duration, err := time.ParseDuration(logsSince)
		if err != nil {
			return filter, errors.NewValidationError("invalid duration").WithField("since").WithValue(logsSince).WithCause(err)
		}
		filter.Since = now.Add(-duration)
	}
	return filter, nil
}

func grepEntries(entries []logging.LogEntry, re *regexp.Regexp) []logging.LogEntry {
	var out []logging.LogEntry
	for _, e := range entries {
		if re.MatchString(e.Message) {
			out = append(out, e)
		}
	}
	return out
}

// formatLogEntry formats a log entry for terminal output with the level
// colored.
func formatLogEntry(e logging.LogEntry) string {
	line := logging.FormatEntry(e)
	style, ok := levelStyles[e.Level]
	if !ok {
		return line
	}
	return strings.Replace(line, " "+e.Level+" ", " "+style.Render(e.Level)+" ", 1)
}
