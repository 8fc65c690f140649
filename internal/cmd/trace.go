package cmd

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/algoviz/internal/algorithm/catalog"
	"github.com/Iron-Ham/algoviz/internal/config"
	"github.com/Iron-Ham/algoviz/internal/datasource"
	"github.com/Iron-Ham/algoviz/internal/trace"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace <algorithm>",
	Short: "Print an algorithm's steps without the player",
	Long: `Generate an algorithm's step sequence and print it.

The table format lists each step with a summary of its payload and a tally
of step kinds. The yaml and json formats print every payload in full.

Examples:
  algoviz trace binary-search --values 1,3,5,7,9 --target 7
  algoviz trace n-queens --n 4 --format yaml
  algoviz trace dijkstra --seed 3 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

var (
	traceFlags  instanceFlags
	traceFormat string
)

func init() {
	rootCmd.AddCommand(traceCmd)

	traceFlags.register(traceCmd)
	traceCmd.Flags().StringVarP(&traceFormat, "format", "o", string(trace.FormatTable),
		fmt.Sprintf("Output format (%s)", strings.Join(trace.Formats(), ", ")))
}

func runTrace(cmd *cobra.Command, args []string) error {
	format, err := trace.ParseFormat(traceFormat)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return invalidConfig(err)
	}

	in, err := traceFlags.input(cmd, cfg)
	if err != nil {
		return err
	}
	seed := traceFlags.resolveSeed(cmd, cfg)
	in.Rand = datasource.New(seed)

	run, err := catalog.Default().Generate(args[0], in)
	if err != nil {
		return err
	}

	doc := trace.NewDocument(run.Info.Name, run.Info.Title, seed, run.Steps)
	return trace.Write(cmd.OutOrStdout(), doc, format)
}
