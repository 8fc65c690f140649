package cmd

import (
	"strconv"
	"strings"
	"time"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/config"
	"github.com/Iron-Ham/algoviz/internal/errors"
	"github.com/spf13/cobra"
)

// instanceFlags are the problem-instance flags shared by run and trace.
type instanceFlags struct {
	values string
	target int
	n      int
	textA  string
	textB  string
	size   int
	seed   uint64
}

func (f *instanceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.values, "values", "", "Comma-separated array for search and sort algorithms (e.g. 5,3,8,1)")
	cmd.Flags().IntVar(&f.target, "target", 0, "Search target (default: picked from the array)")
	cmd.Flags().IntVar(&f.n, "n", 0, "Size parameter: Fibonacci index or board size (0 is the empty instance)")
	cmd.Flags().StringVar(&f.textA, "text-a", "", "First string for sequence algorithms")
	cmd.Flags().StringVar(&f.textB, "text-b", "", "Second string for sequence algorithms")
	cmd.Flags().IntVar(&f.size, "size", 0, "Length of synthesized arrays (default from config)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for synthesized instances (default from config, or time-based)")
}

// input builds the problem instance from the flags that were set. Unset
// parts are left for the generator to synthesize.
func (f *instanceFlags) input(cmd *cobra.Command, cfg *config.Config) (algorithm.Input, error) {
	in := algorithm.Input{
		TextA: f.textA,
		TextB: f.textB,
		Synth: algorithm.Synthesis{
			Size:  cfg.Input.Size,
			Min:   cfg.Input.MinValue,
			Max:   cfg.Input.MaxValue,
			Nodes: cfg.Input.Nodes,
		},
	}
	if cmd.Flags().Changed("n") {
		if f.n < 0 {
			return in, errors.NewValidationError("must not be negative").
				WithField("n").WithValue(f.n).WithCause(errors.ErrInvalidInput)
		}
		n := f.n
		in.N = &n
	}
	if cmd.Flags().Changed("size") {
		if f.size <= 0 {
			return in, errors.NewValidationError("must be positive").
				WithField("size").WithValue(f.size).WithCause(errors.ErrInvalidInput)
		}
		in.Synth.Size = f.size
	}
	if cmd.Flags().Changed("values") {
		values, err := parseValues(f.values)
		if err != nil {
			return in, err
		}
		in.Values = values
	}
	if cmd.Flags().Changed("target") {
		target := f.target
		in.Target = &target
	}
	return in, nil
}

// resolveSeed picks the flag, then the configured seed, then the clock.
func (f *instanceFlags) resolveSeed(cmd *cobra.Command, cfg *config.Config) uint64 {
	if cmd.Flags().Changed("seed") {
		return f.seed
	}
	if cfg.Input.Seed != 0 {
		return cfg.Input.Seed
	}
	return uint64(time.Now().UnixNano())
}

// parseValues parses a comma-separated list of integers. An empty string is
// an empty array.
func parseValues(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	fields := strings.Split(s, ",")
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.NewValidationError("not an integer").
				WithField("values").WithValue(field).WithCause(errors.ErrInvalidInput)
		}
		values = append(values, v)
	}
	return values, nil
}
