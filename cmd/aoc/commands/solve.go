package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc2022/internal/domain"
	"aoc2022/internal/registry"
	"aoc2022/internal/render"
)

// solve <day> [input-file]: solve one day, defaulting to <input-dir>/dayNN.txt.
func (c *cli) solveCmd() *cobra.Command {
	var record bool
	cmd := &cobra.Command{
		Use:   "solve <day> [input-file]",
		Short: "Solve one day and print both answers",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := registry.ParseDay(args[0])
			if err != nil {
				return err
			}
			path := c.wire.InputPath(day)
			if len(args) == 2 {
				path = args[1]
			}

			out, err := c.wire.Solver.Solve(day, path)
			if err != nil {
				return err
			}
			if err := render.Outcome(cmd.OutOrStdout(), c.cfg.Output, out); err != nil {
				return err
			}
			if out.Status == domain.StatusMismatch {
				return fmt.Errorf("%s: answers differ from those recorded for this input (%s / %s)",
					day, out.Recorded.Part1, out.Recorded.Part2)
			}
			if record && out.Status == domain.StatusNew {
				return c.wire.Solver.Record(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&record, "record", false, "store the answers for this input")
	return cmd
}
