package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc2022/internal/domain"
	"aoc2022/internal/render"
)

func (c *cli) allCmd() *cobra.Command {
	var record bool
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every day from its default input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outs, err := c.wire.Solver.SolveAll(cmd.Context(), c.wire.InputPath)
			if err != nil {
				return err
			}
			if err := render.Outcomes(cmd.OutOrStdout(), c.cfg.Output, outs); err != nil {
				return err
			}

			var mismatched []string
			for _, o := range outs {
				switch o.Status {
				case domain.StatusMismatch:
					mismatched = append(mismatched, o.Day.String())
				case domain.StatusNew:
					if record {
						if err := c.wire.Solver.Record(o); err != nil {
							return err
						}
					}
				}
			}
			if len(mismatched) > 0 {
				return fmt.Errorf("answers differ from those recorded: %v", mismatched)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&record, "record", false, "store answers for inputs seen for the first time")
	return cmd
}
