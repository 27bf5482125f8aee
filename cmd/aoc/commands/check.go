package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc2022/internal/domain"
	"aoc2022/internal/registry"
	"aoc2022/internal/render"
)

func (c *cli) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [day...]",
		Short: "Run the published examples (every day when none given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var days []domain.Day
			for _, a := range args {
				d, err := registry.ParseDay(a)
				if err != nil {
					return err
				}
				days = append(days, d)
			}
			if len(days) == 0 {
				for _, p := range c.wire.Catalog.All() {
					days = append(days, p.Day)
				}
			}

			results := make([]domain.CheckResult, 0, len(days))
			failed := 0
			for _, d := range days {
				res, err := c.wire.Solver.Check(d)
				if err != nil {
					return err
				}
				if !res.Passed() {
					failed++
				}
				results = append(results, res)
			}
			if err := render.Checks(cmd.OutOrStdout(), c.cfg.Output, results); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d examples failed", failed, len(results))
			}
			return nil
		},
	}
}
