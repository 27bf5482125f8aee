package commands

import (
	"github.com/spf13/cobra"

	"aoc2022/internal/domain"
	"aoc2022/internal/registry"
	"aoc2022/internal/render"
)

func (c *cli) answersCmd() *cobra.Command {
	var dayFlag string
	cmd := &cobra.Command{
		Use:   "answers",
		Short: "List recorded answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := c.wire.Answers.ListRecords()
			if err != nil {
				return err
			}
			if dayFlag != "" {
				day, err := registry.ParseDay(dayFlag)
				if err != nil {
					return err
				}
				kept := recs[:0]
				for _, r := range recs {
					if r.Day == day {
						kept = append(kept, r)
					}
				}
				recs = kept
			}
			format := c.cfg.Output
			if format == render.Text {
				format = render.Table
			}
			return render.Records(cmd.OutOrStdout(), format, orEmpty(recs))
		},
	}
	cmd.Flags().StringVar(&dayFlag, "day", "", "only show this day")
	return cmd
}

// orEmpty keeps json output a list rather than null.
func orEmpty(recs []domain.Record) []domain.Record {
	if recs == nil {
		return []domain.Record{}
	}
	return recs
}
