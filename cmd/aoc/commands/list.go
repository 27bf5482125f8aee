package commands

import (
	"github.com/spf13/cobra"

	"aoc2022/internal/render"
)

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render.Puzzles(cmd.OutOrStdout(), c.cfg.Output, c.wire.Catalog.All())
		},
	}
}
