package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aoc2022/internal/crypto"
)

func (c *cli) digestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest <input-file>",
		Short: "Print the digest that identifies an input in the answer store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), crypto.Digest(raw))
			return err
		},
	}
}
