package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"aoc2022/internal/app"
	"aoc2022/internal/config"
	"aoc2022/internal/logger"
)

// cli carries the state shared by every subcommand of one invocation.
type cli struct {
	cfgFile  string
	cfg      *config.Config
	wire     *app.Wire
	closeLog func() error
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	c := &cli{}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if c.closeLog != nil {
		_ = c.closeLog()
	}
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "aoc",
		Short:        "Advent of Code 2022 solutions, days 1 to 8",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, used, err := config.Load(c.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			lg, closeLog, err := logger.New(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile}, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c.closeLog = closeLog
			if used != "" {
				lg.Debug("loaded config", "path", used)
			}

			w, err := app.NewWire(app.Config{
				Home:     cfg.Home,
				InputDir: cfg.InputDir,
				Parallel: cfg.Parallel,
				Logger:   lg,
			})
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.wire = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (default ./aoc.yaml)")
	pf.String("home", "", "answer store directory (default ~/.aoc)")
	pf.String("input-dir", "", fmt.Sprintf("directory holding dayNN.txt inputs (default %q)", config.DefaultInputDir))
	pf.String("log-level", "", "debug, info, warn or error (default warn)")
	pf.String("log-file", "", "append logs to this file instead of stderr")
	pf.StringP("output", "o", "", "output format: text, table, json or yaml (default text)")
	pf.Int("parallel", 0, fmt.Sprintf("days solved at once by all (default %d)", config.DefaultParallel))

	root.AddCommand(c.solveCmd(), c.checkCmd(), c.allCmd(), c.listCmd(), c.answersCmd(), c.digestCmd())
	return root
}
