// Command recinfo records a synthetic scenario into a buffer recorder and
// prints statistics of the recorded window.
//
// Usage:
//
//	recinfo [flags] [scenario.yaml]
//
// Without a scenario file it records a built-in demo scenario.
//
// Examples:
//
//	recinfo
//	recinfo run.yaml
//	recinfo --in 10 --out 90 --crop run.yaml
//	recinfo --thin 4 --spectrum run.yaml
//	recinfo --verbose run.yaml
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		opts    editOptions
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "recinfo [scenario.yaml]",
		Short: "Record a synthetic scenario and print window statistics",
		Long: `recinfo generates the signals described by a YAML scenario, records them
into a circular buffer recorder, optionally moves the in/out points, crops
and thins the buffers, and prints statistics of the resulting window.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			sc := DefaultScenario()
			if len(args) == 1 {
				var err error
				if sc, err = LoadScenario(args[0]); err != nil {
					return err
				}
				logger.Debug("loaded scenario", "path", args[0], "signals", len(sc.Signals))
			}

			r, err := record(sc, logger)
			if err != nil {
				return err
			}
			edit(r, opts, logger)
			return report(stdout, r, sc.SampleRate, opts.spectrum)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.IntVar(&opts.in, "in", -1, "in point to set after recording (-1 keeps it)")
	flags.IntVar(&opts.out, "out", -1, "out point to set after recording (-1 keeps it)")
	flags.BoolVar(&opts.crop, "crop", false, "crop the buffers to the window")
	flags.IntVar(&opts.thin, "thin", 0, "keep every n-th sample of the window")
	flags.BoolVar(&opts.spectrum, "spectrum", false, "add the dominant frequency of each signal")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log recorder operations to stderr")
	return cmd
}
