package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/entropy"
	"github.com/simonhull/entropy/internal/config"
	"github.com/simonhull/entropy/internal/counter"
	"github.com/simonhull/entropy/internal/log"
)

// stdinArg selects standard input instead of a file.
const stdinArg = "-"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entropy [flags] FILE",
		Short: "A utility to calculate Shannon entropy",
		Long: `Calculate the Shannon entropy of a file's bytes, in bits per byte (0 to 8).

With --metric the result is divided by 8, giving a value between 0 and 1.
Pass "-" as FILE to read standard input.`,
		Args:          cobra.ExactArgs(1),
		Version:       entropy.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	f := cmd.Flags()
	f.BoolP("metric", "m", false, "report metric entropy (Shannon entropy / 8)")
	f.String("measure", "shannon", "measure to report: shannon or metric (overrides --metric)")
	f.IntP("precision", "p", 6, "digits printed after the decimal point")
	f.Bool("counts", false, "print the frequency of every byte value that occurs")
	f.String("config", "", "path to a YAML config file")
	f.Int("workers", 1, "sections of a regular file to count concurrently")
	f.Int("chunk-size", counter.DefaultChunkSize, "read buffer size in bytes")
	f.String("log-level", "warn", "log level: debug, info, warn, error")
	f.String("log-format", log.FormatConsole, "log format: console or json")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print detailed version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), entropy.GetBuild())
		},
	}
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath, flags)
	if err != nil {
		return err
	}

	logger, err := log.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	measure := cfg.MeasureValue()
	if metric, _ := flags.GetBool("metric"); metric && !flags.Changed("measure") {
		measure = entropy.MeasureMetric
	}

	opts := []entropy.Option{
		entropy.WithChunkSize(cfg.Scan.ChunkSize),
		entropy.WithWorkers(cfg.Scan.Workers),
		entropy.WithLogger(logger),
	}

	path := args[0]
	logger.Info().Str("path", path).Stringer("measure", measure).Msg("analyzing")

	var table *entropy.Table
	if path == stdinArg {
		table, err = entropy.NewContext(cmd.Context(), cmd.InOrStdin(), opts...)
	} else {
		var file *entropy.File
		file, err = entropy.OpenContext(cmd.Context(), path, opts...)
		if err == nil {
			table = file.Table
		}
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if counts, _ := flags.GetBool("counts"); counts {
		for b, n := range table.All() {
			fmt.Fprintf(out, "0x%02x %d\n", b, n)
		}
	}

	value, err := entropy.Compute(table, measure)
	if err != nil {
		return err
	}

	logger.Info().
		Str("path", path).
		Uint64("bytes", table.Length).
		Int("distinct", table.Distinct()).
		Float64(measure.String(), value).
		Msg("done")

	fmt.Fprintf(out, "%.*f\n", cfg.Precision, value)
	return nil
}
