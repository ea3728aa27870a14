package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/austerj/tsgo/timeseries"
)

var (
	flagTimeColumn  string
	flagValueColumn string
	flagLayout      string
	flagDelimiter   string
	flagNoHeader    bool
	flagOut         string
	flagVerbose     bool

	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tscli",
	Short: "Time series statistics and filters over CSV files",
	Long: `tscli reads a two-column (timestamp, value) CSV file into a time
series and computes summary statistics, rolling-window transforms, or
exponential moving averages over it.

Timestamps use RFC 3339 by default; date-only values are also accepted.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if flagVerbose {
			log, err = zap.NewDevelopment()
		} else {
			log, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagTimeColumn, "time-column", "time", "header name of the timestamp column")
	pf.StringVar(&flagValueColumn, "value-column", "value", "header name of the value column")
	pf.StringVar(&flagLayout, "layout", "", "timestamp layout in Go reference form (default RFC 3339)")
	pf.StringVar(&flagDelimiter, "delimiter", ",", "field delimiter")
	pf.BoolVar(&flagNoHeader, "no-header", false, "input has no header row; column 0 is the timestamp, column 1 the value")
	pf.StringVarP(&flagOut, "out", "o", "", "write output CSV to this file instead of stdout")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(rollingCmd)
	rootCmd.AddCommand(emaCmd)
}

func csvOptions() (*timeseries.CSVOptions, error) {
	opts := timeseries.DefaultCSVOptions()
	opts.TimeColumn = flagTimeColumn
	opts.ValueColumn = flagValueColumn
	if flagLayout != "" {
		opts.TimeLayout = flagLayout
	}
	if flagNoHeader {
		opts.Header = false
	}
	runes := []rune(flagDelimiter)
	if len(runes) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", flagDelimiter)
	}
	opts.Comma = runes[0]
	return opts, nil
}

func loadSeries(path string) (*timeseries.Series, error) {
	opts, err := csvOptions()
	if err != nil {
		return nil, err
	}
	series, err := timeseries.ReadCSV(path, opts)
	if err != nil {
		log.Error("failed to read series",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}
	log.Info("series loaded",
		zap.String("path", path),
		zap.Int("observations", series.Len()),
	)
	return series, nil
}

func writeSeries(series *timeseries.Series) error {
	opts, err := csvOptions()
	if err != nil {
		return err
	}
	if flagOut == "" {
		return timeseries.WriteCSVTo(series, os.Stdout, opts)
	}
	if err := timeseries.WriteCSV(series, flagOut, opts); err != nil {
		log.Error("failed to write series",
			zap.String("path", flagOut),
			zap.Error(err),
		)
		return err
	}
	log.Info("series written",
		zap.String("path", flagOut),
		zap.Int("observations", series.Len()),
	)
	return nil
}
