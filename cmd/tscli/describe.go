package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/austerj/tsgo/stats"
)

var describeCmd = &cobra.Command{
	Use:   "describe FILE",
	Short: "Print summary statistics for a CSV time series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		series, err := loadSeries(args[0])
		if err != nil {
			return err
		}
		summary, err := stats.Describe(series)
		if err != nil {
			return err
		}

		first, _ := series.First()
		last, _ := series.Last()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "count %d\n", summary.Count)
		fmt.Fprintf(out, "start %s\n", first.Time)
		fmt.Fprintf(out, "end   %s\n", last.Time)
		fmt.Fprintf(out, "mean  %g\n", summary.Mean)
		fmt.Fprintf(out, "std   %g\n", summary.Std)
		fmt.Fprintf(out, "min   %g\n", summary.Min)
		fmt.Fprintf(out, "max   %g\n", summary.Max)
		return nil
	},
}
