package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/austerj/tsgo/filter"
)

var (
	flagWindow int
	flagStat   string
	flagEdge   string
)

var rollingCmd = &cobra.Command{
	Use:   "rolling FILE",
	Short: "Compute a rolling-window statistic and write it as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		series, err := loadSeries(args[0])
		if err != nil {
			return err
		}
		derived, err := filter.Rolling(series, flagWindow,
			filter.Statistic(flagStat),
			filter.WithEdgePolicy(filter.EdgePolicy(flagEdge)),
		)
		if err != nil {
			return err
		}
		log.Info("rolling window applied",
			zap.Int("window", flagWindow),
			zap.String("statistic", flagStat),
			zap.String("edge", flagEdge),
			zap.Int("observations", derived.Len()),
		)
		return writeSeries(derived)
	},
}

func init() {
	rollingCmd.Flags().IntVarP(&flagWindow, "window", "w", 0, "window length in observations (required)")
	rollingCmd.Flags().StringVarP(&flagStat, "stat", "s", string(filter.Mean), "statistic: mean, sum, min, max, std")
	rollingCmd.Flags().StringVarP(&flagEdge, "edge", "e", string(filter.Drop), "edge policy: drop, expanding")
	_ = rollingCmd.MarkFlagRequired("window")
}
