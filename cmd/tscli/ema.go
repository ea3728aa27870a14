package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/austerj/tsgo/filter"
)

var (
	flagAlpha float64
	flagSpan  int
)

var emaCmd = &cobra.Command{
	Use:   "ema FILE",
	Short: "Compute an exponential moving average and write it as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alpha := flagAlpha
		if flagSpan > 0 {
			if cmd.Flags().Changed("alpha") {
				return errors.New("set either --alpha or --span, not both")
			}
			var err error
			alpha, err = filter.Span(flagSpan)
			if err != nil {
				return err
			}
		}
		series, err := loadSeries(args[0])
		if err != nil {
			return err
		}
		derived, err := filter.EMA(series, alpha)
		if err != nil {
			return err
		}
		log.Info("exponential moving average applied",
			zap.Float64("alpha", alpha),
			zap.Int("observations", derived.Len()),
		)
		return writeSeries(derived)
	},
}

func init() {
	emaCmd.Flags().Float64VarP(&flagAlpha, "alpha", "a", 0, "smoothing factor in (0, 1]")
	emaCmd.Flags().IntVar(&flagSpan, "span", 0, "span of periods; sets alpha to 2/(n+1)")
}
