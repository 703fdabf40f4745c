package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/corpfin/riskstats/internal/loader"
	"github.com/corpfin/riskstats/stats"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Mean, variance and standard deviation of one series",
		RunE:  runDescribe,
	}
	cmd.Flags().String("input", "", "CSV file holding the series")
	addColumnFlag(cmd.Flags())
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("input")
	column, _ := cmd.Flags().GetInt("column")

	series, err := loader.Series(path, column)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("%s holds no data points", path)
	}
	log.Info().Str("input", path).Int("points", len(series)).Msg("series loaded")

	mean := stats.Mean(series)
	variance := stats.Variance(series, &mean)

	fmt.Printf("points:   %d\n", len(series))
	fmt.Printf("mean:     %v\n", round(mean))
	fmt.Printf("variance: %v\n", round(variance))
	fmt.Printf("stddev:   %v\n", round(stats.StdDev(variance)))
	return nil
}
