package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/corpfin/riskstats/internal/loader"
	"github.com/corpfin/riskstats/risk"
)

func newBetaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beta",
		Short: "Market risk coefficient of a series against a benchmark",
		Long: `Computes Beta: the covariance of the asset's returns with the market
benchmark, over the benchmark's own variance.`,
		RunE: runBeta,
	}
	cmd.Flags().String("series", "", "CSV file with the asset return series")
	cmd.Flags().String("market", "", "CSV file with the benchmark return series")
	addColumnFlag(cmd.Flags())
	_ = cmd.MarkFlagRequired("series")
	_ = cmd.MarkFlagRequired("market")
	return cmd
}

func runBeta(cmd *cobra.Command, _ []string) error {
	seriesPath, _ := cmd.Flags().GetString("series")
	marketPath, _ := cmd.Flags().GetString("market")
	column, _ := cmd.Flags().GetInt("column")

	series, err := loader.Series(seriesPath, column)
	if err != nil {
		return err
	}
	market, err := loader.Series(marketPath, column)
	if err != nil {
		return err
	}
	// Mismatched files are user input here, so validate before handing
	// the slices to the library, which treats a mismatch as a caller bug.
	if len(series) != len(market) {
		return fmt.Errorf("%s has %d points but %s has %d; both files must cover the same periods",
			seriesPath, len(series), marketPath, len(market))
	}
	log.Info().Str("series", seriesPath).Str("market", marketPath).Int("points", len(series)).Msg("series loaded")

	b := risk.NewBeta(series, market)
	fmt.Printf("beta: %v\n", round(b.Value()))

	switch {
	case b.IsOne():
		fmt.Println("the series moves exactly with the market")
	case b.IsNegative():
		fmt.Println("the series is negatively correlated to the market")
	case b.Value() > 1:
		fmt.Println("the series is more volatile than the market")
	default:
		fmt.Println("the series is less volatile than the market")
	}
	return nil
}
