package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/corpfin/riskstats/internal/loader"
	"github.com/corpfin/riskstats/risk"
)

func newSharpeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sharpe",
		Short: "Risk-adjusted return against the risk-free rate",
		Long: `Computes the Sharpe ratio either from a raw return series (--series) or
from annualized summary figures (--rp together with --sd).`,
		RunE: runSharpe,
	}
	cmd.Flags().String("series", "", "CSV file with the return series")
	addColumnFlag(cmd.Flags())
	cmd.Flags().Float64("rf", 0, "Risk-free rate (defaults to the configured value)")
	cmd.Flags().Float64("rp", 0, "Precomputed portfolio return (summary mode)")
	cmd.Flags().Float64("sd", 0, "Precomputed standard deviation (summary mode)")
	return cmd
}

func runSharpe(cmd *cobra.Command, _ []string) error {
	rf := cfg.RiskFreeRate
	if cmd.Flags().Changed("rf") {
		rf, _ = cmd.Flags().GetFloat64("rf")
	}

	seriesPath, _ := cmd.Flags().GetString("series")
	hasRP := cmd.Flags().Changed("rp")
	hasSD := cmd.Flags().Changed("sd")

	var ratio float64
	switch {
	case seriesPath != "":
		if hasRP || hasSD {
			return fmt.Errorf("--series and summary figures (--rp/--sd) are mutually exclusive")
		}
		column, _ := cmd.Flags().GetInt("column")
		series, err := loader.Series(seriesPath, column)
		if err != nil {
			return err
		}
		log.Info().Str("series", seriesPath).Int("points", len(series)).Float64("rf", rf).Msg("series loaded")
		ratio = risk.Sharpe(series, rf)
	case hasRP && hasSD:
		rp, _ := cmd.Flags().GetFloat64("rp")
		sd, _ := cmd.Flags().GetFloat64("sd")
		ratio = risk.SharpeFromSummary(rp, rf, sd)
	default:
		return fmt.Errorf("either --series or both --rp and --sd are required")
	}

	fmt.Printf("sharpe: %v\n", round(ratio))
	return nil
}
