package main

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/corpfin/riskstats/internal/config"
	"github.com/corpfin/riskstats/stats"
)

const (
	appName = "riskstats"
	version = "v0.1.0"
)

// cfg carries the CLI defaults; loadConfig overlays a yaml file on top.
var cfg = config.Default()

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	log.Logger = log.With().Str("run_id", uuid.NewString()).Logger()

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Descriptive statistics and risk metrics over return series",
		Version: version,
		Long: `riskstats computes descriptive statistics (mean, variance, standard
deviation, covariance) and market risk metrics (Beta, Sharpe ratio) over
return series stored as CSV files.`,
		PersistentPreRunE: loadConfig,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to a yaml file with defaults (risk-free rate, rounding)")

	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newBetaCmd())
	rootCmd.AddCommand(newSharpeCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil || path == "" {
		return err
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded
	log.Debug().Str("path", path).Msg("config loaded")
	return nil
}

// round applies the configured output rounding; zero decimals means full
// precision.
func round(v float64) float64 {
	if cfg.RoundDecimals == 0 {
		return v
	}
	return stats.RoundTo(v, cfg.RoundDecimals)
}
