package main

import (
	"os"

	"github.com/openpurse/walletd/internal/core/domain"
	"github.com/openpurse/walletd/internal/platform/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "walletd",
	Short: "Currency conversion and spend-authorization wallet service",
	Long: `walletd holds a single wallet balance in a reference currency, converts
amounts between registered currencies with half-to-even rounding, and gates
every send on an authorize-then-commit check against the balance.

Run 'walletd serve' to expose the HTTP API, or 'walletd convert' for one-shot
conversions against the configured currency table.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(convertCmd)
}

// buildRegistry turns the configured currency table into the domain registry.
func buildRegistry(cfg *config.Config) (*domain.Registry, error) {
	currencies := make([]domain.Currency, len(cfg.Currencies))
	for i, c := range cfg.Currencies {
		currencies[i] = domain.Currency{
			CurrencyCode:  c.Code,
			Symbol:        c.Symbol,
			Name:          c.Name,
			Rate:          c.Rate,
			SubunitDigits: c.SubunitDigits,
		}
	}
	return domain.NewRegistry(currencies, cfg.ReferenceCurrency)
}
