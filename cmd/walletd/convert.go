package main

import (
	"fmt"
	"os"

	"github.com/openpurse/walletd/internal/core/services"
	"github.com/openpurse/walletd/internal/platform/config"
	"github.com/openpurse/walletd/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// convertCmd performs a one-shot conversion against the configured currency
// table, without starting the server.
var convertCmd = &cobra.Command{
	Use:   "convert <amount> <fromCurrency> <toCurrency>",
	Short: "Convert an amount between registered currencies",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		amount, err := decimal.NewFromString(args[0])
		if err != nil {
			exitWithError(fmt.Errorf("invalid amount %q: %w", args[0], err))
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			exitWithError(err)
		}
		registry, err := buildRegistry(cfg)
		if err != nil {
			exitWithError(err)
		}
		converter := services.NewConverterService(registry)

		converted, err := converter.Convert(amount, args[1], args[2])
		if err != nil {
			exitWithError(err)
		}

		toCurrency, err := registry.Lookup(args[2])
		if err != nil {
			exitWithError(err)
		}
		fmt.Printf("%s %s\n", utils.FormatWithCurrencyPrecision(converted, toCurrency), toCurrency.CurrencyCode)
	},
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
