package main

import (
	"context"
	"fmt"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/SscSPs/shopdesk_erp/internal/core/services"
	"github.com/SscSPs/shopdesk_erp/internal/dto"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func rateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Show or change the default exchange rate",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the default exchange rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withCurrencyService(cmd.Context(), v, func(_ context.Context, svc *services.CurrencyService) error {
				fmt.Fprintf(cmd.OutOrStdout(), "1 %s = %s %s\n",
					domain.BaseCurrency, formatRate(svc.GetDefaultRate()), domain.SecondaryCurrency)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <rate>",
		Short: "Change the default exchange rate",
		Long: `Change the default SYP per USD rate. Transactions that already captured
a rate keep it; only new transactions and conversions without an explicit rate
use the new default.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := dto.ParseExchangeRateInput(args[0])
			if err != nil {
				return err
			}
			return withCurrencyService(cmd.Context(), v, func(ctx context.Context, svc *services.CurrencyService) error {
				svc.SetDefaultRate(ctx, rate)
				fmt.Fprintf(cmd.OutOrStdout(), "Default exchange rate set: 1 %s = %s %s\n",
					domain.BaseCurrency, formatRate(svc.GetDefaultRate()), domain.SecondaryCurrency)
				return nil
			})
		},
	})

	return cmd
}
