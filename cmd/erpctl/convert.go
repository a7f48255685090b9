package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SscSPs/shopdesk_erp/internal/apperrors"
	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/SscSPs/shopdesk_erp/internal/core/services"
	"github.com/SscSPs/shopdesk_erp/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func convertCmd(v *viper.Viper) *cobra.Command {
	var (
		from string
		to   string
		rate float64
	)

	cmd := &cobra.Command{
		Use:   "convert <amount>",
		Short: "Convert an amount between USD and SYP",
		Example: `  erpctl convert 500 --from USD --to SYP
  erpctl convert 175000 --from SYP --rate 3550`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
				return fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, args[0])
			}
			fromCur, ok := domain.ParseCurrency(from)
			if !ok {
				return fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, from)
			}
			toCur := fromCur.Other()
			if to != "" {
				if toCur, ok = domain.ParseCurrency(to); !ok {
					return fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, to)
				}
			}

			return withCurrencyService(cmd.Context(), v, func(_ context.Context, svc *services.CurrencyService) error {
				result, err := svc.Convert(amount, fromCur, toCur, rate)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n",
					utils.FormatAmount(amount, fromCur), utils.FormatAmount(result, toCur))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", string(domain.BaseCurrency), "source currency")
	cmd.Flags().StringVar(&to, "to", "", "target currency (default: the other supported currency)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "SYP per USD; 0 uses the default rate")

	return cmd
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
