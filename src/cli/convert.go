package cli

import (
	"fmt"

	"github.com/MMN3003/lightcone/src/wallet/domain"
	"github.com/MMN3003/lightcone/src/wallet/usecase"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// FromWEICmd converts a base-unit amount to token units.
func FromWEICmd(a *app) *cobra.Command {
	var precision int32

	cmd := &cobra.Command{
		Use:   "from-wei SYMBOL AMOUNT",
		Short: "Convert base units (WEI) of a token to token units",
		Long:  "Convert base units (WEI) of a token to token units. The result is rounded half to even at --precision fractional digits.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			value, err := svc.FromWEIWithPrecision(args[0], amount, precision)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().Int32Var(&precision, "precision", usecase.DefaultPrecision, "fractional digits in the result")
	return cmd
}

// ToWEICmd converts a token-unit amount to base units.
func ToWEICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "to-wei SYMBOL AMOUNT",
		Short: "Convert token units to base units (WEI)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			value, err := svc.ToWEI(args[0], amount)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, s)
	}
	return amount, nil
}
