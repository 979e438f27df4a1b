package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/MMN3003/lightcone/src/wallet/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

// ConfigCmd prints the deployment constants.
func ConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show chain id, max fee bips and exchange address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "chainId: %d\n", svc.ChainID())
			fmt.Fprintf(out, "maxFeeBips: %d\n", svc.MaxFeeBips())
			fmt.Fprintf(out, "exchangeAddress: %s\n", svc.ExchangeAddress())
			return nil
		},
	}
}

// TokensCmd lists tokens, or shows one by symbol or address.
func TokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [SYMBOL|ADDRESS]",
		Short: "List tokens or show a single token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}

			tokens := svc.Tokens()
			if len(args) == 1 {
				tok, err := svc.TokenBySymbol(args[0])
				if err != nil && common.IsHexAddress(args[0]) {
					tok, err = svc.TokenByAddress(args[0])
				}
				if err != nil {
					return err
				}
				tokens = []domain.Token{tok}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSYMBOL\tDIGITS\tADDRESS\tNAME")
			for _, t := range tokens {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", t.ID, t.Symbol, t.Digits, t.Address, t.Name)
			}
			return w.Flush()
		},
	}
}

// MarketsCmd lists markets, or shows the market for a token pair.
func MarketsCmd(a *app) *cobra.Command {
	var quote string

	cmd := &cobra.Command{
		Use:   "markets [BASE QUOTE]",
		Short: "List markets or show the market of a token pair",
		Long:  "List markets or show the market of a token pair. The pair may be given in either order.",
		Args:  cobra.MatchAll(cobra.RangeArgs(0, 2), notOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}

			var markets []domain.Market
			switch {
			case len(args) == 2:
				m, err := svc.MarketBySymbol(args[0], args[1])
				if err != nil {
					return err
				}
				markets = []domain.Market{m}
			case quote != "":
				markets = svc.MarketsByQuote(quote)
			default:
				markets = svc.Markets()
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MARKET\tPRICE_PRECISION")
			for _, m := range markets {
				fmt.Fprintf(w, "%s\t%d\n", m.Name(), m.PricePrecision)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&quote, "quote", "", "only list markets quoted in this token")
	return cmd
}

func notOneArg(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("expected BASE and QUOTE, got only %q", args[0])
	}
	return nil
}

func GasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gas TYPE",
		Short: "Show the gas limit of an operation type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			g, err := svc.GasLimitByType(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.GasInWEI)
			return nil
		},
	}
}

func FeeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fee TYPE",
		Short: "Show the fee of an operation type in WEI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			f, err := svc.FeeByType(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.FeeInWEI.String())
			return nil
		},
	}
}
