package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/MMN3003/lightcone/src/Infrastructure/ethereum"
	"github.com/MMN3003/lightcone/src/wallet/usecase"
	"github.com/spf13/cobra"
)

// chainService dials ETH_RPC_URL, checks the endpoint serves the table's
// chain and returns a service wired to it. RPC_TIMEOUT bounds the setup and
// then each chain read on its own. The caller must call the returned cleanup.
func (a *app) chainService(ctx context.Context) (*usecase.Service, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Ethereum.RPCTimeout)
	defer cancel()

	client, err := ethereum.Dial(ctx, a.cfg.Ethereum.RPCURL)
	if err != nil {
		return nil, nil, err
	}
	svc, err := a.service(
		usecase.WithChainReader(client),
		usecase.WithVerifyConcurrency(a.cfg.Ethereum.VerifyConcurrency),
		usecase.WithCallTimeout(a.cfg.Ethereum.RPCTimeout),
	)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	if err := client.EnsureChainID(ctx, svc.ChainID()); err != nil {
		client.Close()
		return nil, nil, err
	}
	return svc, client.Close, nil
}

// VerifyCmd compares configured token digits with on-chain decimals().
func VerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check configured token digits against on-chain decimals()",
		Long:  "Check configured token digits against on-chain decimals(). Requires ETH_RPC_URL. Exits non-zero when any token mismatches or cannot be read.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, cleanup, err := a.chainService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			checks, verifyErr := svc.VerifyTokens(ctx)
			if verifyErr != nil && checks == nil {
				return verifyErr
			}

			bad := 0
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SYMBOL\tCONFIGURED\tON_CHAIN\tSTATUS")
			for _, c := range checks {
				status := "ok"
				onChain := fmt.Sprint(c.OnChain)
				switch {
				case c.Err != nil:
					status, onChain = "error: "+c.Err.Error(), "-"
					bad++
				case !c.OK():
					status = "MISMATCH"
					bad++
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", c.Symbol, c.Configured, onChain, status)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if verifyErr != nil {
				return verifyErr
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d tokens failed verification", bad, len(checks))
			}
			return nil
		},
	}
}

// BalanceCmd prints a holder's balance of a token in token units.
func BalanceCmd(a *app) *cobra.Command {
	var precision int32

	cmd := &cobra.Command{
		Use:   "balance SYMBOL HOLDER",
		Short: "Show a holder's on-chain balance in token units",
		Long:  "Show a holder's on-chain balance in token units. Requires ETH_RPC_URL.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, cleanup, err := a.chainService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			value, err := svc.Balance(ctx, args[0], args[1], precision)
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
