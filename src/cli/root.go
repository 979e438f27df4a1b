package cli

import (
	"github.com/MMN3003/lightcone/src/config"
	"github.com/MMN3003/lightcone/src/logger"
	"github.com/MMN3003/lightcone/src/wallet/repository"
	"github.com/MMN3003/lightcone/src/wallet/usecase"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfg *config.Config
	log *logger.Logger
}

func (a *app) service(opts ...usecase.Option) (*usecase.Service, error) {
	return usecase.NewService(repository.NewStaticRepo(a.log), a.log, opts...)
}

// NewRootCmd returns the lightcone command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "lightcone",
		Short:         "Loopring exchange wallet configuration",
		Long:          "Query the static deployment table (tokens, markets, gas limits, fees) and convert between token units and base units.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.NewWithWriter(cfg.Env, cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.AddCommand(
		ConfigCmd(a),
		TokensCmd(a),
		MarketsCmd(a),
		GasCmd(a),
		FeeCmd(a),
		FromWEICmd(a),
		ToWEICmd(a),
		VerifyCmd(a),
		BalanceCmd(a),
		ServeCmd(a),
	)
	return cmd
}
