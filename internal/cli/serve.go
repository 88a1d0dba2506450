package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit/internal/api"
	"github.com/dmitrymomot/rutkit/pkg/config"
	"github.com/dmitrymomot/rutkit/pkg/logger"
	"github.com/dmitrymomot/rutkit/pkg/requestid"
)

// newServeCommand constructs the `serve` command. Configuration comes from
// the environment; see api.Config.
func newServeCommand(a *app) *cobra.Command {
	var envFiles []string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and demo page",
		Long: "Runs the HTTP API and demo page with configuration read from the environment.\n" +
			"Logging follows APP_ENV and LOG_LEVEL; --log-level and --log-format override them when set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(envFiles) > 0 {
				if err := config.LoadEnv(envFiles...); err != nil {
					return err
				}
			}
			var cfg api.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}

			log := logger.New(a.serverLogOptions(cmd, cfg)...)
			logger.SetAsDefault(log)

			return api.Run(cmd.Context(), cfg, log)
		},
	}
	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "Read environment variables from these files first")
	return cmd
}

// serverLogOptions starts from the environment preset and lets explicitly
// set logging flags win over APP_ENV and LOG_LEVEL.
func (a *app) serverLogOptions(cmd *cobra.Command, cfg api.Config) []logger.Option {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "rut"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cmd.Flags().Changed("log-level") {
		opts = append(opts, logger.WithLevelName(a.logLevel))
	}
	if cmd.Flags().Changed("log-format") {
		opts = append(opts, logger.WithFormat(logger.Format(a.logFormat)))
	}
	return opts
}
