package cli

import (
	"github.com/spf13/cobra"

	"textconv/src/app/server"
	"textconv/src/infra/config"
	"textconv/src/infra/logger"
	"textconv/src/infra/metrics"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	out := logger.Output(cfg.Log)
	defer out.Close()
	log := logger.NewWithWriter(cfg.Log, out)
	log.Info("starting application",
		"addr", cfg.Server.Addr(),
		"debug", cfg.Server.Debug,
		"log_level", cfg.Log.Level,
		"config_file", cfg.Path(),
	)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	srv := server.New(cfg, log, m)

	// Run blocks until shutdown signal is received
	return srv.Run(cmd.Context())
}
