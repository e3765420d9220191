package main

import (
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"mediadex/internal/catalog"
	"mediadex/internal/config"
	"mediadex/internal/logging"
	"mediadex/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the reporting page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				if override := strings.TrimSpace(bind); override != "" {
					cfg.Server.Bind = override
				}

				logger, err := logging.NewFromConfig(cfg)
				if err != nil {
					return err
				}

				runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				srv := server.New(cfg, store, logger)
				if err := srv.Start(runCtx); err != nil {
					return err
				}
				defer srv.Stop()

				<-runCtx.Done()
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Override the configured bind address")
	return cmd
}
