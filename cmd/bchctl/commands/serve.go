package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/renproject/checkdigit/server"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		listen     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the check-digit operations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				cfg.Server.Listen = listen
			}
			// The flag wins over the file.
			if !cmd.Flags().Changed("log-level") {
				level, err := log.ParseLevel(cfg.LogLevel)
				if err != nil {
					return fmt.Errorf("parse log_level: %w", err)
				}
				logger.SetLevel(level)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, cfg.Server, codec, logger)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a toml config file")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address, overriding the config file")
	return cmd
}
