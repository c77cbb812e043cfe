package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/renproject/checkdigit/bch"
	"github.com/renproject/checkdigit/hamming"
)

var (
	logLevel   string
	jsonOutput bool

	logger *log.Logger
	codec  bch.Codec
)

// Execute runs the root command with the process arguments.
func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bchctl",
		Short:         "Encode and decode modulus 11 check-digit numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}
			logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				Level:           level,
				ReportTimestamp: true,
				Prefix:          "bchctl",
			})
			codec = bch.New(hamming.Standard(), bch.WithLogger(logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(encodeCmd(), decodeCmd(), syndromesCmd(), serveCmd())
	return root
}
