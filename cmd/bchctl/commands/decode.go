package commands

import (
	"github.com/spf13/cobra"

	"github.com/renproject/checkdigit/bch"
	"github.com/renproject/checkdigit/hamming"
	"github.com/renproject/checkdigit/server"
)

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <word>",
		Short: "Check a ten digit word and correct up to two errors",
		Long: "Decode prints the outcome of checking a ten digit word. Corrected words\n" +
			"are printed with the positions and magnitudes that were fixed. The command\n" +
			"fails when the word cannot be corrected.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, err := hamming.ParseCodeword(args[0])
			if err != nil {
				return err
			}
			result, err := codec.Decode(word)
			if err != nil {
				return err
			}
			if result.IsCorrected() {
				logger.Warn("corrected invalid codeword", "input", args[0], "corrections", result.Corrections())
			}
			if err := printResult(cmd.OutOrStdout(), server.NewDecodeResponse(args[0], result), result.String()); err != nil {
				return err
			}
			if result.Outcome() == bch.Uncorrectable {
				return result.Err()
			}
			return nil
		},
	}
	return cmd
}
