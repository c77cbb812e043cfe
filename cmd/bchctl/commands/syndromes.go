package commands

import (
	"github.com/spf13/cobra"

	"github.com/renproject/checkdigit/hamming"
	"github.com/renproject/checkdigit/server"
)

func syndromesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "syndromes <word>",
		Short: "Print the four syndromes of a ten digit word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, err := hamming.ParseCodeword(args[0])
			if err != nil {
				return err
			}
			syndrome, err := codec.Code().Syndromes(word)
			if err != nil {
				return err
			}
			resp := server.SyndromesResponse{Input: args[0], Syndromes: syndrome.Ints()}
			return printResult(cmd.OutOrStdout(), resp, syndrome.String())
		},
	}
	return cmd
}
