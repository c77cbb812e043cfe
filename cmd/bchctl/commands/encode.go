package commands

import (
	"github.com/spf13/cobra"

	"github.com/renproject/checkdigit/hamming"
	"github.com/renproject/checkdigit/server"
)

func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <payload>",
		Short: "Append four check digits to a six digit payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := hamming.ParsePayload(args[0])
			if err != nil {
				return err
			}
			codeword, err := codec.Encode(payload)
			if err != nil {
				return err
			}
			resp := server.EncodeResponse{Input: args[0], Codeword: codeword.String()}
			return printResult(cmd.OutOrStdout(), resp, resp.Codeword)
		},
	}
	return cmd
}
