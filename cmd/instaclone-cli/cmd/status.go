package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/instaclone/internal/tokenstore"
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether a session token is stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := opts.tokens()
			if err != nil {
				return err
			}
			_, err = tokens.Load()
			switch {
			case errors.Is(err, tokenstore.ErrNoToken):
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			case err != nil:
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
			return nil
		},
	}
}
