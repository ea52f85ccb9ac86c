package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := opts.tokens()
			if err != nil {
				return err
			}
			if err := tokens.Delete(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
