package cmd

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/nfrund/instaclone/internal/domain"
	"github.com/nfrund/instaclone/internal/loginform"
	"github.com/spf13/cobra"
)

var errInvalidInput = errors.New("invalid credentials input")

func newLoginCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			userName, _ := cmd.Flags().GetString("user")
			password, _ := cmd.Flags().GetString("password")
			out := cmd.OutOrStdout()
			in := cmd.InOrStdin()
			lines := bufio.NewReader(in)

			if userName == "" {
				fmt.Fprint(out, "Username: ")
				line, err := readLine(lines)
				if err != nil {
					return err
				}
				userName = line
			}
			if password == "" {
				fmt.Fprint(out, "Password: ")
				p, err := opts.readPassword(in, lines)
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = p
				fmt.Fprintln(out)
			}

			f := loginform.New(domain.NavigationState{})
			_ = f.Change(loginform.FieldUserName, userName)
			_ = f.Change(loginform.FieldPassword, password)
			if snap := f.Snapshot(); !snap.CanSubmit() {
				for _, field := range loginform.Rules.Fields() {
					if msg := snap.Error(field); msg != "" {
						fmt.Fprintln(cmd.ErrOrStderr(), msg)
					}
				}
				return errInvalidInput
			}

			auth, err := opts.authenticator()
			if err != nil {
				return err
			}
			tokens, err := opts.tokens()
			if err != nil {
				return err
			}

			submitOpts := []loginform.SubmitterOption{}
			if opts.Config != nil {
				submitOpts = append(submitOpts, loginform.WithTimeout(opts.Config.GetAuthTimeout()))
			}
			outcome, err := loginform.NewSubmitter(auth, submitOpts...).Submit(cmd.Context(), f, tokens)
			if err != nil {
				return err
			}
			if msg := f.Snapshot().Error(loginform.FieldResult); msg != "" {
				return errors.New(msg)
			}
			if !outcome.SessionStarted {
				return errors.New("the server did not start a session")
			}
			fmt.Fprintf(out, "Logged in as %s.\n", userName)
			return nil
		},
	}
	cmd.Flags().StringP("user", "u", "", "username (prompted when empty)")
	cmd.Flags().StringP("password", "p", "", "password (prompted when empty; prefer the prompt)")
	return cmd
}
