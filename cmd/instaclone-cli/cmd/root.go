package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nfrund/instaclone/internal/config"
	"github.com/nfrund/instaclone/internal/domain"
	"github.com/nfrund/instaclone/internal/graphql"
	"github.com/nfrund/instaclone/internal/logging"
	"github.com/nfrund/instaclone/internal/tokenstore"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Options supplies the services behind the commands. Nil fields are built
// from the environment when a command runs.
type Options struct {
	Authenticator domain.Authenticator
	Tokens        *tokenstore.Store
	Config        *config.Config
	// ReadPassword reads a password without echo.
	ReadPassword func() (string, error)
}

// Execute runs the CLI with the default services.
func Execute() {
	if err := NewRootCmd(Options{}).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd(opts Options) *cobra.Command {
	root := &cobra.Command{
		Use:   "instaclone-cli",
		Short: "Instaclone command-line client",
		Long: `Instaclone CLI logs in to an Instaclone server from the terminal.

Available commands:
  login     Log in and store the session token
  logout    Forget the stored session token
  status    Report whether a session token is stored
  version   Print the version`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		slog.SetDefault(logging.NewWithWriter(cmd.ErrOrStderr(), "text", level))
	}

	root.AddCommand(newLoginCmd(&opts), newLogoutCmd(&opts), newStatusCmd(&opts), newVersionCmd())
	return root
}

func (o *Options) config() (*config.Config, error) {
	if o.Config == nil {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		o.Config = cfg
	}
	return o.Config, nil
}

func (o *Options) authenticator() (domain.Authenticator, error) {
	if o.Authenticator != nil {
		return o.Authenticator, nil
	}
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	return graphql.NewClient(cfg.GetGraphQLEndpoint(), nil, slog.Default()), nil
}

func (o *Options) tokens() (*tokenstore.Store, error) {
	if o.Tokens != nil {
		return o.Tokens, nil
	}
	return tokenstore.Default(slog.Default())
}

// readPassword reads without echo from a terminal, otherwise a plain line
// from lines, which must wrap in.
func (o *Options) readPassword(in io.Reader, lines *bufio.Reader) (string, error) {
	if o.ReadPassword != nil {
		return o.ReadPassword()
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		return string(b), err
	}
	return readLine(lines)
}

func readLine(lines *bufio.Reader) (string, error) {
	line, err := lines.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
