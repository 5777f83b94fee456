package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"anylist/internal/client"
	"anylist/internal/config"
	"anylist/internal/exitcode"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	email    string
	password string
}

// SetCredentials sets the email and password (for testing).
func (c *LoginCmd) SetCredentials(email, password string) {
	c.email = email
	c.password = password
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Log in with email and password" }
func (c *LoginCmd) Usage() string     { return "anylist login --email <email> --password <password>" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	// Check if already logged in
	if cfg.HasTokens() {
		tokens, err := cfg.LoadTokens()
		if err == nil && tokens.RefreshToken != "" {
			if !cfg.Quiet {
				fmt.Fprintln(out, "already logged in")
			}
			return exitcode.Success
		}
	}

	if c.email == "" {
		fmt.Fprintln(errOut, "error: email required")
		return exitcode.UserError
	}
	if c.password == "" {
		fmt.Fprintln(errOut, "error: password required")
		return exitcode.UserError
	}

	logged, err := client.Login(ctx, c.email, c.password)
	if err != nil {
		fmt.Fprintf(errOut, "error: login failed: %v\n", err)
		return exitcode.AuthError
	}

	if err := cfg.SaveTokens(logged.Tokens()); err != nil {
		fmt.Fprintf(errOut, "error: failed to save tokens: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "logged in as %s\n", logged.UserID())
	}
	return exitcode.Success
}
