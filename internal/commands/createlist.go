package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"anylist/internal/client"
	"anylist/internal/config"
	"anylist/internal/exitcode"
)

func init() {
	Register(&CreateListCmd{})
	Register(&AddListCmd{})
}

// CreateListCmd implements the createlist command.
type CreateListCmd struct{}

func (c *CreateListCmd) Name() string      { return "createlist" }
func (c *CreateListCmd) Aliases() []string { return nil }
func (c *CreateListCmd) Synopsis() string  { return "Create a new shopping list" }
func (c *CreateListCmd) Usage() string     { return "anylist createlist [common flags] <list-name>" }
func (c *CreateListCmd) NeedsAuth() bool   { return true }

func (c *CreateListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CreateListCmd) Run(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	return runCreateList(ctx, cfg, cl, args, out, errOut)
}

// AddListCmd is an alias for CreateListCmd.
type AddListCmd struct{}

func (c *AddListCmd) Name() string      { return "addlist" }
func (c *AddListCmd) Aliases() []string { return nil }
func (c *AddListCmd) Synopsis() string  { return "Create a new shopping list (alias for createlist)" }
func (c *AddListCmd) Usage() string     { return "anylist addlist [common flags] <list-name>" }
func (c *AddListCmd) NeedsAuth() bool   { return true }

func (c *AddListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddListCmd) Run(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	return runCreateList(ctx, cfg, cl, args, out, errOut)
}

// runCreateList is the shared implementation for createlist and addlist commands.
func runCreateList(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	// Check if list already exists
	_, err := cl.GetListByName(ctx, name)
	if err == nil {
		fmt.Fprintf(errOut, "error: list already exists: %s\n", name)
		return exitcode.UserError
	}
	if !strings.Contains(err.Error(), "not found") {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if _, err := cl.CreateList(ctx, name); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
