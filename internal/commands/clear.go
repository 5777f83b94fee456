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
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command.
type ClearCmd struct{}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Delete all crossed-off items" }
func (c *ClearCmd) Usage() string     { return "anylist clear <list-name>" }
func (c *ClearCmd) NeedsAuth() bool   { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	list, err := cl.GetListByName(ctx, name)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Fprintf(errOut, "error: list not found: %s\n", name)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if err := cl.DeleteAllCrossedOffItems(ctx, list.ID); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
