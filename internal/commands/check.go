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
	"anylist/internal/service"
)

func init() {
	Register(&CheckCmd{})
	Register(&UncheckCmd{})
}

// CheckCmd implements the check command (cross an item off).
type CheckCmd struct{}

func (c *CheckCmd) Name() string      { return "check" }
func (c *CheckCmd) Aliases() []string { return []string{"done"} }
func (c *CheckCmd) Synopsis() string  { return "Cross an item off" }
func (c *CheckCmd) Usage() string     { return "anylist check <list-name> <n>" }
func (c *CheckCmd) NeedsAuth() bool   { return true }

func (c *CheckCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CheckCmd) Run(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	return runSetChecked(ctx, cfg, cl, args, true, out, errOut)
}

// UncheckCmd implements the uncheck command (restore a crossed-off item).
type UncheckCmd struct{}

func (c *UncheckCmd) Name() string      { return "uncheck" }
func (c *UncheckCmd) Aliases() []string { return nil }
func (c *UncheckCmd) Synopsis() string  { return "Restore a crossed-off item" }
func (c *UncheckCmd) Usage() string     { return "anylist uncheck <list-name> <n>" }
func (c *UncheckCmd) NeedsAuth() bool   { return true }

func (c *UncheckCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UncheckCmd) Run(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	return runSetChecked(ctx, cfg, cl, args, false, out, errOut)
}

// runSetChecked is the shared implementation for check and uncheck.
func runSetChecked(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, checked bool, out, errOut io.Writer) int {
	list, item, code := resolveItemArgs(ctx, cl, args, errOut)
	if code != exitcode.Success {
		return code
	}

	var err error
	if checked {
		err = cl.CrossOffItem(ctx, list.ID, item.ID)
	} else {
		err = cl.UncheckItem(ctx, list.ID, item.ID)
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// resolveItemArgs parses and resolves an item reference, reporting
// errors in the standard form. A non-Success code means the caller
// should return it.
func resolveItemArgs(ctx context.Context, cl *client.Client, args []string, errOut io.Writer) (service.List, service.ListItem, int) {
	ref, err := ParseItemRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return service.List{}, service.ListItem{}, exitcode.UserError
	}

	list, item, err := ResolveItem(ctx, cl, ref)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			fmt.Fprintf(errOut, "error: list not found: %s\n", ref.ListName)
			return service.List{}, service.ListItem{}, exitcode.UserError
		case strings.Contains(err.Error(), "out of range"):
			fmt.Fprintf(errOut, "error: %v\n", err)
			return service.List{}, service.ListItem{}, exitcode.UserError
		default:
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return service.List{}, service.ListItem{}, exitcode.BackendError
		}
	}

	return list, item, exitcode.Success
}
