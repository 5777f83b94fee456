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
	"anylist/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `anylist` (no args) and `anylist list <list-name>`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return nil }
func (c *ListCmd) Synopsis() string  { return "Print shopping list items" }
func (c *ListCmd) Usage() string     { return "anylist list [common flags] <list-name>" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return c.listAll(ctx, cfg, cl, out, errOut)
	}

	listName := strings.Join(args, " ")
	return c.listOne(ctx, cfg, cl, listName, out, errOut)
}

// listAll prints every non-empty list with its items (anylist with no args).
func (c *ListCmd) listAll(ctx context.Context, cfg *config.Config, cl *client.Client, out, errOut io.Writer) int {
	lists, err := cl.GetLists(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	hasAnyItems := false
	for _, list := range lists {
		if len(list.Items) == 0 {
			continue
		}
		output.FormatListHeader(out, list.Name)
		for i, item := range list.Items {
			output.FormatItem(out, i+1, item)
		}
		hasAnyItems = true
	}

	if !hasAnyItems && !cfg.Quiet {
		fmt.Fprintln(out, "no items found")
	}

	return exitcode.Success
}

// listOne prints a single list's items (anylist list <name>).
func (c *ListCmd) listOne(ctx context.Context, cfg *config.Config, cl *client.Client, listName string, out, errOut io.Writer) int {
	listName = strings.TrimSpace(listName)
	if listName == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	list, err := cl.GetListByName(ctx, listName)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Fprintf(errOut, "error: list not found: %s\n", listName)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	// Print list section (even if empty)
	output.FormatListHeader(out, list.Name)
	for i, item := range list.Items {
		output.FormatItem(out, i+1, item)
	}

	return exitcode.Success
}
