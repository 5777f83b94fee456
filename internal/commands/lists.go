package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"anylist/internal/client"
	"anylist/internal/config"
	"anylist/internal/exitcode"
	"anylist/internal/output"
)

func init() {
	Register(&ListsCmd{})
}

// ListsCmd implements the lists command.
type ListsCmd struct{}

func (c *ListsCmd) Name() string      { return "lists" }
func (c *ListsCmd) Aliases() []string { return nil }
func (c *ListsCmd) Synopsis() string  { return "Print all shopping lists" }
func (c *ListsCmd) Usage() string     { return "anylist lists [common flags]" }
func (c *ListsCmd) NeedsAuth() bool   { return true }

func (c *ListsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListsCmd) Run(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	lists, err := cl.GetLists(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	for _, list := range lists {
		output.FormatListName(out, list)
	}

	return exitcode.Success
}
