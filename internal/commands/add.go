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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	listName string
	quantity string
	note     string
	category string
}

// SetListName sets the list name (for testing).
func (c *AddCmd) SetListName(name string) {
	c.listName = name
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add an item to a list" }
func (c *AddCmd) Usage() string {
	return "anylist add --list <list-name> [--qty <quantity>] [--note <note>] [--category <category>] <name...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
	fs.StringVar(&c.quantity, "qty", "", "")
	fs.StringVar(&c.note, "note", "", "")
	fs.StringVar(&c.category, "category", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: item name required")
		return exitcode.UserError
	}

	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(errOut, "error: item name required")
		return exitcode.UserError
	}

	if c.listName == "" {
		fmt.Fprintln(errOut, "error: list name required (use --list)")
		return exitcode.UserError
	}

	list, err := cl.GetListByName(ctx, c.listName)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Fprintf(errOut, "error: list not found: %s\n", c.listName)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if _, err := cl.AddItemWithDetails(ctx, list.ID, name, optional(c.quantity), optional(c.note), optional(c.category)); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// optional maps an empty flag value to an absent field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
