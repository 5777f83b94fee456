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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "anylist help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  anylist                                            List all items on all lists
  anylist list [common flags] <list-name>            List items in a specific list
  anylist add [common flags] --list <list-name> [--qty <q>] [--note <n>] [--category <c>] <name...>
  anylist check [common flags] <list-name> <n>
  anylist uncheck [common flags] <list-name> <n>
  anylist rm [common flags] <list-name> <n>
  anylist clear [common flags] <list-name>
  anylist lists [common flags]
  anylist createlist [common flags] <list-name>
  anylist addlist [common flags] <list-name>
  anylist rmlist [common flags] [--force] <list-name>
  anylist recipes [common flags]
  anylist favourites [common flags]
  anylist mealplan [common flags] [--from <date>] [--to <date>] [--to-list <list-name>]
  anylist login [common flags] --email <email> --password <password>
  anylist logout [common flags]
  anylist help
  anylist version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
