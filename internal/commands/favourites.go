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
	Register(&FavouritesCmd{})
}

// FavouritesCmd implements the favourites command.
type FavouritesCmd struct{}

func (c *FavouritesCmd) Name() string      { return "favourites" }
func (c *FavouritesCmd) Aliases() []string { return []string{"favorites", "favs"} }
func (c *FavouritesCmd) Synopsis() string  { return "Print favourite items" }
func (c *FavouritesCmd) Usage() string     { return "anylist favourites [common flags]" }
func (c *FavouritesCmd) NeedsAuth() bool   { return true }

func (c *FavouritesCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FavouritesCmd) Run(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	favourites, err := cl.GetFavourites(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if len(favourites) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no favourites found")
		}
		return exitcode.Success
	}

	for i, item := range favourites {
		output.FormatFavourite(out, i+1, item)
	}

	return exitcode.Success
}
