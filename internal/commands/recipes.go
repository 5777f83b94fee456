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
	Register(&RecipesCmd{})
}

// RecipesCmd implements the recipes command.
type RecipesCmd struct{}

func (c *RecipesCmd) Name() string      { return "recipes" }
func (c *RecipesCmd) Aliases() []string { return nil }
func (c *RecipesCmd) Synopsis() string  { return "Print all recipes" }
func (c *RecipesCmd) Usage() string     { return "anylist recipes [common flags]" }
func (c *RecipesCmd) NeedsAuth() bool   { return true }

func (c *RecipesCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RecipesCmd) Run(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	recipes, err := cl.GetRecipes(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if len(recipes) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no recipes found")
		}
		return exitcode.Success
	}

	for i, recipe := range recipes {
		output.FormatRecipe(out, i+1, recipe)
	}

	return exitcode.Success
}
