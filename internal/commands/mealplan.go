package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"anylist/internal/client"
	"anylist/internal/config"
	"anylist/internal/exitcode"
	"anylist/internal/output"
)

func init() {
	Register(&MealPlanCmd{})
}

// MealPlanCmd implements the mealplan command. With --to-list, the
// ingredients of every planned recipe in the range are added to the
// named shopping list instead of printing the events.
type MealPlanCmd struct {
	from   string
	to     string
	toList string
}

// SetRange sets the date range (for testing).
func (c *MealPlanCmd) SetRange(from, to string) {
	c.from = from
	c.to = to
}

// SetToList sets the target list name (for testing).
func (c *MealPlanCmd) SetToList(name string) {
	c.toList = name
}

func (c *MealPlanCmd) Name() string      { return "mealplan" }
func (c *MealPlanCmd) Aliases() []string { return nil }
func (c *MealPlanCmd) Synopsis() string  { return "Print meal plan events" }
func (c *MealPlanCmd) Usage() string {
	return "anylist mealplan [--from <date>] [--to <date>] [--to-list <list-name>]"
}
func (c *MealPlanCmd) NeedsAuth() bool { return true }

func (c *MealPlanCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.from, "from", "", "")
	fs.StringVar(&c.to, "to", "", "")
	fs.StringVar(&c.toList, "to-list", "", "")
}

func (c *MealPlanCmd) Run(ctx context.Context, cfg *config.Config, cl *client.Client, args []string, out, errOut io.Writer) int {
	from, to := c.from, c.to
	if from == "" {
		from = time.Now().Format("2006-01-02")
	}
	if to == "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			fmt.Fprintf(errOut, "error: invalid date: %s\n", from)
			return exitcode.UserError
		}
		to = t.AddDate(0, 0, 6).Format("2006-01-02")
	}

	if c.toList != "" {
		return c.addToList(ctx, cfg, cl, from, to, out, errOut)
	}

	events, err := cl.GetMealPlanEvents(ctx, from, to)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if len(events) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no events found")
		}
		return exitcode.Success
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	for _, event := range events {
		output.FormatMealPlanEvent(out, event)
	}

	return exitcode.Success
}

func (c *MealPlanCmd) addToList(ctx context.Context, cfg *config.Config, cl *client.Client, from, to string, out, errOut io.Writer) int {
	list, err := cl.GetListByName(ctx, c.toList)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Fprintf(errOut, "error: list not found: %s\n", c.toList)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if err := cl.AddMealPlanIngredientsToList(ctx, list.ID, from, to); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
