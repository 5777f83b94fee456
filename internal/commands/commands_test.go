package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"anylist/internal/client"
	"anylist/internal/commands"
	"anylist/internal/config"
	"anylist/internal/exitcode"
	"anylist/internal/testutil"
)

// runCommand is a helper to run a command with a client backed by FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	var cl *client.Client
	if svc != nil {
		cl = client.New(svc)
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, cl, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// seedList creates a list with the given items and returns its id.
func seedList(t *testing.T, svc *testutil.FakeService, name string, items ...string) string {
	t.Helper()
	ctx := context.Background()
	list, err := svc.CreateList(ctx, name)
	if err != nil {
		t.Fatalf("failed to seed list: %v", err)
	}
	for _, item := range items {
		if _, err := svc.AddItem(ctx, list.ID, item); err != nil {
			t.Fatalf("failed to seed item: %v", err)
		}
	}
	return list.ID
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "anylist 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
}

// Tests for lists command
func TestListsCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	seedList(t, svc, "Groceries")
	seedList(t, svc, "Hardware")

	cmd := &commands.ListsCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	expected := "Groceries\nHardware\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

// Tests for list command
func TestListCommand_NamedList(t *testing.T) {
	svc := testutil.NewFakeService()
	seedList(t, svc, "Groceries", "Milk", "Eggs")

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"Groceries"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	expected := "------------\nGroceries\n------------\n   1  [ ] Milk\n   2  [ ] Eggs\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_NotFound(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"Nope"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: list not found: Nope\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestListCommand_NoArgsPrintsAllLists(t *testing.T) {
	svc := testutil.NewFakeService()
	seedList(t, svc, "Groceries", "Milk")
	seedList(t, svc, "Empty")
	seedList(t, svc, "Hardware", "Nails")

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}

	expected := "------------\nGroceries\n------------\n   1  [ ] Milk\n" +
		"------------\nHardware\n------------\n   1  [ ] Nails\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_NoItems(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no items found\n" {
		t.Errorf("expected %q, got %q", "no items found\n", stdout)
	}
}

// Tests for add command
func TestAddCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	listID := seedList(t, svc, "Groceries")

	cmd := &commands.AddCmd{}
	cmd.SetListName("Groceries")
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"Oat", "Milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}

	list, _ := svc.GetListByID(context.Background(), listID)
	if len(list.Items) != 1 || list.Items[0].Name != "Oat Milk" {
		t.Errorf("unexpected items: %+v", list.Items)
	}
}

func TestAddCommand_MissingList(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"Milk"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: list name required (use --list)\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestAddCommand_NoName(t *testing.T) {
	svc := testutil.NewFakeService()
	seedList(t, svc, "Groceries")

	cmd := &commands.AddCmd{}
	cmd.SetListName("Groceries")
	_, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: item name required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for check and uncheck commands
func TestCheckCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	listID := seedList(t, svc, "Groceries", "Milk", "Eggs")

	cmd := &commands.CheckCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"Groceries", "2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}

	list, _ := svc.GetListByID(context.Background(), listID)
	if list.Items[0].IsChecked {
		t.Error("expected first item unchecked")
	}
	if !list.Items[1].IsChecked {
		t.Error("expected second item checked")
	}
}

func TestUncheckCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	listID := seedList(t, svc, "Groceries", "Milk")
	ctx := context.Background()
	list, _ := svc.GetListByID(ctx, listID)
	svc.SetItemChecked(ctx, listID, list.Items[0].ID, true)

	cmd := &commands.UncheckCmd{}
	_, _, code := runCommand(t, cmd, svc, []string{"Groceries", "1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}

	list, _ = svc.GetListByID(ctx, listID)
	if list.Items[0].IsChecked {
		t.Error("expected item to be unchecked")
	}
}

func TestCheckCommand_OutOfRange(t *testing.T) {
	svc := testutil.NewFakeService()
	seedList(t, svc, "Groceries", "Milk")

	cmd := &commands.CheckCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"Groceries", "5"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: item number out of range: 5\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestCheckCommand_NoRef(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.CheckCmd{}
	_, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: item reference required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for rm command
func TestRmCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	listID := seedList(t, svc, "Groceries", "Milk", "Eggs")

	cmd := &commands.RmCmd{}
	_, _, code := runCommand(t, cmd, svc, []string{"Groceries", "1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}

	list, _ := svc.GetListByID(context.Background(), listID)
	if len(list.Items) != 1 || list.Items[0].Name != "Eggs" {
		t.Errorf("unexpected items: %+v", list.Items)
	}
}

// Tests for clear command
func TestClearCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	listID := seedList(t, svc, "Groceries", "Milk", "Eggs", "Bread")
	ctx := context.Background()
	list, _ := svc.GetListByID(ctx, listID)
	svc.SetItemChecked(ctx, listID, list.Items[0].ID, true)
	svc.SetItemChecked(ctx, listID, list.Items[2].ID, true)

	cmd := &commands.ClearCmd{}
	_, _, code := runCommand(t, cmd, svc, []string{"Groceries"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}

	list, _ = svc.GetListByID(ctx, listID)
	if len(list.Items) != 1 || list.Items[0].Name != "Eggs" {
		t.Errorf("unexpected items: %+v", list.Items)
	}
}

// Tests for createlist command
func TestCreateListCommand(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.CreateListCmd{}
	stdout, _, code := runCommand(t, cmd, svc, []string{"Groceries"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}

	lists, _ := svc.GetLists(context.Background())
	if len(lists) != 1 || lists[0].Name != "Groceries" {
		t.Errorf("unexpected lists: %+v", lists)
	}
}

func TestCreateListCommand_AlreadyExists(t *testing.T) {
	svc := testutil.NewFakeService()
	seedList(t, svc, "Groceries")

	cmd := &commands.CreateListCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"Groceries"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: list already exists: Groceries\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for rmlist command
func TestRmListCommand_NotEmpty(t *testing.T) {
	svc := testutil.NewFakeService()
	seedList(t, svc, "Groceries", "Milk")

	cmd := &commands.RmListCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"Groceries"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: list not empty (use --force)\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestRmListCommand_Force(t *testing.T) {
	svc := testutil.NewFakeService()
	seedList(t, svc, "Groceries", "Milk")

	cmd := &commands.RmListCmd{}
	cmd.SetForce(true)
	_, _, code := runCommand(t, cmd, svc, []string{"Groceries"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}

	lists, _ := svc.GetLists(context.Background())
	if len(lists) != 0 {
		t.Errorf("expected no lists, got %+v", lists)
	}
}

// Tests for recipes command
func TestRecipesCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	cl := client.New(svc)
	ctx := context.Background()
	servings := "4"
	if _, err := cl.CreateRecipe(ctx, client.RecipeOptions{Name: "Pancakes", Servings: &servings}); err != nil {
		t.Fatalf("failed to seed recipe: %v", err)
	}

	cmd := &commands.RecipesCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "   1  Pancakes (serves 4)\n" {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestRecipesCommand_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.RecipesCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no recipes found\n" {
		t.Errorf("unexpected output: %q", stdout)
	}
}

// Tests for favourites command
func TestFavouritesCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	ctx := context.Background()
	category := "Pantry"
	if _, err := svc.AddFavourite(ctx, "Olive Oil", &category); err != nil {
		t.Fatalf("failed to seed favourite: %v", err)
	}

	cmd := &commands.FavouritesCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "   1  Olive Oil [Pantry]\n" {
		t.Errorf("unexpected output: %q", stdout)
	}
}

// Tests for mealplan command
func TestMealPlanCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	ctx := context.Background()
	title := "Leftovers"
	if _, err := svc.CreateMealPlanEvent(ctx, "cal-1", "2026-09-01", nil, &title, nil); err != nil {
		t.Fatalf("failed to seed event: %v", err)
	}

	cmd := &commands.MealPlanCmd{}
	cmd.SetRange("2026-09-01", "2026-09-07")
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "2026-09-01  Leftovers\n" {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestMealPlanCommand_ToList(t *testing.T) {
	svc := testutil.NewFakeService()
	cl := client.New(svc)
	ctx := context.Background()

	listID := seedList(t, svc, "Groceries")
	quantity := "2 cups"
	recipe, err := cl.CreateRecipe(ctx, client.RecipeOptions{
		Name:        "Pancakes",
		Ingredients: []client.IngredientInput{{Name: "Flour", Quantity: &quantity}, {Name: "Eggs"}},
	})
	if err != nil {
		t.Fatalf("failed to seed recipe: %v", err)
	}
	if _, err := svc.CreateMealPlanEvent(ctx, "cal-1", "2026-09-01", &recipe.ID, nil, nil); err != nil {
		t.Fatalf("failed to seed event: %v", err)
	}

	cmd := &commands.MealPlanCmd{}
	cmd.SetRange("2026-09-01", "2026-09-07")
	cmd.SetToList("Groceries")
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}

	list, _ := svc.GetListByID(ctx, listID)
	if len(list.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(list.Items))
	}
}
