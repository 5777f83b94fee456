// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"anylist/internal/service"
)

const (
	// ListSeparator is the separator line for list sections.
	ListSeparator = "------------"

	// CheckedMarker marks a crossed-off item.
	CheckedMarker = "[x]"

	// UncheckedMarker marks an active item.
	UncheckedMarker = "[ ]"
)

// FormatItem formats a shopping list item line.
// Format: "{N:>4}  {MARKER} {NAME}" with the quantity in parens and the
// note appended after a dash when present.
func FormatItem(w io.Writer, num int, item service.ListItem) {
	marker := UncheckedMarker
	if item.IsChecked {
		marker = CheckedMarker
	}
	line := fmt.Sprintf("%4d  %s %s", num, marker, normalizeName(item.Name))
	if item.Quantity != nil && *item.Quantity != "" {
		line += fmt.Sprintf(" (%s)", *item.Quantity)
	}
	if item.Note != "" {
		line += " - " + item.Note
	}
	fmt.Fprintln(w, line)
}

// FormatListHeader formats a list section header.
func FormatListHeader(w io.Writer, name string) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, normalizeName(name))
	fmt.Fprintln(w, ListSeparator)
}

// FormatListName formats a list name for the lists command.
func FormatListName(w io.Writer, list service.List) {
	fmt.Fprintln(w, normalizeName(list.Name))
}

// FormatRecipe formats a recipe line for the recipes command.
func FormatRecipe(w io.Writer, num int, recipe service.Recipe) {
	line := fmt.Sprintf("%4d  %s", num, normalizeName(recipe.Name))
	if recipe.Servings != nil && *recipe.Servings != "" {
		line += fmt.Sprintf(" (serves %s)", *recipe.Servings)
	}
	fmt.Fprintln(w, line)
}

// FormatFavourite formats a favourite item line.
func FormatFavourite(w io.Writer, num int, item service.FavouriteItem) {
	line := fmt.Sprintf("%4d  %s", num, normalizeName(item.Name))
	if item.Category != nil && *item.Category != "" {
		line += fmt.Sprintf(" [%s]", *item.Category)
	}
	fmt.Fprintln(w, line)
}

// FormatMealPlanEvent formats a meal plan event line.
// Events with a title show it; recipe-only events show the recipe id.
func FormatMealPlanEvent(w io.Writer, event service.MealPlanEvent) {
	label := ""
	switch {
	case event.Title != nil && *event.Title != "":
		label = *event.Title
	case event.RecipeID != nil:
		label = "recipe " + *event.RecipeID
	default:
		label = "(untitled)"
	}
	fmt.Fprintf(w, "%s  %s\n", event.Date, label)
}

// normalizeName normalizes a name for display.
// - Empty or whitespace-only names become "(untitled)"
// - Newlines are replaced with spaces
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")
	if strings.TrimSpace(name) == "" {
		return "(untitled)"
	}
	return name
}
