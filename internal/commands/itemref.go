package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"anylist/internal/client"
	"anylist/internal/service"
)

// ItemRef represents a parsed item reference: a list name plus the
// 1-based item number shown by the list command.
type ItemRef struct {
	ListName string
	ItemNum  int
}

// ErrItemRefRequired indicates no item reference was provided.
var ErrItemRefRequired = errors.New("item reference required")

// ErrListNameRequired indicates the item number came without a list name.
var ErrListNameRequired = errors.New("list name required")

// ParseItemRef parses an item reference from args.
//
// Parsing rules:
// 1. Last arg must be all digits (the item number)
// 2. Preceding args join to form the list name
// 3. No args -> item reference required
// 4. Digits with no list name -> list name required
func ParseItemRef(args []string) (ItemRef, error) {
	if len(args) == 0 {
		return ItemRef{}, ErrItemRefRequired
	}

	lastArg := args[len(args)-1]
	if !isAllDigits(lastArg) {
		return ItemRef{}, fmt.Errorf("invalid item reference: %s", lastArg)
	}

	num, err := strconv.Atoi(lastArg)
	if err != nil {
		return ItemRef{}, fmt.Errorf("invalid item reference: %s", lastArg)
	}

	listName := strings.TrimSpace(strings.Join(args[:len(args)-1], " "))
	if listName == "" {
		return ItemRef{}, ErrListNameRequired
	}

	return ItemRef{ListName: listName, ItemNum: num}, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ResolveItem resolves an item reference to its list and item.
// The item number indexes the list's items in display order.
func ResolveItem(ctx context.Context, cl *client.Client, ref ItemRef) (service.List, service.ListItem, error) {
	list, err := cl.GetListByName(ctx, ref.ListName)
	if err != nil {
		return service.List{}, service.ListItem{}, err
	}

	if ref.ItemNum < 1 || ref.ItemNum > len(list.Items) {
		return service.List{}, service.ListItem{}, fmt.Errorf("item number out of range: %d", ref.ItemNum)
	}

	return list, list.Items[ref.ItemNum-1], nil
}
