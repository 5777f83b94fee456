package client

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"anylist/internal/service"
)

// GetMealPlanEvents returns the events in the inclusive date range.
// Dates are ISO-8601 YYYY-MM-DD strings.
func (c *Client) GetMealPlanEvents(ctx context.Context, startDate, endDate string) ([]service.MealPlanEvent, error) {
	events, err := c.svc.GetMealPlanEvents(ctx, startDate, endDate)
	if err != nil {
		return nil, wrapErr("get meal plan events", err)
	}
	return events, nil
}

// CreateMealPlanEvent creates an event in a calendar. The service
// requires at least one of recipeID or title; that rule is passed
// through, not enforced here.
func (c *Client) CreateMealPlanEvent(ctx context.Context, calendarID, date string, recipeID, title, labelID *string) (service.MealPlanEvent, error) {
	event, err := c.svc.CreateMealPlanEvent(ctx, calendarID, date, recipeID, title, labelID)
	if err != nil {
		return service.MealPlanEvent{}, wrapErr("create meal plan event", err)
	}
	return event, nil
}

// UpdateMealPlanEvent rewrites an event.
func (c *Client) UpdateMealPlanEvent(ctx context.Context, calendarID, eventID, date string, recipeID, title, labelID *string) error {
	return wrapErr("update meal plan event", c.svc.UpdateMealPlanEvent(ctx, calendarID, eventID, date, recipeID, title, labelID))
}

// DeleteMealPlanEvent deletes an event from a calendar.
func (c *Client) DeleteMealPlanEvent(ctx context.Context, calendarID, eventID string) error {
	return wrapErr("delete meal plan event", c.svc.DeleteMealPlanEvent(ctx, calendarID, eventID))
}

// AddMealPlanIngredientsToList fetches every event in the inclusive
// date range, resolves their recipes and appends the combined
// ingredients to the list as items in event order.
func (c *Client) AddMealPlanIngredientsToList(ctx context.Context, listID, startDate, endDate string) error {
	events, err := c.svc.GetMealPlanEvents(ctx, startDate, endDate)
	if err != nil {
		return wrapErr("get meal plan events", err)
	}

	// Distinct recipe ids; events without a recipe contribute nothing.
	recipeIDs := make([]string, 0, len(events))
	seen := make(map[string]bool)
	for _, ev := range events {
		if ev.RecipeID == nil || seen[*ev.RecipeID] {
			continue
		}
		seen[*ev.RecipeID] = true
		recipeIDs = append(recipeIDs, *ev.RecipeID)
	}

	var mu sync.Mutex
	recipes := make(map[string]service.Recipe, len(recipeIDs))
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range recipeIDs {
		g.Go(func() error {
			recipe, err := c.svc.GetRecipeByID(gctx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			recipes[id] = recipe
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return wrapErr("get recipe", err)
	}

	// One item per ingredient occurrence: an event scheduled twice
	// contributes its ingredients twice.
	for _, ev := range events {
		if ev.RecipeID == nil {
			continue
		}
		recipe := recipes[*ev.RecipeID]
		for _, ing := range recipe.Ingredients {
			if _, err := c.svc.AddItemWithDetails(ctx, listID, ing.Name, ing.Quantity, ing.Note, nil); err != nil {
				return wrapErr("add item", err)
			}
		}
	}
	return nil
}

// EnableICalendar turns on iCalendar sync and returns the feed info.
func (c *Client) EnableICalendar(ctx context.Context) (service.ICalendarInfo, error) {
	info, err := c.svc.EnableICalendar(ctx)
	if err != nil {
		return service.ICalendarInfo{}, wrapErr("enable icalendar", err)
	}
	return info, nil
}

// DisableICalendar turns off iCalendar sync.
func (c *Client) DisableICalendar(ctx context.Context) error {
	return wrapErr("disable icalendar", c.svc.DisableICalendar(ctx))
}

// GetICalendarURL returns the iCalendar feed url, or nil when sync is
// disabled.
func (c *Client) GetICalendarURL(ctx context.Context) (*string, error) {
	info, err := c.svc.GetICalendar(ctx)
	if err != nil {
		return nil, wrapErr("get icalendar url", err)
	}
	return info.URL, nil
}
