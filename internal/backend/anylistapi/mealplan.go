package anylistapi

import (
	"context"
	"net/http"
	"net/url"

	"anylist/internal/service"
)

// GetMealPlanEvents implements service.Service. The range is
// inclusive; dates are YYYY-MM-DD.
func (c *Client) GetMealPlanEvents(ctx context.Context, startDate, endDate string) ([]service.MealPlanEvent, error) {
	query := url.Values{}
	query.Set("start", startDate)
	query.Set("end", endDate)
	var events []service.MealPlanEvent
	if err := c.do(ctx, http.MethodGet, "/mealplan/events?"+query.Encode(), nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// eventPayload is the write shape for meal plan events.
type eventPayload struct {
	Date     string  `json:"date"`
	RecipeID *string `json:"recipe_id,omitempty"`
	Title    *string `json:"title,omitempty"`
	LabelID  *string `json:"label_id,omitempty"`
}

// CreateMealPlanEvent implements service.Service.
func (c *Client) CreateMealPlanEvent(ctx context.Context, calendarID, date string, recipeID, title, labelID *string) (service.MealPlanEvent, error) {
	var event service.MealPlanEvent
	err := c.do(ctx, http.MethodPost, "/mealplan/calendars/"+pathEscape(calendarID)+"/events",
		eventPayload{date, recipeID, title, labelID}, &event)
	return event, err
}

// UpdateMealPlanEvent implements service.Service.
func (c *Client) UpdateMealPlanEvent(ctx context.Context, calendarID, eventID, date string, recipeID, title, labelID *string) error {
	return c.do(ctx, http.MethodPut, "/mealplan/calendars/"+pathEscape(calendarID)+"/events/"+pathEscape(eventID),
		eventPayload{date, recipeID, title, labelID}, nil)
}

// DeleteMealPlanEvent implements service.Service.
func (c *Client) DeleteMealPlanEvent(ctx context.Context, calendarID, eventID string) error {
	return c.do(ctx, http.MethodDelete, "/mealplan/calendars/"+pathEscape(calendarID)+"/events/"+pathEscape(eventID), nil, nil)
}

// EnableICalendar implements service.Service.
func (c *Client) EnableICalendar(ctx context.Context) (service.ICalendarInfo, error) {
	var info service.ICalendarInfo
	err := c.do(ctx, http.MethodPost, "/icalendar/enable", nil, &info)
	return info, err
}

// DisableICalendar implements service.Service.
func (c *Client) DisableICalendar(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/icalendar/disable", nil, nil)
}

// GetICalendar implements service.Service.
func (c *Client) GetICalendar(ctx context.Context) (service.ICalendarInfo, error) {
	var info service.ICalendarInfo
	err := c.do(ctx, http.MethodGet, "/icalendar", nil, &info)
	return info, err
}
