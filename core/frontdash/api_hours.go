package frontdash

import (
	"context"
	"fmt"
	"net/http"

	"github.com/frontdash/partner-desktop/core/model"
)

type dayHoursPayload struct {
	Day       string `json:"day"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
}

func dayHoursToPayload(d model.DayHours) dayHoursPayload {
	return dayHoursPayload{
		Day:       d.Day,
		IsOpen:    d.Open,
		OpenTime:  d.OpenTime,
		CloseTime: d.CloseTime,
	}
}

func (p dayHoursPayload) toModel() model.DayHours {
	return model.DayHours{
		Day:       p.Day,
		Open:      p.IsOpen,
		OpenTime:  p.OpenTime,
		CloseTime: p.CloseTime,
	}
}

// GetHours fetches the weekly operating schedule.
func (c *Client) GetHours(ctx context.Context, token, restaurantID string) (*model.OperatingHours, error) {
	path := fmt.Sprintf("/restaurant/%s/hours", restaurantID)
	req, err := jsonRequest(ctx, http.MethodGet, c.baseURL, path, token, nil)
	if err != nil {
		return nil, err
	}
	var wire []dayHoursPayload
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("failed to load operating hours", err)
	}
	hours := &model.OperatingHours{RestaurantID: restaurantID}
	for _, p := range wire {
		hours.Days = append(hours.Days, p.toModel())
	}
	return hours, nil
}

// UpdateHours replaces the weekly schedule.
func (c *Client) UpdateHours(ctx context.Context, token, restaurantID string, days []model.DayHours) (*model.OperatingHours, error) {
	payload := make([]dayHoursPayload, 0, len(days))
	for _, d := range days {
		payload = append(payload, dayHoursToPayload(d))
	}
	path := fmt.Sprintf("/restaurant/%s/hours", restaurantID)
	req, err := jsonRequest(ctx, http.MethodPut, c.baseURL, path, token, payload)
	if err != nil {
		return nil, err
	}
	var wire []dayHoursPayload
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("failed to update operating hours", err)
	}
	hours := &model.OperatingHours{RestaurantID: restaurantID}
	for _, p := range wire {
		hours.Days = append(hours.Days, p.toModel())
	}
	// some deployments reply with an empty body on PUT; treat the submitted
	// schedule as the stored one
	if len(hours.Days) == 0 {
		hours.Days = append(hours.Days, days...)
	}
	return hours, nil
}
