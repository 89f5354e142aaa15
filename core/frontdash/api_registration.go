package frontdash

import (
	"context"
	"net/http"
	"time"

	"github.com/frontdash/partner-desktop/core/model"
)

type registrationWire struct {
	ID          FlexString `json:"id"`
	Status      string     `json:"status"`
	Message     string     `json:"message"`
	SubmittedAt string     `json:"submittedAt"`
}

type registrationPayload struct {
	RestaurantName string            `json:"restaurantName"`
	CuisineType    string            `json:"cuisineType,omitempty"`
	Description    string            `json:"description,omitempty"`
	Username       string            `json:"username"`
	Password       string            `json:"password"`
	Address        addressPayload    `json:"address"`
	Contact        contactPayload    `json:"contact"`
	OperatingHours []dayHoursPayload `json:"operatingHours"`
	MenuItems      []menuItemPayload `json:"menuItems,omitempty"`
	DocumentURLs   []string          `json:"documentUrls,omitempty"`
}

// Register submits a new restaurant application. Unauthenticated by design:
// the applicant has no account yet.
func (c *Client) Register(ctx context.Context, app model.RegistrationApplication) (*model.RegistrationResponse, error) {
	payload := registrationPayload{
		RestaurantName: app.Name,
		CuisineType:    app.CuisineType,
		Description:    app.Description,
		Username:       app.Username,
		Password:       app.Password,
		Address:        addressToPayload(app.Address),
		Contact:        contactToPayload(app.Contact),
		DocumentURLs:   app.DocumentURLs,
	}
	for _, d := range app.Hours {
		payload.OperatingHours = append(payload.OperatingHours, dayHoursToPayload(d))
	}
	for _, item := range app.MenuItems {
		payload.MenuItems = append(payload.MenuItems, menuItemToPayload(item))
	}

	req, err := jsonRequest(ctx, http.MethodPost, c.baseURL, "/restaurant/registration", "", payload)
	if err != nil {
		return nil, err
	}
	var wire registrationWire
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("registration failed", err)
	}
	resp := &model.RegistrationResponse{
		ID:      wire.ID.String(),
		Status:  wire.Status,
		Message: wire.Message,
	}
	if wire.SubmittedAt != "" {
		if ts, parseErr := time.Parse(time.RFC3339, wire.SubmittedAt); parseErr == nil {
			resp.SubmittedAt = ts
		}
	}
	return resp, nil
}
