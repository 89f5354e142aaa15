package frontdash

import (
	"context"
	"fmt"
	"net/http"

	"github.com/frontdash/partner-desktop/core/model"
)

type profileWire struct {
	RestaurantID FlexString `json:"restaurantId"`
	Name         string     `json:"restaurantName"`
	Description  string     `json:"description"`
	CuisineType  string     `json:"cuisineType"`
	ImageURL     string     `json:"imageUrl"`
}

func (w profileWire) toModel() model.Profile {
	return model.Profile{
		RestaurantID: w.RestaurantID.String(),
		Name:         w.Name,
		Description:  w.Description,
		CuisineType:  w.CuisineType,
		ImageURL:     w.ImageURL,
	}
}

type addressPayload struct {
	Street   string `json:"street"`
	Suite    string `json:"suite,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Landmark string `json:"landmark,omitempty"`
}

func addressToPayload(a model.Address) addressPayload {
	return addressPayload{
		Street:   a.Street,
		Suite:    a.Suite,
		City:     a.City,
		State:    a.State,
		ZipCode:  a.ZipCode,
		Landmark: a.Landmark,
	}
}

func (p addressPayload) toModel() model.Address {
	return model.Address{
		Street:   p.Street,
		Suite:    p.Suite,
		City:     p.City,
		State:    p.State,
		ZipCode:  p.ZipCode,
		Landmark: p.Landmark,
	}
}

type contactPayload struct {
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	AltPhone      string `json:"altPhone,omitempty"`
}

func contactToPayload(c model.Contact) contactPayload {
	return contactPayload{
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		AltPhone:      c.AltPhone,
	}
}

func (p contactPayload) toModel() model.Contact {
	return model.Contact{
		ContactPerson: p.ContactPerson,
		Phone:         p.Phone,
		Email:         p.Email,
		AltPhone:      p.AltPhone,
	}
}

// GetProfile fetches the restaurant's business profile.
func (c *Client) GetProfile(ctx context.Context, token, restaurantID string) (*model.Profile, error) {
	path := fmt.Sprintf("/restaurant/%s/profile", restaurantID)
	req, err := jsonRequest(ctx, http.MethodGet, c.baseURL, path, token, nil)
	if err != nil {
		return nil, err
	}
	var wire profileWire
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("failed to load profile", err)
	}
	profile := wire.toModel()
	if profile.RestaurantID == "" {
		profile.RestaurantID = restaurantID
	}
	return &profile, nil
}

// UpdateProfile replaces the business profile and returns the stored copy.
func (c *Client) UpdateProfile(ctx context.Context, token, restaurantID string, profile model.Profile) (*model.Profile, error) {
	payload := map[string]string{
		"restaurantName": profile.Name,
		"description":    profile.Description,
		"cuisineType":    profile.CuisineType,
		"imageUrl":       profile.ImageURL,
	}
	path := fmt.Sprintf("/restaurant/%s/profile", restaurantID)
	req, err := jsonRequest(ctx, http.MethodPut, c.baseURL, path, token, payload)
	if err != nil {
		return nil, err
	}
	var wire profileWire
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("failed to update profile", err)
	}
	updated := wire.toModel()
	if updated.RestaurantID == "" {
		updated.RestaurantID = restaurantID
	}
	return &updated, nil
}

// GetAddress fetches the restaurant's address.
func (c *Client) GetAddress(ctx context.Context, token, restaurantID string) (*model.Address, error) {
	path := fmt.Sprintf("/restaurant/%s/address", restaurantID)
	req, err := jsonRequest(ctx, http.MethodGet, c.baseURL, path, token, nil)
	if err != nil {
		return nil, err
	}
	var wire addressPayload
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("failed to load address", err)
	}
	addr := wire.toModel()
	return &addr, nil
}

// UpdateAddress replaces the restaurant's address.
func (c *Client) UpdateAddress(ctx context.Context, token, restaurantID string, addr model.Address) (*model.Address, error) {
	path := fmt.Sprintf("/restaurant/%s/address", restaurantID)
	req, err := jsonRequest(ctx, http.MethodPut, c.baseURL, path, token, addressToPayload(addr))
	if err != nil {
		return nil, err
	}
	var wire addressPayload
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("failed to update address", err)
	}
	updated := wire.toModel()
	return &updated, nil
}

// GetContact fetches the restaurant's contact details.
func (c *Client) GetContact(ctx context.Context, token, restaurantID string) (*model.Contact, error) {
	path := fmt.Sprintf("/restaurant/%s/contact", restaurantID)
	req, err := jsonRequest(ctx, http.MethodGet, c.baseURL, path, token, nil)
	if err != nil {
		return nil, err
	}
	var wire contactPayload
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("failed to load contact details", err)
	}
	contact := wire.toModel()
	return &contact, nil
}

// UpdateContact replaces the restaurant's contact details.
func (c *Client) UpdateContact(ctx context.Context, token, restaurantID string, contact model.Contact) (*model.Contact, error) {
	path := fmt.Sprintf("/restaurant/%s/contact", restaurantID)
	req, err := jsonRequest(ctx, http.MethodPut, c.baseURL, path, token, contactToPayload(contact))
	if err != nil {
		return nil, err
	}
	var wire contactPayload
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("failed to update contact details", err)
	}
	updated := wire.toModel()
	return &updated, nil
}
