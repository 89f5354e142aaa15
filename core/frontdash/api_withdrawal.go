package frontdash

import (
	"context"
	"net/http"
	"time"

	"github.com/frontdash/partner-desktop/core/model"
)

type withdrawalWire struct {
	ID           FlexString `json:"id"`
	RestaurantID FlexString `json:"restaurantId"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	RequestedAt  string     `json:"requestedAt"`
}

func (w withdrawalWire) toModel() model.Withdrawal {
	out := model.Withdrawal{
		ID:           w.ID.String(),
		RestaurantID: w.RestaurantID.String(),
		Reason:       w.Reason,
		Status:       w.Status,
	}
	if w.RequestedAt != "" {
		if ts, err := time.Parse(time.RFC3339, w.RequestedAt); err == nil {
			out.RequestedAt = ts
		}
	}
	return out
}

// SubmitWithdrawal asks the platform to remove the restaurant.
func (c *Client) SubmitWithdrawal(ctx context.Context, token string, reqData model.WithdrawalRequest) (*model.Withdrawal, error) {
	payload := map[string]string{
		"restaurantId": reqData.RestaurantID,
		"reason":       reqData.Reason,
	}
	req, err := jsonRequest(ctx, http.MethodPost, c.baseURL, "/restaurant/withdrawal", token, payload)
	if err != nil {
		return nil, err
	}
	var wire withdrawalWire
	if err := c.http.Do(req, &wire); err != nil {
		return nil, wrapErr("failed to submit withdrawal request", err)
	}
	result := wire.toModel()
	if result.RestaurantID == "" {
		result.RestaurantID = reqData.RestaurantID
	}
	return &result, nil
}
