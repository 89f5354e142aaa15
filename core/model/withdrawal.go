package model

import "time"

// WithdrawalRequest asks the platform to remove the restaurant.
type WithdrawalRequest struct {
	RestaurantID string
	Reason       string
}

// Withdrawal is a submitted withdrawal request as echoed by the server.
type Withdrawal struct {
	ID           string
	RestaurantID string
	Reason       string
	Status       string
	RequestedAt  time.Time
}
