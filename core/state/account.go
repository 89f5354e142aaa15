package state

import (
	"context"

	"github.com/frontdash/partner-desktop/core/model"
	"github.com/frontdash/partner-desktop/core/validate"
)

// Withdrawal returns the withdrawal slice snapshot.
func (s *Store) Withdrawal() Snapshot[model.Withdrawal] {
	return s.withdrawal.Snapshot()
}

// Registration returns the registration slice snapshot.
func (s *Store) Registration() Snapshot[model.RegistrationResponse] {
	return s.registration.Snapshot()
}

// ChangePassword swaps the account password. No slice holds a password; the
// action exists for its precondition checks and error propagation.
func (s *Store) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	token, err := s.session.RequireToken()
	if err != nil {
		return err
	}
	if err := validate.Required("current password", currentPassword); err != nil {
		return err
	}
	if err := validate.Password(newPassword); err != nil {
		return err
	}
	return s.api.ChangePassword(ctx, token, currentPassword, newPassword)
}

// SubmitWithdrawal asks the platform to remove the restaurant.
func (s *Store) SubmitWithdrawal(ctx context.Context, reason string) (model.Withdrawal, error) {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return model.Withdrawal{}, err
	}
	if err := validate.Required("reason", reason); err != nil {
		return model.Withdrawal{}, err
	}
	s.withdrawal.beginSave()
	result, err := s.api.SubmitWithdrawal(ctx, token, model.WithdrawalRequest{
		RestaurantID: restaurantID,
		Reason:       reason,
	})
	if err != nil {
		s.withdrawal.settle(model.Withdrawal{}, err)
		return model.Withdrawal{}, err
	}
	s.withdrawal.settle(*result, nil)
	return *result, nil
}

// SubmitRegistration validates and submits a new restaurant application.
// Unauthenticated: the only store action that runs without a session.
func (s *Store) SubmitRegistration(ctx context.Context, app model.RegistrationApplication) (model.RegistrationResponse, error) {
	if err := validate.Registration(app); err != nil {
		return model.RegistrationResponse{}, err
	}
	s.registration.beginSave()
	result, err := s.api.Register(ctx, app)
	if err != nil {
		s.registration.settle(model.RegistrationResponse{}, err)
		return model.RegistrationResponse{}, err
	}
	s.registration.settle(*result, nil)
	return *result, nil
}
