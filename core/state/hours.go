package state

import (
	"context"

	"github.com/frontdash/partner-desktop/core/model"
	"github.com/frontdash/partner-desktop/core/validate"
)

// Hours returns the operating-hours slice snapshot.
func (s *Store) Hours() Snapshot[model.OperatingHours] {
	return s.hours.Snapshot()
}

// LoadHours fetches the weekly schedule into its slice.
func (s *Store) LoadHours(ctx context.Context) (model.OperatingHours, error) {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return model.OperatingHours{}, err
	}
	s.hours.beginLoad()
	result, err := s.api.GetHours(ctx, token, restaurantID)
	if err != nil {
		s.hours.settle(model.OperatingHours{}, err)
		return model.OperatingHours{}, err
	}
	s.hours.settle(*result, nil)
	return *result, nil
}

// SaveHours validates the schedule client-side — an open day whose open time
// is not before its close time never reaches the network — then persists it.
func (s *Store) SaveHours(ctx context.Context, days []model.DayHours) (model.OperatingHours, error) {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return model.OperatingHours{}, err
	}
	if err := validate.OperatingHours(days); err != nil {
		return model.OperatingHours{}, err
	}
	s.hours.beginSave()
	result, err := s.api.UpdateHours(ctx, token, restaurantID, days)
	if err != nil {
		s.hours.settle(model.OperatingHours{}, err)
		return model.OperatingHours{}, err
	}
	s.hours.settle(*result, nil)
	return *result, nil
}
