package state

import (
	"context"

	"github.com/frontdash/partner-desktop/core/model"
	"github.com/frontdash/partner-desktop/core/validate"
)

// Profile returns the profile slice snapshot.
func (s *Store) Profile() Snapshot[model.Profile] {
	return s.profile.Snapshot()
}

// Address returns the address slice snapshot.
func (s *Store) Address() Snapshot[model.Address] {
	return s.address.Snapshot()
}

// Contact returns the contact slice snapshot.
func (s *Store) Contact() Snapshot[model.Contact] {
	return s.contact.Snapshot()
}

// LoadProfile fetches the profile into its slice.
func (s *Store) LoadProfile(ctx context.Context) (model.Profile, error) {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return model.Profile{}, err
	}
	s.profile.beginLoad()
	result, err := s.api.GetProfile(ctx, token, restaurantID)
	if err != nil {
		s.profile.settle(model.Profile{}, err)
		return model.Profile{}, err
	}
	s.profile.settle(*result, nil)
	return *result, nil
}

// SaveProfile validates and persists the profile.
func (s *Store) SaveProfile(ctx context.Context, profile model.Profile) (model.Profile, error) {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return model.Profile{}, err
	}
	if err := validate.Required("restaurant name", profile.Name); err != nil {
		return model.Profile{}, err
	}
	s.profile.beginSave()
	result, err := s.api.UpdateProfile(ctx, token, restaurantID, profile)
	if err != nil {
		s.profile.settle(model.Profile{}, err)
		return model.Profile{}, err
	}
	s.profile.settle(*result, nil)
	return *result, nil
}

// LoadAddress fetches the address into its slice.
func (s *Store) LoadAddress(ctx context.Context) (model.Address, error) {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return model.Address{}, err
	}
	s.address.beginLoad()
	result, err := s.api.GetAddress(ctx, token, restaurantID)
	if err != nil {
		s.address.settle(model.Address{}, err)
		return model.Address{}, err
	}
	s.address.settle(*result, nil)
	return *result, nil
}

// SaveAddress validates and persists the address. Address and profile are
// independent calls with no atomicity between them.
func (s *Store) SaveAddress(ctx context.Context, addr model.Address) (model.Address, error) {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return model.Address{}, err
	}
	if err := validate.Required("street", addr.Street); err != nil {
		return model.Address{}, err
	}
	if err := validate.Required("city", addr.City); err != nil {
		return model.Address{}, err
	}
	if err := validate.Required("zip code", addr.ZipCode); err != nil {
		return model.Address{}, err
	}
	s.address.beginSave()
	result, err := s.api.UpdateAddress(ctx, token, restaurantID, addr)
	if err != nil {
		s.address.settle(model.Address{}, err)
		return model.Address{}, err
	}
	s.address.settle(*result, nil)
	return *result, nil
}

// LoadContact fetches the contact details into their slice.
func (s *Store) LoadContact(ctx context.Context) (model.Contact, error) {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return model.Contact{}, err
	}
	s.contact.beginLoad()
	result, err := s.api.GetContact(ctx, token, restaurantID)
	if err != nil {
		s.contact.settle(model.Contact{}, err)
		return model.Contact{}, err
	}
	s.contact.settle(*result, nil)
	return *result, nil
}

// SaveContact validates and persists the contact details.
func (s *Store) SaveContact(ctx context.Context, contact model.Contact) (model.Contact, error) {
	token, restaurantID, err := s.requireIdentity()
	if err != nil {
		return model.Contact{}, err
	}
	if err := validate.Email(contact.Email); err != nil {
		return model.Contact{}, err
	}
	if err := validate.Phone(contact.Phone); err != nil {
		return model.Contact{}, err
	}
	s.contact.beginSave()
	result, err := s.api.UpdateContact(ctx, token, restaurantID, contact)
	if err != nil {
		s.contact.settle(model.Contact{}, err)
		return model.Contact{}, err
	}
	s.contact.settle(*result, nil)
	return *result, nil
}
