// Package state is the composed client-side store: one slice per resource
// area, mutated only through the store's action methods, observed through
// snapshots and subscriber callbacks.
package state

import (
	"context"
	"sync"

	"github.com/frontdash/partner-desktop/core/auth"
	coreerrors "github.com/frontdash/partner-desktop/core/errors"
	"github.com/frontdash/partner-desktop/core/frontdash"
	"github.com/frontdash/partner-desktop/core/httpclient"
	"github.com/frontdash/partner-desktop/core/model"
)

// ErrNoRestaurant is returned by actions that need a selected restaurant.
var ErrNoRestaurant = coreerrors.New(coreerrors.ErrCodeInvalidArgument, "state: no restaurant selected")

// Transport is everything the store needs from the backend;
// *frontdash.Client satisfies it. Tests swap in fakes here.
type Transport interface {
	ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error
	Register(ctx context.Context, app model.RegistrationApplication) (*model.RegistrationResponse, error)

	GetProfile(ctx context.Context, token, restaurantID string) (*model.Profile, error)
	UpdateProfile(ctx context.Context, token, restaurantID string, profile model.Profile) (*model.Profile, error)
	GetAddress(ctx context.Context, token, restaurantID string) (*model.Address, error)
	UpdateAddress(ctx context.Context, token, restaurantID string, addr model.Address) (*model.Address, error)
	GetContact(ctx context.Context, token, restaurantID string) (*model.Contact, error)
	UpdateContact(ctx context.Context, token, restaurantID string, contact model.Contact) (*model.Contact, error)

	ListMenu(ctx context.Context, token, restaurantID string) ([]model.MenuItem, error)
	CreateMenuItem(ctx context.Context, token, restaurantID string, item model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, token, restaurantID, itemID string, item model.MenuItem) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, token, restaurantID, itemID string) error
	SetMenuItemAvailability(ctx context.Context, token, restaurantID, itemID string, available bool) error
	ListCategories(ctx context.Context, token, restaurantID string) ([]model.MenuCategory, error)

	GetHours(ctx context.Context, token, restaurantID string) (*model.OperatingHours, error)
	UpdateHours(ctx context.Context, token, restaurantID string, days []model.DayHours) (*model.OperatingHours, error)

	SubmitWithdrawal(ctx context.Context, token string, req model.WithdrawalRequest) (*model.Withdrawal, error)
}

var _ Transport = (*frontdash.Client)(nil)

// Store merges all slices into one container. Construct one per application
// and pass it down; there is no package-level instance.
type Store struct {
	session *auth.Manager
	api     Transport
	logger  httpclient.Logger

	profile      *Slice[model.Profile]
	address      *Slice[model.Address]
	contact      *Slice[model.Contact]
	menu         *Slice[[]model.MenuItem]
	categories   *Slice[[]model.MenuCategory]
	hours        *Slice[model.OperatingHours]
	withdrawal   *Slice[model.Withdrawal]
	registration *Slice[model.RegistrationResponse]

	subMu       sync.Mutex
	subscribers map[int]func()
	nextSubID   int
}

// StoreOption configures the store.
type StoreOption func(*Store)

// WithLogger injects the logger.
func WithLogger(logger httpclient.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore builds the composed store around a session manager and transport.
func NewStore(session *auth.Manager, api Transport, opts ...StoreOption) *Store {
	s := &Store{
		session:     session,
		api:         api,
		logger:      httpclient.NopLogger{},
		subscribers: make(map[int]func()),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.profile = newSlice[model.Profile](s.notifyAll)
	s.address = newSlice[model.Address](s.notifyAll)
	s.contact = newSlice[model.Contact](s.notifyAll)
	s.menu = newSlice[[]model.MenuItem](s.notifyAll)
	s.categories = newSlice[[]model.MenuCategory](s.notifyAll)
	s.hours = newSlice[model.OperatingHours](s.notifyAll)
	s.withdrawal = newSlice[model.Withdrawal](s.notifyAll)
	s.registration = newSlice[model.RegistrationResponse](s.notifyAll)
	return s
}

// Session exposes the session manager for login/logout flows.
func (s *Store) Session() *auth.Manager {
	return s.session
}

// Subscribe registers a change callback and returns an unsubscribe func.
// Callbacks run synchronously on the mutating goroutine; keep them cheap.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notifyAll() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// requireIdentity runs the shared precondition checks: token present and a
// restaurant selected. Fails synchronously, before any network call.
func (s *Store) requireIdentity() (token, restaurantID string, err error) {
	token, err = s.session.RequireToken()
	if err != nil {
		return "", "", err
	}
	restaurant, ok := s.session.Restaurant()
	if !ok || restaurant.ID == "" {
		return "", "", ErrNoRestaurant
	}
	return token, restaurant.ID, nil
}

// Logout clears the session and every cached slice.
func (s *Store) Logout(ctx context.Context) {
	s.session.Logout(ctx)
	s.profile.Reset()
	s.address.Reset()
	s.contact.Reset()
	s.menu.Reset()
	s.categories.Reset()
	s.hours.Reset()
	s.withdrawal.Reset()
	s.registration.Reset()
}
