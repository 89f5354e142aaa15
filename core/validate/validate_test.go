package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	coreerrors "github.com/frontdash/partner-desktop/core/errors"
	"github.com/frontdash/partner-desktop/core/model"
)

func requireValidationErr(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var ce *coreerrors.CoreError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, coreerrors.ErrCodeValidation, ce.Code)
}

func TestUsername(t *testing.T) {
	cases := []struct {
		username   string
		allowAdmin bool
		ok         bool
	}{
		{"smith01", false, true},  // letters + exactly 2 digits
		{"sm1", false, false},     // only 1 digit
		{"smith123", false, false},
		{"01smith", false, false},
		{"", false, false},
		{"administrator", false, false},
		{"administrator", true, true}, // employee portal allowance
		{"smith01", true, true},
	}
	for _, tc := range cases {
		err := Username(tc.username, tc.allowAdmin)
		if tc.ok {
			require.NoError(t, err, "username %q", tc.username)
		} else {
			requireValidationErr(t, err)
		}
	}
}

func TestDayHours(t *testing.T) {
	require.NoError(t, DayHours(model.DayHours{Day: "Monday", Open: true, OpenTime: "09:00", CloseTime: "17:00"}))
	require.NoError(t, DayHours(model.DayHours{Day: "Sunday", Open: false}))

	// open >= close is rejected
	requireValidationErr(t, DayHours(model.DayHours{Day: "Monday", Open: true, OpenTime: "17:00", CloseTime: "09:00"}))
	requireValidationErr(t, DayHours(model.DayHours{Day: "Monday", Open: true, OpenTime: "09:00", CloseTime: "09:00"}))
	requireValidationErr(t, DayHours(model.DayHours{Day: "Monday", Open: true, OpenTime: "9am", CloseTime: "17:00"}))
	requireValidationErr(t, DayHours(model.DayHours{Day: "", Open: false}))
}

func TestEmail(t *testing.T) {
	require.NoError(t, Email("owner@smiths.com"))
	requireValidationErr(t, Email(""))
	requireValidationErr(t, Email("not-an-email"))
	requireValidationErr(t, Email("a@b"))
}

func TestPhone(t *testing.T) {
	require.NoError(t, Phone("5551234567"))
	require.NoError(t, Phone("(555) 123-4567"))
	require.NoError(t, Phone("555.123.4567"))
	requireValidationErr(t, Phone("12345"))
	requireValidationErr(t, Phone(""))
	requireValidationErr(t, Phone("555123456789"))
}

func TestPassword(t *testing.T) {
	require.NoError(t, Password("longenough"))
	requireValidationErr(t, Password("short"))
}

func TestMenuItem(t *testing.T) {
	require.NoError(t, MenuItem(model.MenuItem{Name: "Pizza", Price: 12.5, Category: "Mains"}))
	requireValidationErr(t, MenuItem(model.MenuItem{Price: 12.5, Category: "Mains"}))
	requireValidationErr(t, MenuItem(model.MenuItem{Name: "Pizza", Price: 0, Category: "Mains"}))
	requireValidationErr(t, MenuItem(model.MenuItem{Name: "Pizza", Price: 12.5}))
}

func TestRegistration(t *testing.T) {
	valid := model.RegistrationApplication{
		Name:     "Smith's",
		Username: "smith01",
		Password: "secret123",
		Address:  model.Address{Street: "1 Main St", City: "Springfield"},
		Contact:  model.Contact{Email: "owner@smiths.com", Phone: "5551234567"},
		Hours: []model.DayHours{
			{Day: "Monday", Open: true, OpenTime: "09:00", CloseTime: "17:00"},
		},
		MenuItems: []model.MenuItem{{Name: "Pizza", Price: 12.5, Category: "Mains"}},
	}
	require.NoError(t, Registration(valid))

	broken := valid
	broken.Hours = []model.DayHours{{Day: "Monday", Open: true, OpenTime: "17:00", CloseTime: "09:00"}}
	requireValidationErr(t, Registration(broken))

	noHours := valid
	noHours.Hours = nil
	requireValidationErr(t, Registration(noHours))
}
