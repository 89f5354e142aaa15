// Package validate holds the client-side checks that run before any network
// call is attempted.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	coreerrors "github.com/frontdash/partner-desktop/core/errors"
	"github.com/frontdash/partner-desktop/core/model"
)

var (
	// usernamePattern: letters followed by exactly two digits.
	usernamePattern = regexp.MustCompile(`^[A-Za-z]+[0-9]{2}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	timePattern     = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// AdminUsername is accepted verbatim on the employee portal login.
const AdminUsername = "administrator"

func validationErr(format string, args ...any) error {
	return coreerrors.New(coreerrors.ErrCodeValidation, fmt.Sprintf(format, args...))
}

// Username checks the portal username rule. allowAdmin enables the
// employee-portal special case for "administrator".
func Username(username string, allowAdmin bool) error {
	if username == "" {
		return validationErr("username is required")
	}
	if allowAdmin && username == AdminUsername {
		return nil
	}
	if !usernamePattern.MatchString(username) {
		return validationErr("username must be letters followed by exactly two digits")
	}
	return nil
}

// Password requires a minimum length; strength rules beyond that are the
// server's call.
func Password(password string) error {
	if len(password) < 8 {
		return validationErr("password must be at least 8 characters")
	}
	return nil
}

// Email checks basic address shape.
func Email(email string) error {
	if email == "" {
		return validationErr("email is required")
	}
	if !emailPattern.MatchString(email) {
		return validationErr("email %q is not valid", email)
	}
	return nil
}

// Phone checks a 10-digit US number, ignoring common separators.
func Phone(phone string) error {
	cleaned := strings.NewReplacer("-", "", " ", "", "(", "", ")", "", ".", "").Replace(phone)
	if cleaned == "" {
		return validationErr("phone number is required")
	}
	if !phonePattern.MatchString(cleaned) {
		return validationErr("phone number must have 10 digits")
	}
	return nil
}

// Required rejects blank required fields, naming the field in the message.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return validationErr("%s is required", field)
	}
	return nil
}

// DayHours validates a single day's schedule entry. Closed days carry no
// time constraint.
func DayHours(d model.DayHours) error {
	if d.Day == "" {
		return validationErr("day name is required")
	}
	if !d.Open {
		return nil
	}
	if !timePattern.MatchString(d.OpenTime) {
		return validationErr("%s: open time %q must be HH:MM", d.Day, d.OpenTime)
	}
	if !timePattern.MatchString(d.CloseTime) {
		return validationErr("%s: close time %q must be HH:MM", d.Day, d.CloseTime)
	}
	// HH:MM strings compare correctly as text
	if d.OpenTime >= d.CloseTime {
		return validationErr("%s: open time %s must be before close time %s", d.Day, d.OpenTime, d.CloseTime)
	}
	return nil
}

// OperatingHours validates the whole weekly schedule.
func OperatingHours(days []model.DayHours) error {
	if len(days) == 0 {
		return validationErr("operating hours are required")
	}
	for _, d := range days {
		if err := DayHours(d); err != nil {
			return err
		}
	}
	return nil
}

// MenuItem validates a menu item payload before create/update.
func MenuItem(item model.MenuItem) error {
	if err := Required("item name", item.Name); err != nil {
		return err
	}
	if item.Price <= 0 {
		return validationErr("price must be greater than zero")
	}
	if err := Required("category", item.Category); err != nil {
		return err
	}
	return nil
}

// Registration validates a full application before submission.
func Registration(app model.RegistrationApplication) error {
	if err := Required("restaurant name", app.Name); err != nil {
		return err
	}
	if err := Username(app.Username, false); err != nil {
		return err
	}
	if err := Password(app.Password); err != nil {
		return err
	}
	if err := Email(app.Contact.Email); err != nil {
		return err
	}
	if err := Phone(app.Contact.Phone); err != nil {
		return err
	}
	if err := Required("street", app.Address.Street); err != nil {
		return err
	}
	if err := Required("city", app.Address.City); err != nil {
		return err
	}
	if err := OperatingHours(app.Hours); err != nil {
		return err
	}
	for _, item := range app.MenuItems {
		if err := MenuItem(item); err != nil {
			return err
		}
	}
	return nil
}
