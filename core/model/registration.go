package model

import "time"

// RegistrationApplication is the payload a new restaurant submits: business
// info, address, contact, opening schedule, an initial menu, and the URLs of
// any documents uploaded beforehand.
type RegistrationApplication struct {
	Name         string
	CuisineType  string
	Description  string
	Username     string
	Password     string
	Address      Address
	Contact      Contact
	Hours        []DayHours
	MenuItems    []MenuItem
	DocumentURLs []string
}

// RegistrationResponse is the server's acknowledgement, exposed unmodified.
type RegistrationResponse struct {
	ID          string
	Status      string
	Message     string
	SubmittedAt time.Time
}
