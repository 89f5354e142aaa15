package model

// Restaurant is the summary returned alongside a login.
type Restaurant struct {
	ID       string
	Name     string
	Username string
	Email    string
	Status   string
}

// Profile describes the restaurant's editable business information.
type Profile struct {
	RestaurantID string
	Name         string
	Description  string
	CuisineType  string
	ImageURL     string
}

// Address is the restaurant's street address.
type Address struct {
	Street   string
	Suite    string
	City     string
	State    string
	ZipCode  string
	Landmark string
}

// Contact holds the restaurant's contact persons and channels.
type Contact struct {
	ContactPerson string
	Phone         string
	Email         string
	AltPhone      string
}
