package model

// DayHours is one day's operating window. Times are "HH:MM" 24h strings,
// the format the backend stores them in.
type DayHours struct {
	Day       string
	Open      bool
	OpenTime  string
	CloseTime string
}

// OperatingHours is the full weekly schedule.
type OperatingHours struct {
	RestaurantID string
	Days         []DayHours
}
