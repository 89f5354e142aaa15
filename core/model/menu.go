package model

// MenuItem is a single dish on the restaurant's menu.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	Available   bool
}

// MenuCategory groups menu items for display ordering.
type MenuCategory struct {
	ID        string
	Name      string
	SortOrder int
}
