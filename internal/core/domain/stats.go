package domain

// AdminStats is a point-in-time snapshot; each count is read independently.
type AdminStats struct {
	Users        int64   `json:"users"`
	MenuItems    int64   `json:"menuItems"`
	Orders       int64   `json:"orders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// CategoryStats aggregates ordered items per menu category.
type CategoryStats struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}
