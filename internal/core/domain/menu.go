package domain

// MenuItem is a dish on the restaurant menu.
type MenuItem struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
}

// MenuItemPatch carries a partial update; nil fields are left untouched.
type MenuItemPatch struct {
	Name     *string
	Category *string
	Price    *float64
	Recipe   *string
	Image    *string
}

// IsEmpty reports whether the patch changes nothing.
func (p MenuItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil && p.Recipe == nil && p.Image == nil
}
