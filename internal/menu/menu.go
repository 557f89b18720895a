package menu

// MenuItem represents a dish offered by a restaurant. Price is stored in
// integer minor units so line totals never accumulate float drift.
type MenuItem struct {
	ID           int    `json:"menuItemId"`
	RestaurantID int    `json:"restaurantId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	Category     string `json:"category"`
	Available    bool   `json:"available"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// AllowedCategories contains the supported menu item categories.
var AllowedCategories = []string{
	"Appetizer",
	"Main Course",
	"Dessert",
	"Drink",
	"Other",
}

// ValidCategory reports whether category is one of the allowed values.
func ValidCategory(category string) bool {
	for _, c := range AllowedCategories {
		if c == category {
			return true
		}
	}
	return false
}
