package cart

// LineItem is one (menu item, quantity, price) tuple in a cart. Price is
// frozen at the moment the item is first added; later catalog price changes
// do not touch it. Name is joined in from the catalog on reads and is never
// persisted.
type LineItem struct {
	MenuItemID int    `json:"menuItemId"`
	Name       string `json:"name,omitempty"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
}

// Cart is the per-user pre-purchase aggregate. A user has at most one cart,
// and a cart holds items from a single restaurant.
type Cart struct {
	ID           int        `json:"cartId"`
	UserID       int        `json:"userId"`
	RestaurantID int        `json:"restaurantId"`
	Items        []LineItem `json:"items"`
	Total        int64      `json:"total"`
	CreatedAt    string     `json:"createdAt,omitempty"`
	UpdatedAt    string     `json:"updatedAt,omitempty"`
}

// ComputeTotal folds the line items into the cart total. Every mutator must
// call it immediately before persisting so the stored total is never stale.
func ComputeTotal(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}
