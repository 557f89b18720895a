package order

// LineItem is one (menu item, quantity, price) tuple copied verbatim from
// the cart at checkout. Price stays frozen; SubTotal = Price * Quantity.
// Name is joined in from the catalog on reads and is never persisted.
type LineItem struct {
	MenuItemID int    `json:"menuItemId"`
	Name       string `json:"name,omitempty"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
	SubTotal   int64  `json:"subTotal"`
}

// Order is created exactly once from a non-empty cart. Line items and total
// are immutable after creation; status and paymentStatus are the only
// mutable fields.
type Order struct {
	ID            int        `json:"orderId"`
	Number        string     `json:"number"`
	UserID        int        `json:"userId"`
	RestaurantID  int        `json:"restaurantId"`
	Items         []LineItem `json:"items"`
	Total         int64      `json:"total"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	CreatedAt     string     `json:"createdAt,omitempty"`
	UpdatedAt     string     `json:"updatedAt,omitempty"`

	// Restaurant display fields, joined in on detail reads only.
	RestaurantName    string `json:"restaurantName,omitempty"`
	RestaurantAddress string `json:"restaurantAddress,omitempty"`
}

// ComputeTotal folds the line subtotals into the order total.
func ComputeTotal(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.SubTotal
	}
	return total
}
