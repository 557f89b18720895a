package restaurant

// Restaurant statuses.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

type Restaurant struct {
	ID          int      `json:"restaurantId"`
	Name        string   `json:"name"`
	Cuisine     []string `json:"cuisine"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Rating      float64  `json:"rating"`
	Status      string   `json:"status"`
	OwnerID     int      `json:"ownerId"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// ValidStatus reports whether status is a supported restaurant status.
func ValidStatus(status string) bool {
	return status == StatusOpen || status == StatusClosed
}
