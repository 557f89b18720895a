package user

// Roles a user account can carry. Admins can manage restaurants and
// order statuses; everything else is a regular customer.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        int    `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ValidRole reports whether role is one of the supported account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
