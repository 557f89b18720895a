package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/yashp387/Food-Ordering-System/internal/cart"
	"github.com/yashp387/Food-Ordering-System/internal/menu"
	"github.com/yashp387/Food-Ordering-System/internal/restaurant"
	"github.com/yashp387/Food-Ordering-System/internal/user"
)

var (
	ErrEmptyCart            = errors.New("cart is empty, add items before placing an order")
	ErrMixedRestaurants     = errors.New("cart holds items from more than one restaurant")
	ErrTotalMismatch        = errors.New("cart total does not match its line items")
	ErrForbidden            = errors.New("access denied")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidTransition    = errors.New("order status transition not allowed")
)

// MenuService is the slice of the menu service used for restaurant checks
// at checkout and name enrichment on reads.
type MenuService interface {
	ListByIDs(ids []int) ([]menu.MenuItem, error)
}

// RestaurantService joins restaurant display fields into order detail reads.
type RestaurantService interface {
	GetByID(id int) (restaurant.Restaurant, error)
}

// Service owns the cart-to-order transition and the status state machine.
type Service struct {
	repo        Repository
	carts       cart.Repository
	menus       MenuService
	restaurants RestaurantService
	locks       *cart.UserLocks
}

func NewService(repo Repository, carts cart.Repository, menus MenuService, restaurants RestaurantService, locks *cart.UserLocks) *Service {
	return &Service{repo: repo, carts: carts, menus: menus, restaurants: restaurants, locks: locks}
}

// PlaceOrder converts the user's cart into an order and clears the cart.
// The whole operation runs under the user's cart lock so no cart mutation
// can interleave with the snapshot, and the order insert plus cart delete
// are one repository call.
func (s *Service) PlaceOrder(userID int) (Order, error) {
	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	c, err := s.carts.GetByUser(userID)
	if err != nil {
		if err == cart.ErrCartNotFound {
			return Order{}, ErrEmptyCart
		}
		return Order{}, err
	}
	if len(c.Items) == 0 {
		return Order{}, ErrEmptyCart
	}

	if err := s.checkSingleRestaurant(c); err != nil {
		return Order{}, err
	}

	// copy the cart lines verbatim; the frozen prices are authoritative and
	// are not re-fetched from the catalog here
	items := make([]LineItem, 0, len(c.Items))
	for _, line := range c.Items {
		items = append(items, LineItem{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			Price:      line.Price,
			SubTotal:   line.Price * int64(line.Quantity),
		})
	}

	total := ComputeTotal(items)
	if total != c.Total {
		return Order{}, ErrTotalMismatch
	}

	now := time.Now().UTC().Format(time.RFC3339)
	ord := Order{
		Number:        uuid.NewString(),
		UserID:        userID,
		RestaurantID:  c.RestaurantID,
		Items:         items,
		Total:         total,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.CreateFromCart(ord, userID)
	if err != nil {
		return Order{}, err
	}

	return s.enrich(created), nil
}

// checkSingleRestaurant verifies every cart line resolves to a menu item of
// the cart's restaurant. The cart service enforces this at add time; the
// check here guards against carts persisted before that rule.
func (s *Service) checkSingleRestaurant(c cart.Cart) error {
	ids := make([]int, 0, len(c.Items))
	for _, line := range c.Items {
		ids = append(ids, line.MenuItemID)
	}

	items, err := s.menus.ListByIDs(ids)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.RestaurantID != c.RestaurantID {
			return ErrMixedRestaurants
		}
	}

	return nil
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	orders, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i] = s.enrich(orders[i])
	}
	return orders, nil
}

// GetByID returns one order. Only the owner or an admin may read it.
func (s *Service) GetByID(userID int, role string, orderID int) (Order, error) {
	ord, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}

	if ord.UserID != userID && role != user.RoleAdmin {
		return Order{}, ErrForbidden
	}

	ord = s.enrich(ord)
	if rest, err := s.restaurants.GetByID(ord.RestaurantID); err == nil {
		ord.RestaurantName = rest.Name
		ord.RestaurantAddress = rest.Address
	}

	return ord, nil
}

// ListAll returns every order in the system; admin only.
func (s *Service) ListAll(role string) ([]Order, error) {
	if role != user.RoleAdmin {
		return nil, ErrForbidden
	}

	orders, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i] = s.enrich(orders[i])
	}
	return orders, nil
}

// UpdateStatus applies admin status changes. Each field, when present, must
// be a valid enum value; order status transitions additionally follow the
// forward-only state machine. Unset fields are left unchanged.
func (s *Service) UpdateStatus(role string, orderID int, status, paymentStatus *string) (Order, error) {
	if role != user.RoleAdmin {
		return Order{}, ErrForbidden
	}

	ord, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}

	if status != nil {
		if !ValidStatus(*status) {
			return Order{}, ErrInvalidStatus
		}
		if !CanTransition(ord.Status, *status) {
			return Order{}, ErrInvalidTransition
		}
		ord.Status = *status
	}

	if paymentStatus != nil {
		if !ValidPaymentStatus(*paymentStatus) {
			return Order{}, ErrInvalidPaymentStatus
		}
		// payment status is deliberately uncoupled from the order status;
		// nothing stops a cancelled order's payment being marked completed
		ord.PaymentStatus = *paymentStatus
	}

	updated, err := s.repo.UpdateStatus(ord.ID, ord.Status, ord.PaymentStatus, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return Order{}, err
	}

	return s.enrich(updated), nil
}

// enrich joins menu item names into the order lines for presentation.
func (s *Service) enrich(ord Order) Order {
	if len(ord.Items) == 0 {
		return ord
	}

	ids := make([]int, 0, len(ord.Items))
	for _, line := range ord.Items {
		ids = append(ids, line.MenuItemID)
	}

	items, err := s.menus.ListByIDs(ids)
	if err != nil {
		return ord
	}

	names := make(map[int]string, len(items))
	for _, item := range items {
		names[item.ID] = item.Name
	}
	for i := range ord.Items {
		ord.Items[i].Name = names[ord.Items[i].MenuItemID]
	}

	return ord
}
