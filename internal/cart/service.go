package cart

import (
	"errors"
	"time"

	"github.com/yashp387/Food-Ordering-System/internal/menu"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrLineNotFound     = errors.New("item not found in cart")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrItemUnavailable  = errors.New("menu item is not available")
	ErrMixedRestaurants = errors.New("cart holds items from another restaurant")
)

// MenuService is the slice of the menu service the cart needs: price/
// availability lookups on writes and name enrichment on reads.
type MenuService interface {
	GetByID(id int) (menu.MenuItem, error)
	ListByIDs(ids []int) ([]menu.MenuItem, error)
}

// Service orchestrates cart operations. Every mutator runs under the
// owning user's lock, recomputes the total and persists items and total in
// one repository call.
type Service struct {
	repo  Repository
	menus MenuService
	locks *UserLocks
}

func NewService(repo Repository, menus MenuService, locks *UserLocks) *Service {
	return &Service{repo: repo, menus: menus, locks: locks}
}

// AddItem puts quantity units of a menu item into the user's cart, creating
// the cart when the user has none. Adding an item already in the cart
// increments its quantity; the price frozen at first add stands.
func (s *Service) AddItem(userID, menuItemID, quantity int) (Cart, error) {
	if quantity <= 0 {
		return Cart{}, ErrInvalidQuantity
	}

	item, err := s.menus.GetByID(menuItemID)
	if err != nil {
		if err == menu.ErrNotFound {
			return Cart{}, ErrMenuItemNotFound
		}
		return Cart{}, err
	}
	if !item.Available {
		return Cart{}, ErrItemUnavailable
	}

	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	now := time.Now().UTC().Format(time.RFC3339)
	c, err := s.repo.GetByUser(userID)
	if err != nil {
		if err != ErrCartNotFound {
			return Cart{}, err
		}
		c = Cart{UserID: userID, RestaurantID: item.RestaurantID, Items: []LineItem{}, CreatedAt: now}
	}

	if c.RestaurantID != item.RestaurantID {
		return Cart{}, ErrMixedRestaurants
	}

	found := false
	for i := range c.Items {
		if c.Items[i].MenuItemID == menuItemID {
			c.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		c.Items = append(c.Items, LineItem{
			MenuItemID: menuItemID,
			Quantity:   quantity,
			Price:      item.Price,
		})
	}

	return s.save(c, now)
}

// UpdateItem overwrites the quantity of an existing line. Use RemoveItem to
// drop a line; zero and negative quantities are rejected.
func (s *Service) UpdateItem(userID, menuItemID, quantity int) (Cart, error) {
	if quantity < 1 {
		return Cart{}, ErrInvalidQuantity
	}

	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	c, err := s.repo.GetByUser(userID)
	if err != nil {
		return Cart{}, err
	}

	found := false
	for i := range c.Items {
		if c.Items[i].MenuItemID == menuItemID {
			c.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return Cart{}, ErrLineNotFound
	}

	return s.save(c, time.Now().UTC().Format(time.RFC3339))
}

// RemoveItem drops the matching line. An emptied cart persists with zero
// items and zero total.
func (s *Service) RemoveItem(userID, menuItemID int) (Cart, error) {
	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	c, err := s.repo.GetByUser(userID)
	if err != nil {
		return Cart{}, err
	}

	found := false
	for i := range c.Items {
		if c.Items[i].MenuItemID == menuItemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return Cart{}, ErrLineNotFound
	}

	return s.save(c, time.Now().UTC().Format(time.RFC3339))
}

// ViewCart returns the user's cart with menu item names joined in. A user
// without a cart gets an empty snapshot, not an error.
func (s *Service) ViewCart(userID int) (Cart, error) {
	c, err := s.repo.GetByUser(userID)
	if err != nil {
		if err == ErrCartNotFound {
			return Cart{UserID: userID, Items: []LineItem{}}, nil
		}
		return Cart{}, err
	}

	return s.enrich(c), nil
}

// Clear deletes the cart entirely. Deleting an absent cart reports
// ErrCartNotFound without side effects.
func (s *Service) Clear(userID int) error {
	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	return s.repo.Delete(userID)
}

func (s *Service) save(c Cart, now string) (Cart, error) {
	c.Total = ComputeTotal(c.Items)
	c.UpdatedAt = now

	saved, err := s.repo.Upsert(c)
	if err != nil {
		return Cart{}, err
	}

	return s.enrich(saved), nil
}

// enrich joins menu item names into the line items for presentation. The
// stored document never carries names.
func (s *Service) enrich(c Cart) Cart {
	if len(c.Items) == 0 {
		return c
	}

	ids := make([]int, 0, len(c.Items))
	for _, line := range c.Items {
		ids = append(ids, line.MenuItemID)
	}

	items, err := s.menus.ListByIDs(ids)
	if err != nil {
		return c
	}

	names := make(map[int]string, len(items))
	for _, item := range items {
		names[item.ID] = item.Name
	}
	for i := range c.Items {
		c.Items[i].Name = names[c.Items[i].MenuItemID]
	}

	return c
}
