package order

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("order not found")

// CartDeleter removes a user's cart. Satisfied by the cart repository; the
// in-memory order repository uses it to clear the cart in the same logical
// step as the order insert.
type CartDeleter interface {
	Delete(userID int) error
}

type Repository interface {
	// CreateFromCart persists the order and deletes the user's cart as one
	// unit. Cart deletion is idempotent: a cart already gone does not fail
	// the checkout.
	CreateFromCart(ord Order, userID int) (Order, error)
	GetByID(id int) (Order, error)
	ListByUser(userID int) ([]Order, error)
	ListAll() ([]Order, error)
	UpdateStatus(id int, status, paymentStatus, updatedAt string) (Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	carts  CartDeleter
	nextID int
}

func NewInMemoryRepository(seed []Order, carts CartDeleter) *InMemoryRepository {
	repo := &InMemoryRepository{
		orders: make([]Order, 0, len(seed)),
		carts:  carts,
		nextID: 1,
	}

	maxID := 0
	for _, ord := range seed {
		repo.orders = append(repo.orders, ord)
		if ord.ID > maxID {
			maxID = ord.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) CreateFromCart(ord Order, userID int) (Order, error) {
	r.mu.Lock()

	if ord.ID == 0 {
		ord.ID = r.nextID
		r.nextID++
	}
	r.orders = append(r.orders, cloneOrder(ord))
	r.mu.Unlock()

	if r.carts != nil {
		// deleting an absent cart is fine here; the order is already placed
		_ = r.carts.Delete(userID)
	}

	return ord, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ord := range r.orders {
		if ord.ID == id {
			return cloneOrder(ord), nil
		}
	}

	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.UserID == userID {
			out = append(out, cloneOrder(ord))
		}
	}

	return out, nil
}

func (r *InMemoryRepository) ListAll() ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0, len(r.orders))
	for _, ord := range r.orders {
		out = append(out, cloneOrder(ord))
	}

	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(id int, status, paymentStatus, updatedAt string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, ord := range r.orders {
		if ord.ID == id {
			ord.Status = status
			ord.PaymentStatus = paymentStatus
			ord.UpdatedAt = updatedAt
			r.orders[i] = ord
			return cloneOrder(ord), nil
		}
	}

	return Order{}, ErrNotFound
}

func cloneOrder(ord Order) Order {
	items := make([]LineItem, len(ord.Items))
	copy(items, ord.Items)
	ord.Items = items
	return ord
}
