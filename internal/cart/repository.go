package cart

import (
	"errors"
	"sync"
)

var ErrCartNotFound = errors.New("cart not found")

// Repository persists the cart aggregate. Upsert writes the whole document
// (items and total together) so a reader never observes one without the other.
type Repository interface {
	GetByUser(userID int) (Cart, error)
	Upsert(c Cart) (Cart, error)
	Delete(userID int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	carts  map[int]Cart
	nextID int
}

func NewInMemoryRepository(seed []Cart) *InMemoryRepository {
	repo := &InMemoryRepository{
		carts:  make(map[int]Cart, len(seed)),
		nextID: 1,
	}

	maxID := 0
	for _, c := range seed {
		repo.carts[c.UserID] = c
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) GetByUser(userID int) (Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carts[userID]
	if !ok {
		return Cart{}, ErrCartNotFound
	}

	return cloneCart(c), nil
}

func (r *InMemoryRepository) Upsert(c Cart) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.carts[c.UserID]; ok {
		c.ID = existing.ID
	} else if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	}

	r.carts[c.UserID] = cloneCart(c)
	return c, nil
}

func (r *InMemoryRepository) Delete(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[userID]; !ok {
		return ErrCartNotFound
	}

	delete(r.carts, userID)
	return nil
}

func cloneCart(c Cart) Cart {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
