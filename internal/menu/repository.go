package menu

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("menu item not found")

type Repository interface {
	ListByRestaurant(restaurantID int) ([]MenuItem, error)
	// ListByIDs returns the menu items whose id is present in ids. Items are
	// returned in the same sequence as the ids argument; unknown ids are
	// skipped. An empty ids slice yields an empty result without a query.
	ListByIDs(ids []int) ([]MenuItem, error)
	GetByID(id int) (MenuItem, error)
	Create(item MenuItem) (MenuItem, error)
	Update(id int, item MenuItem) (MenuItem, error)
	Delete(id int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	items  []MenuItem
	nextID int
}

func NewInMemoryRepository(seed []MenuItem) *InMemoryRepository {
	repo := &InMemoryRepository{
		items:  make([]MenuItem, 0, len(seed)),
		nextID: 1,
	}

	maxID := 0
	for _, item := range seed {
		repo.items = append(repo.items, item)
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) ListByRestaurant(restaurantID int) ([]MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]MenuItem, 0)
	for _, item := range r.items {
		if item.RestaurantID == restaurantID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *InMemoryRepository) ListByIDs(ids []int) ([]MenuItem, error) {
	if len(ids) == 0 {
		return []MenuItem{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]MenuItem, 0, len(ids))
	for _, id := range ids {
		for _, item := range r.items {
			if item.ID == id {
				out = append(out, item)
				break
			}
		}
	}

	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}

	return MenuItem{}, ErrNotFound
}

func (r *InMemoryRepository) Create(item MenuItem) (MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == 0 {
		item.ID = r.nextID
		r.nextID++
	}

	r.items = append(r.items, item)
	return item, nil
}

func (r *InMemoryRepository) Update(id int, update MenuItem) (MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			update.ID = id
			update.RestaurantID = item.RestaurantID
			r.items[i] = update
			return update, nil
		}
	}

	return MenuItem{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}
