package restaurant

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("restaurant not found")

type Repository interface {
	List() ([]Restaurant, error)
	GetByID(id int) (Restaurant, error)
	Create(r Restaurant) (Restaurant, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu          sync.RWMutex
	restaurants []Restaurant
	nextID      int
}

func NewInMemoryRepository(seed []Restaurant) *InMemoryRepository {
	repo := &InMemoryRepository{
		restaurants: make([]Restaurant, 0, len(seed)),
		nextID:      1,
	}

	maxID := 0
	for _, r := range seed {
		repo.restaurants = append(repo.restaurants, r)
		if r.ID > maxID {
			maxID = r.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() ([]Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Restaurant, len(r.restaurants))
	copy(out, r.restaurants)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rest := range r.restaurants {
		if rest.ID == id {
			return rest, nil
		}
	}

	return Restaurant{}, ErrNotFound
}

func (r *InMemoryRepository) Create(rest Restaurant) (Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rest.ID == 0 {
		rest.ID = r.nextID
		r.nextID++
	}

	r.restaurants = append(r.restaurants, rest)
	return rest, nil
}
