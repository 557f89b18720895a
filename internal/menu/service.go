package menu

import (
	"errors"

	"github.com/yashp387/Food-Ordering-System/internal/restaurant"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrNotOwner           = errors.New("only the restaurant owner can manage menu items")
	ErrInvalidPrice       = errors.New("price must be non-negative")
	ErrInvalidCategory    = errors.New("invalid menu item category")
)

// RestaurantService is the slice of the restaurant service the menu
// service needs for owner checks.
type RestaurantService interface {
	GetByID(id int) (restaurant.Restaurant, error)
}

// Service orchestrates menu item operations. Writes are gated on the
// owning restaurant's owner.
type Service struct {
	repo        Repository
	restaurants RestaurantService
}

func NewService(repo Repository, restaurants RestaurantService) *Service {
	return &Service{repo: repo, restaurants: restaurants}
}

func (s *Service) ListByRestaurant(restaurantID int) ([]MenuItem, error) {
	if _, err := s.restaurants.GetByID(restaurantID); err != nil {
		if err == restaurant.ErrNotFound {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	return s.repo.ListByRestaurant(restaurantID)
}

func (s *Service) GetByID(id int) (MenuItem, error) {
	if id <= 0 {
		return MenuItem{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []int) ([]MenuItem, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) Create(ownerID, restaurantID int, item MenuItem) (MenuItem, error) {
	if err := validateItem(item); err != nil {
		return MenuItem{}, err
	}

	rest, err := s.restaurants.GetByID(restaurantID)
	if err != nil {
		if err == restaurant.ErrNotFound {
			return MenuItem{}, ErrRestaurantNotFound
		}
		return MenuItem{}, err
	}
	if rest.OwnerID != ownerID {
		return MenuItem{}, ErrNotOwner
	}

	item.RestaurantID = restaurantID
	return s.repo.Create(item)
}

func (s *Service) Update(ownerID, menuItemID int, item MenuItem) (MenuItem, error) {
	if err := validateItem(item); err != nil {
		return MenuItem{}, err
	}

	if err := s.checkOwner(ownerID, menuItemID); err != nil {
		return MenuItem{}, err
	}

	return s.repo.Update(menuItemID, item)
}

func (s *Service) Delete(ownerID, menuItemID int) error {
	if err := s.checkOwner(ownerID, menuItemID); err != nil {
		return err
	}

	return s.repo.Delete(menuItemID)
}

// checkOwner resolves the menu item's restaurant and verifies ownerID owns it.
func (s *Service) checkOwner(ownerID, menuItemID int) error {
	item, err := s.repo.GetByID(menuItemID)
	if err != nil {
		return err
	}

	rest, err := s.restaurants.GetByID(item.RestaurantID)
	if err != nil {
		if err == restaurant.ErrNotFound {
			return ErrRestaurantNotFound
		}
		return err
	}
	if rest.OwnerID != ownerID {
		return ErrNotOwner
	}

	return nil
}

func validateItem(item MenuItem) error {
	if item.Price < 0 {
		return ErrInvalidPrice
	}
	if !ValidCategory(item.Category) {
		return ErrInvalidCategory
	}
	return nil
}
