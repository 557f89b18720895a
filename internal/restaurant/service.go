package restaurant

import "errors"

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Service orchestrates restaurant catalog operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Restaurant, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Restaurant, error) {
	if id <= 0 {
		return Restaurant{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}

func (s *Service) Create(rest Restaurant) (Restaurant, error) {
	if rest.Rating < 1 || rest.Rating > 5 {
		return Restaurant{}, ErrInvalidRating
	}
	if rest.Status == "" {
		rest.Status = StatusOpen
	}
	return s.repo.Create(rest)
}
