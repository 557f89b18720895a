package restaurant

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listRestaurantsQuery = `
		SELECT "restaurantId", name, cuisine, description, address, rating, status, "ownerId", "createdAt", "updatedAt"
		FROM restaurants
		ORDER BY "restaurantId"
	`
	getRestaurantByIDQuery = `
		SELECT "restaurantId", name, cuisine, description, address, rating, status, "ownerId", "createdAt", "updatedAt"
		FROM restaurants
		WHERE "restaurantId" = $1
	`
	insertRestaurantQuery = `
		INSERT INTO restaurants (name, cuisine, description, address, rating, status, "ownerId", "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING "restaurantId"
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner) (Restaurant, error) {
	var rest Restaurant
	err := row.Scan(&rest.ID, &rest.Name, pq.Array(&rest.Cuisine), &rest.Description,
		&rest.Address, &rest.Rating, &rest.Status, &rest.OwnerID, &rest.CreatedAt, &rest.UpdatedAt)
	if err != nil {
		return Restaurant{}, err
	}
	return rest, nil
}

func (r *PostgresRepository) List() ([]Restaurant, error) {
	rows, err := r.db.Query(listRestaurantsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]Restaurant, 0)
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Restaurant, error) {
	rest, err := scanRestaurant(r.db.QueryRow(getRestaurantByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Restaurant{}, ErrNotFound
		}
		return Restaurant{}, err
	}

	return rest, nil
}

func (r *PostgresRepository) Create(rest Restaurant) (Restaurant, error) {
	err := r.db.QueryRow(insertRestaurantQuery, rest.Name, pq.Array(rest.Cuisine), rest.Description,
		rest.Address, rest.Rating, rest.Status, rest.OwnerID, rest.CreatedAt, rest.UpdatedAt).Scan(&rest.ID)
	if err != nil {
		return Restaurant{}, err
	}

	return rest, nil
}
