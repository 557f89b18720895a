package menu

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listMenuByRestaurantQuery = `
		SELECT "menuItemId", "restaurantId", name, description, price, category, available, "createdAt", "updatedAt"
		FROM menu_items
		WHERE "restaurantId" = $1
		ORDER BY "menuItemId"
	`
	listMenuByIDsQuery = `
		SELECT "menuItemId", "restaurantId", name, description, price, category, available, "createdAt", "updatedAt"
		FROM menu_items
		WHERE "menuItemId" = ANY($1::int[])
		ORDER BY array_position($1::int[], "menuItemId")
	`
	getMenuItemByIDQuery = `
		SELECT "menuItemId", "restaurantId", name, description, price, category, available, "createdAt", "updatedAt"
		FROM menu_items
		WHERE "menuItemId" = $1
	`
	insertMenuItemQuery = `
		INSERT INTO menu_items ("restaurantId", name, description, price, category, available, "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING "menuItemId"
	`
	updateMenuItemQuery = `
		UPDATE menu_items
		SET name = $1,
			description = $2,
			price = $3,
			category = $4,
			available = $5,
			"updatedAt" = $6
		WHERE "menuItemId" = $7
	`
	deleteMenuItemQuery = `DELETE FROM menu_items WHERE "menuItemId" = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row rowScanner) (MenuItem, error) {
	var item MenuItem
	err := row.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description,
		&item.Price, &item.Category, &item.Available, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return MenuItem{}, err
	}
	return item, nil
}

func (r *PostgresRepository) ListByRestaurant(restaurantID int) ([]MenuItem, error) {
	return r.queryItems(listMenuByRestaurantQuery, restaurantID)
}

func (r *PostgresRepository) ListByIDs(ids []int) ([]MenuItem, error) {
	if len(ids) == 0 {
		return []MenuItem{}, nil
	}
	return r.queryItems(listMenuByIDsQuery, pq.Array(ids))
}

func (r *PostgresRepository) queryItems(query string, arg any) ([]MenuItem, error) {
	rows, err := r.db.Query(query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItem, 0)
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (MenuItem, error) {
	item, err := scanMenuItem(r.db.QueryRow(getMenuItemByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return MenuItem{}, ErrNotFound
		}
		return MenuItem{}, err
	}

	return item, nil
}

func (r *PostgresRepository) Create(item MenuItem) (MenuItem, error) {
	err := r.db.QueryRow(insertMenuItemQuery, item.RestaurantID, item.Name, item.Description,
		item.Price, item.Category, item.Available, item.CreatedAt, item.UpdatedAt).Scan(&item.ID)
	if err != nil {
		return MenuItem{}, err
	}

	return item, nil
}

func (r *PostgresRepository) Update(id int, item MenuItem) (MenuItem, error) {
	res, err := r.db.Exec(updateMenuItemQuery, item.Name, item.Description, item.Price,
		item.Category, item.Available, item.UpdatedAt, id)
	if err != nil {
		return MenuItem{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return MenuItem{}, ErrNotFound
	}

	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteMenuItemQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}
