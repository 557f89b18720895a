package cart

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getCartByUserQuery = `
		SELECT "cartId", "userId", "restaurantId", items, total, "createdAt", "updatedAt"
		FROM carts
		WHERE "userId" = $1
	`
	upsertCartQuery = `
		INSERT INTO carts ("userId", "restaurantId", items, total, "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ("userId") DO UPDATE
		SET "restaurantId" = EXCLUDED."restaurantId",
			items = EXCLUDED.items,
			total = EXCLUDED.total,
			"updatedAt" = EXCLUDED."updatedAt"
		RETURNING "cartId"
	`
	deleteCartQuery = `DELETE FROM carts WHERE "userId" = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUser(userID int) (Cart, error) {
	var c Cart
	var itemsJSON []byte
	err := r.db.QueryRow(getCartByUserQuery, userID).Scan(
		&c.ID, &c.UserID, &c.RestaurantID, &itemsJSON, &c.Total, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Cart{}, ErrCartNotFound
		}
		return Cart{}, err
	}

	if err := json.Unmarshal(itemsJSON, &c.Items); err != nil {
		return Cart{}, err
	}

	return c, nil
}

func (r *PostgresRepository) Upsert(c Cart) (Cart, error) {
	itemsJSON, err := json.Marshal(c.Items)
	if err != nil {
		return Cart{}, err
	}

	err = r.db.QueryRow(upsertCartQuery, c.UserID, c.RestaurantID, itemsJSON,
		c.Total, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		return Cart{}, err
	}

	return c, nil
}

func (r *PostgresRepository) Delete(userID int) error {
	res, err := r.db.Exec(deleteCartQuery, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCartNotFound
	}

	return nil
}
