package order

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (number, "userId", "restaurantId", items, total, status, "paymentStatus", "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING "orderId"
	`
	deleteCartForUserQuery = `DELETE FROM carts WHERE "userId" = $1`

	getOrderByIDQuery = `
		SELECT "orderId", number, "userId", "restaurantId", items, total, status, "paymentStatus", "createdAt", "updatedAt"
		FROM orders
		WHERE "orderId" = $1
	`
	listOrdersByUserQuery = `
		SELECT "orderId", number, "userId", "restaurantId", items, total, status, "paymentStatus", "createdAt", "updatedAt"
		FROM orders
		WHERE "userId" = $1
		ORDER BY "orderId" DESC
	`
	listAllOrdersQuery = `
		SELECT "orderId", number, "userId", "restaurantId", items, total, status, "paymentStatus", "createdAt", "updatedAt"
		FROM orders
		ORDER BY "orderId" DESC
	`
	updateOrderStatusQuery = `
		UPDATE orders
		SET status = $1,
			"paymentStatus" = $2,
			"updatedAt" = $3
		WHERE "orderId" = $4
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateFromCart inserts the order and deletes the user's cart in one
// transaction, so checkout never leaves both an order and a stale cart
// behind. A delete affecting zero rows is accepted: the cart may already
// be gone on a retry.
func (r *PostgresRepository) CreateFromCart(ord Order, userID int) (Order, error) {
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	err = tx.QueryRow(insertOrderQuery, ord.Number, ord.UserID, ord.RestaurantID, itemsJSON,
		ord.Total, ord.Status, ord.PaymentStatus, ord.CreatedAt, ord.UpdatedAt).Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}

	if _, err := tx.Exec(deleteCartForUserQuery, userID); err != nil {
		return Order{}, err
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}

	return ord, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var ord Order
	var itemsJSON []byte
	err := row.Scan(&ord.ID, &ord.Number, &ord.UserID, &ord.RestaurantID, &itemsJSON,
		&ord.Total, &ord.Status, &ord.PaymentStatus, &ord.CreatedAt, &ord.UpdatedAt)
	if err != nil {
		return Order{}, err
	}
	if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(getOrderByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}

	return ord, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	return r.queryOrders(listOrdersByUserQuery, userID)
}

func (r *PostgresRepository) ListAll() ([]Order, error) {
	return r.queryOrders(listAllOrdersQuery)
}

func (r *PostgresRepository) queryOrders(query string, args ...any) ([]Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}

	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(id int, status, paymentStatus, updatedAt string) (Order, error) {
	res, err := r.db.Exec(updateOrderStatusQuery, status, paymentStatus, updatedAt, id)
	if err != nil {
		return Order{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Order{}, ErrNotFound
	}

	return r.GetByID(id)
}
