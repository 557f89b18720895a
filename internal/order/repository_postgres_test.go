package order

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"orderId", "number", "userId", "restaurantId", "items", "total", "status", "paymentStatus", "createdAt", "updatedAt"})
}

func TestPostgresCreateFromCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	itemsJSON := []byte(`[{"menuItemId":1,"quantity":2,"price":500,"subTotal":1000}]`)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("n-1", 42, 1, itemsJSON, int64(1000), StatusPending, PaymentPending, "t", "t").
		WillReturnRows(sqlmock.NewRows([]string{"orderId"}).AddRow(9))
	mock.ExpectExec("DELETE FROM carts").WithArgs(42).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ord, err := repo.CreateFromCart(Order{
		Number:        "n-1",
		UserID:        42,
		RestaurantID:  1,
		Items:         []LineItem{{MenuItemID: 1, Quantity: 2, Price: 500, SubTotal: 1000}},
		Total:         1000,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		CreatedAt:     "t",
		UpdatedAt:     "t",
	}, 42)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if ord.ID != 9 {
		t.Fatalf("expected returned orderId, got %+v", ord)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreateFromCart_RollsBackOnCartDeleteFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"orderId"}).AddRow(9))
	mock.ExpectExec("DELETE FROM carts").WithArgs(42).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err = repo.CreateFromCart(Order{
		Number: "n-1",
		UserID: 42,
		Items:  []LineItem{{MenuItemID: 1, Quantity: 1, Price: 500, SubTotal: 500}},
		Total:  500,
	}, 42)
	if err == nil {
		t.Fatal("expected error when cart delete fails")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := orderRows().
		AddRow(9, "n-1", 42, 1, []byte(`[{"menuItemId":1,"quantity":2,"price":500,"subTotal":1000}]`),
			1000, StatusPending, PaymentPending, "t", "t")
	mock.ExpectQuery("FROM orders").WithArgs(9).WillReturnRows(rows)

	ord, err := repo.GetByID(9)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if ord.Number != "n-1" || len(ord.Items) != 1 || ord.Items[0].SubTotal != 1000 {
		t.Fatalf("unexpected order %+v", ord)
	}

	mock.ExpectQuery("FROM orders").WithArgs(10).WillReturnRows(orderRows())
	if _, err := repo.GetByID(10); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders").
		WithArgs(StatusConfirmed, PaymentCompleted, "u2", 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	rows := orderRows().
		AddRow(9, "n-1", 42, 1, []byte(`[]`), 1000, StatusConfirmed, PaymentCompleted, "t", "u2")
	mock.ExpectQuery("FROM orders").WithArgs(9).WillReturnRows(rows)

	ord, err := repo.UpdateStatus(9, StatusConfirmed, PaymentCompleted, "u2")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if ord.Status != StatusConfirmed || ord.PaymentStatus != PaymentCompleted {
		t.Fatalf("unexpected order %+v", ord)
	}

	mock.ExpectExec("UPDATE orders").
		WithArgs(StatusConfirmed, PaymentCompleted, "u2", 10).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if _, err := repo.UpdateStatus(10, StatusConfirmed, PaymentCompleted, "u2"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
