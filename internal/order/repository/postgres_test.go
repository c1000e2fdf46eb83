package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/fekuna/retail-backoffice/internal/apperr"
	"github.com/fekuna/retail-backoffice/internal/model"
)

func init() {
	// Named queries must rebind to $N, same as against a real Postgres.
	sqlx.BindDriver("sqlmock", sqlx.DOLLAR)
}

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func customerRows(c *model.Customer) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "phone", "created_at"}).
		AddRow(c.ID, c.Name, c.Email, c.Phone, c.CreatedAt)
}

func storeExistsRows(exists bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(exists)
}

func TestPlaceOrder_SuccessWithExistingCustomer(t *testing.T) {
	repo, mock := newMockRepo(t)

	existing := &model.Customer{
		ID: "cust-1", Name: "Alice", Email: "alice@example.com",
		Phone: "123", CreatedAt: time.Now(),
	}
	candidate := &model.Customer{
		ID: "cust-candidate", Name: "Someone Else", Email: "alice@example.com",
	}
	ord := &model.Order{ID: "order-1", StoreID: "store-1", TotalPrice: 29.97, Date: time.Now()}
	items := []model.OrderItem{
		{ID: "item-1", ProductID: "prod-1", Quantity: 3, Price: 29.97},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM customers WHERE email = \$1`).
		WithArgs("alice@example.com").
		WillReturnRows(customerRows(existing))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("store-1").
		WillReturnRows(storeExistsRows(true))
	mock.ExpectExec(`INSERT INTO orders`).
		WithArgs("order-1", "cust-1", "store-1", 29.97, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE inventory`).
		WithArgs(3, "prod-1", "store-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs("item-1", "order-1", "prod-1", 3, 29.97).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.PlaceOrder(context.Background(), candidate, ord, items); err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if ord.CustomerID != "cust-1" {
		t.Fatalf("expected existing customer to win, got %s", ord.CustomerID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceOrder_CreatesUnknownCustomer(t *testing.T) {
	repo, mock := newMockRepo(t)

	candidate := &model.Customer{
		ID: "cust-new", Name: "Bob", Email: "bob@example.com",
		Phone: "555", CreatedAt: time.Now(),
	}
	ord := &model.Order{ID: "order-1", StoreID: "store-1", TotalPrice: 9.99, Date: time.Now()}
	items := []model.OrderItem{
		{ID: "item-1", ProductID: "prod-1", Quantity: 1, Price: 9.99},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM customers WHERE email = \$1`).
		WithArgs("bob@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "created_at"}))
	mock.ExpectExec(`INSERT INTO customers`).
		WithArgs("cust-new", "Bob", "bob@example.com", "555", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("store-1").
		WillReturnRows(storeExistsRows(true))
	mock.ExpectExec(`INSERT INTO orders`).
		WithArgs("order-1", "cust-new", "store-1", 9.99, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE inventory`).
		WithArgs(1, "prod-1", "store-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs("item-1", "order-1", "prod-1", 1, 9.99).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.PlaceOrder(context.Background(), candidate, ord, items); err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if ord.CustomerID != "cust-new" {
		t.Fatalf("expected candidate customer id, got %s", ord.CustomerID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceOrder_StoreNotFoundRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	candidate := &model.Customer{ID: "cust-1", Email: "alice@example.com"}
	ord := &model.Order{ID: "order-1", StoreID: "missing", TotalPrice: 5, Date: time.Now()}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM customers WHERE email = \$1`).
		WithArgs("alice@example.com").
		WillReturnRows(customerRows(&model.Customer{ID: "cust-1", Email: "alice@example.com", CreatedAt: time.Now()}))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("missing").
		WillReturnRows(storeExistsRows(false))
	mock.ExpectRollback()

	err := repo.PlaceOrder(context.Background(), candidate, ord, []model.OrderItem{
		{ID: "item-1", ProductID: "prod-1", Quantity: 1, Price: 5},
	})
	if err == nil {
		t.Fatal("expected store-not-found error")
	}
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("expected NotFound, got kind %v (%v)", apperr.KindOf(err), err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceOrder_InsufficientStockRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	candidate := &model.Customer{ID: "cust-1", Email: "alice@example.com"}
	ord := &model.Order{ID: "order-1", StoreID: "store-1", TotalPrice: 50, Date: time.Now()}
	items := []model.OrderItem{
		{ID: "item-1", ProductID: "prod-1", Quantity: 2, Price: 20},
		{ID: "item-2", ProductID: "prod-2", Quantity: 11, Price: 30},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM customers WHERE email = \$1`).
		WithArgs("alice@example.com").
		WillReturnRows(customerRows(&model.Customer{ID: "cust-1", Email: "alice@example.com", CreatedAt: time.Now()}))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("store-1").
		WillReturnRows(storeExistsRows(true))
	mock.ExpectExec(`INSERT INTO orders`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// First line deducts fine, second has too little stock. The conditional
	// UPDATE reports zero rows and the whole transaction must roll back,
	// undoing the first deduction as well.
	mock.ExpectExec(`UPDATE inventory`).
		WithArgs(2, "prod-1", "store-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO order_items`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE inventory`).
		WithArgs(11, "prod-2", "store-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.PlaceOrder(context.Background(), candidate, ord, items)
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	if apperr.KindOf(err) != apperr.BusinessRule {
		t.Fatalf("expected BusinessRule, got kind %v (%v)", apperr.KindOf(err), err)
	}
	if got := apperr.MessageOf(err); got != "Insufficient stock for product: prod-2" {
		t.Fatalf("message should name the offending product, got %q", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
