package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/russellpeiris/mocked/internal/apperr"
	"github.com/russellpeiris/mocked/internal/domain"
	"github.com/russellpeiris/mocked/internal/repos"
	"github.com/russellpeiris/mocked/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedProduct(t *testing.T, db *sqlx.DB, id, name, price string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO products(id,name,price,description,category,image_url)
		VALUES(?,?,?,?,?,?)`, id, name, price, "", "test", "")
	require.NoError(t, err)
}

func newOrderStack(db *sqlx.DB) (*services.CartService, *services.OrderService, *repos.OrderRepo) {
	cartRepo := repos.NewCartRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	return services.NewCartService(cartRepo, prodRepo),
		services.NewOrderService(cartRepo, orderRepo),
		orderRepo
}

func TestPlaceEmptyCart(t *testing.T) {
	db := memdb(t)
	_, orderSvc, _ := newOrderStack(db)

	_, err := orderSvc.Place("nobody@example.com")
	require.Error(t, err)
	require.Equal(t, apperr.CodeEmptyCart, apperr.CodeOf(err))

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM orders`))
	require.Zero(t, n, "empty-cart placement must not create an order")
}

func TestPlaceComputesTotalAndClearsCart(t *testing.T) {
	db := memdb(t)
	cartSvc, orderSvc, _ := newOrderStack(db)

	seedProduct(t, db, "p1", "Widget", "$10.00")
	seedProduct(t, db, "p2", "Gadget", "$5.50")

	email := "buyer@example.com"
	require.NoError(t, cartSvc.Add(email, "p1", 2))
	require.NoError(t, cartSvc.Add(email, "p2", 1))

	placed, err := orderSvc.Place(email)
	require.NoError(t, err)
	require.NoError(t, placed.ClearErr)
	require.Equal(t, "25.50", placed.Order.TotalAmount.String())
	require.Equal(t, domain.StatusPending, placed.Order.Status)
	require.NotEmpty(t, placed.Order.OrderDate)
	require.Len(t, placed.Order.Items, 2)

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM cart_items WHERE email=?`, email))
	require.Zero(t, n, "cart must be empty after placement")

	// snapshot persisted
	items, err := repos.NewOrderRepo(db).Items(placed.Order.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestPlaceDuplicateAddMergesQuantity(t *testing.T) {
	db := memdb(t)
	cartSvc, orderSvc, _ := newOrderStack(db)

	seedProduct(t, db, "p1", "Widget", "$3.00")

	email := "merge@example.com"
	require.NoError(t, cartSvc.Add(email, "p1", 1))
	require.NoError(t, cartSvc.Add(email, "p1", 2))

	placed, err := orderSvc.Place(email)
	require.NoError(t, err)
	require.Len(t, placed.Order.Items, 1)
	require.Equal(t, 3, placed.Order.Items[0].Qty)
	require.Equal(t, "9.00", placed.Order.TotalAmount.String())
}

func TestPlaceSurvivesCartClearFailure(t *testing.T) {
	db := memdb(t)
	cartSvc, orderSvc, orderRepo := newOrderStack(db)

	seedProduct(t, db, "p1", "Widget", "$10.00")
	email := "stuck@example.com"
	require.NoError(t, cartSvc.Add(email, "p1", 1))

	// make the bulk delete fail after the order is durably written
	_, err := db.Exec(`CREATE TRIGGER block_cart_delete BEFORE DELETE ON cart_items
		BEGIN SELECT RAISE(ABORT, 'cart locked'); END`)
	require.NoError(t, err)

	placed, err := orderSvc.Place(email)
	require.NoError(t, err, "a stuck cart must not fail the placement")
	require.Error(t, placed.ClearErr)

	// the order stands
	row, err := orderRepo.Get(placed.Order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, row.Status)
	require.Equal(t, "10.00", row.TotalCents.String())

	// and the cart is indeed still there
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM cart_items WHERE email=?`, email))
	require.Equal(t, 1, n)
}

func TestPlaceEmailCaseInsensitive(t *testing.T) {
	db := memdb(t)
	cartSvc, orderSvc, _ := newOrderStack(db)

	seedProduct(t, db, "p1", "Widget", "$4.00")
	require.NoError(t, cartSvc.Add("Buyer@Example.com", "p1", 1))

	placed, err := orderSvc.Place("buyer@example.com")
	require.NoError(t, err)
	require.Equal(t, "4.00", placed.Order.TotalAmount.String())

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM cart_items`))
	require.Zero(t, n, "cart cleared regardless of submitted email case")
}

func TestPlaceDanglingProduct(t *testing.T) {
	db := memdb(t)
	cartSvc, orderSvc, _ := newOrderStack(db)

	seedProduct(t, db, "p1", "Widget", "$10.00")
	email := "dangling@example.com"
	require.NoError(t, cartSvc.Add(email, "p1", 1))

	_, err := db.Exec(`DELETE FROM products WHERE id='p1'`)
	require.NoError(t, err)

	_, err = orderSvc.Place(email)
	require.Error(t, err)
	require.Equal(t, apperr.CodeDanglingRef, apperr.CodeOf(err))

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM orders`))
	require.Zero(t, n)
}

func TestRequestCancel(t *testing.T) {
	db := memdb(t)
	cartSvc, orderSvc, orderRepo := newOrderStack(db)

	seedProduct(t, db, "p1", "Widget", "$10.00")
	email := "cancel@example.com"
	require.NoError(t, cartSvc.Add(email, "p1", 1))
	placed, err := orderSvc.Place(email)
	require.NoError(t, err)
	oid := placed.Order.ID

	require.NoError(t, orderSvc.RequestCancel(oid))
	row, err := orderRepo.Get(oid)
	require.NoError(t, err)
	require.Equal(t, domain.StatusRequestCancel, row.Status)

	// already cancelled -> error, status untouched
	_, err = db.Exec(`UPDATE orders SET status=? WHERE id=?`, domain.StatusCancelled, oid)
	require.NoError(t, err)
	err = orderSvc.RequestCancel(oid)
	require.Equal(t, apperr.CodeAlreadyCancelled, apperr.CodeOf(err))
	row, err = orderRepo.Get(oid)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCancelled, row.Status)
}

func TestRequestCancelUnknownOrder(t *testing.T) {
	db := memdb(t)
	_, orderSvc, _ := newOrderStack(db)

	err := orderSvc.RequestCancel("no-such-order")
	require.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestHistoryCarriesDisplayLabelWithoutMutatingID(t *testing.T) {
	db := memdb(t)
	_, orderSvc, _ := newOrderStack(db)

	oid := domain.OrderID("5f8a1b2c-0000-0000-0000-000000000000")
	_, err := db.Exec(`INSERT INTO orders(id,email,total_cents,status) VALUES(?,?,?,?)`,
		oid, "label@example.com", 1000, domain.StatusPending)
	require.NoError(t, err)

	orders, err := orderSvc.History("label@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, oid, orders[0].ID, "id must stay a valid lookup key")
	require.Equal(t, "Order 1602886444", orders[0].DisplayLabel)
}

func TestDisplayLabel(t *testing.T) {
	require.Equal(t, "Order 1602886444", services.DisplayLabel("5f8a1b2c-99aa-4bcd-8eef-001122334455"))
	// non-hex prefix falls back to the raw id
	require.Equal(t, "Order no-such-id", services.DisplayLabel("no-such-id"))
}
