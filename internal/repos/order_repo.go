package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/russellpeiris/mocked/internal/domain"
	"github.com/russellpeiris/mocked/internal/money"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type OrderRow struct {
	ID         domain.OrderID `db:"id"`
	Email      string         `db:"email"`
	TotalCents money.Cents    `db:"total_cents"`
	Status     string         `db:"status"`
	CreatedAt  string         `db:"created_at"`
}

type OrderItemRow struct {
	ProductID domain.ProductID `db:"product_id"`
	Name      string           `db:"name"`
	Qty       int              `db:"qty"`
	UnitCents money.Cents      `db:"unit_price_cents"`
}

// ItemSnapshot is what Create freezes per line at placement time.
type ItemSnapshot struct {
	ProductID domain.ProductID
	Name      string
	Qty       int
	UnitCents money.Cents
}

// Create inserts the order header and its item snapshot in one transaction,
// so a half-written order can never be observed. The caller supplies the
// placement timestamp so the response can carry it without a re-read.
func (r *OrderRepo) Create(orderID domain.OrderID, email string, total money.Cents, createdAt string, items []ItemSnapshot) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO orders(id,email,total_cents,status,created_at)
		VALUES(?,?,?,?,?)
	`, orderID, email, total, domain.StatusPending, createdAt); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := tx.Exec(`
			INSERT INTO order_items(order_id,product_id,qty,unit_price_cents,name)
			VALUES(?,?,?,?,?)
		`, orderID, it.ProductID, it.Qty, it.UnitCents, it.Name); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *OrderRepo) Get(orderID domain.OrderID) (OrderRow, error) {
	var o OrderRow
	err := r.db.Get(&o, `
		SELECT id,email,total_cents,status,created_at FROM orders WHERE id = ?
	`, orderID)
	return o, err
}

func (r *OrderRepo) Items(orderID domain.OrderID) ([]OrderItemRow, error) {
	out := []OrderItemRow{}
	err := r.db.Select(&out, `
		SELECT product_id, name, qty, unit_price_cents
		FROM order_items WHERE order_id = ?
		ORDER BY name, product_id
	`, orderID)
	return out, err
}

func (r *OrderRepo) ListByEmail(email string) ([]OrderRow, error) {
	out := []OrderRow{}
	err := r.db.Select(&out, `
		SELECT id,email,total_cents,status,created_at
		FROM orders
		WHERE LOWER(email) = LOWER(?)
		ORDER BY datetime(created_at) DESC, id
	`, email)
	return out, err
}

// UpdateStatusIfNot flips status unless the row is already in a terminal
// status; reports whether a row changed.
func (r *OrderRepo) UpdateStatusIfNot(orderID domain.OrderID, status, not string) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE orders SET status = ? WHERE id = ? AND status != ?
	`, status, orderID, not)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
