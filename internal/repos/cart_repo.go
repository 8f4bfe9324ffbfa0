package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/russellpeiris/mocked/internal/domain"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// CartLine is a cart row joined against the catalog. Product columns are
// nullable so a dangling reference is visible to callers instead of the join
// silently dropping the row.
type CartLine struct {
	ProductID domain.ProductID `db:"product_id"`
	Qty       int              `db:"qty"`
	Name      sql.NullString   `db:"name"`
	Price     sql.NullString   `db:"price"`
	Category  sql.NullString   `db:"category"`
	ImageURL  sql.NullString   `db:"image_url"`
}

// Resolved reports whether the referenced product still exists.
func (l CartLine) Resolved() bool { return l.Price.Valid }

// UpsertLine adds a line or merges quantity into an existing one. Lines are
// keyed by lowercased email so cart, user and order lookups agree on identity.
func (r *CartRepo) UpsertLine(email string, productID domain.ProductID, qty int) error {
	_, err := r.db.Exec(`
		INSERT INTO cart_items(email,product_id,qty,created_at)
		VALUES(LOWER(?),?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(email,product_id) DO UPDATE
		SET qty = cart_items.qty + excluded.qty, updated_at = CURRENT_TIMESTAMP
	`, email, productID, qty)
	return err
}

// Lines returns the cart for an email with product fields resolved where the
// product still exists.
func (r *CartRepo) Lines(email string) ([]CartLine, error) {
	out := []CartLine{}
	err := r.db.Select(&out, `
	  SELECT ci.product_id, ci.qty, p.name, p.price, p.category, p.image_url
	  FROM cart_items ci LEFT JOIN products p ON p.id = ci.product_id
	  WHERE LOWER(ci.email) = LOWER(?)
	  ORDER BY ci.created_at, ci.product_id
	`, email)
	return out, err
}

// Clear removes every line for the email and reports how many went away.
func (r *CartRepo) Clear(email string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM cart_items WHERE LOWER(email) = LOWER(?)`, email)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
