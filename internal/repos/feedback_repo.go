package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/russellpeiris/mocked/internal/domain"
)

type FeedbackRepo struct{ db *sqlx.DB }

func NewFeedbackRepo(db *sqlx.DB) *FeedbackRepo { return &FeedbackRepo{db: db} }

func (r *FeedbackRepo) Create(f *domain.Feedback) error {
	_, err := r.db.Exec(`
		INSERT INTO feedback(id,email,product_id,comment,rating)
		VALUES(?,?,?,?,?)
	`, f.ID, f.Email, f.ProductID, f.Comment, f.Rating)
	return err
}

// ByProductAndEmail returns the newest feedback record for the pair. The
// store does not enforce one-per-pair, so newest wins.
func (r *FeedbackRepo) ByProductAndEmail(productID domain.ProductID, email string) (domain.Feedback, error) {
	var f domain.Feedback
	err := r.db.Get(&f, `
		SELECT id,email,product_id,COALESCE(comment,'') AS comment,rating,created_at
		FROM feedback
		WHERE product_id = ? AND LOWER(email) = LOWER(?)
		ORDER BY created_at DESC, id LIMIT 1
	`, productID, email)
	return f, err
}
