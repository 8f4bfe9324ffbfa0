package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/russellpeiris/mocked/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, price, COALESCE(description,'') AS description,
	COALESCE(category,'') AS category, COALESCE(image_url,'') AS image_url,
	created_at`

func (r *ProductRepo) Create(p *domain.Product) error {
	_, err := r.db.Exec(`
		INSERT INTO products(id,name,price,description,category,image_url)
		VALUES(?,?,?,?,?,?)
	`, p.ID, p.Name, p.Price, p.Description, p.Category, p.ImageURL)
	return err
}

func (r *ProductRepo) Get(id domain.ProductID) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY created_at DESC, id`)
	return out, err
}
