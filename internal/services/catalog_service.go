package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/russellpeiris/mocked/internal/apperr"
	"github.com/russellpeiris/mocked/internal/domain"
	"github.com/russellpeiris/mocked/internal/money"
	"github.com/russellpeiris/mocked/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

type NewProduct struct {
	Name        string
	Price       string
	Description string
	Category    string
	ImageURL    string
}

// CreateProduct stores the price string as submitted but rejects anything
// that won't parse to a non-negative amount, so order placement can rely on
// catalog prices being parseable.
func (s *CatalogService) CreateProduct(in NewProduct) (*domain.Product, error) {
	if in.Name == "" {
		return nil, apperr.Validation("name is required")
	}
	if _, err := money.Parse(in.Price); err != nil {
		return nil, apperr.Validation("price must be a non-negative amount")
	}
	p := &domain.Product{
		ID:          domain.ProductID(uuid.NewString()),
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
	}
	if err := s.Prods.Create(p); err != nil {
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	out, err := s.Prods.List()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *CatalogService) GetProduct(id domain.ProductID) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, apperr.NotFound("product not found")
	}
	if err != nil {
		return domain.Product{}, apperr.Internal(err)
	}
	return p, nil
}
