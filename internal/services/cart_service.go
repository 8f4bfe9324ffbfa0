package services

import (
	"database/sql"
	"errors"

	"github.com/russellpeiris/mocked/internal/apperr"
	"github.com/russellpeiris/mocked/internal/domain"
	"github.com/russellpeiris/mocked/internal/money"
	"github.com/russellpeiris/mocked/internal/repos"
	"github.com/russellpeiris/mocked/internal/validate"
)

type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// Add resolves the product first, then upserts the line. Adding a product
// already in the cart merges by incrementing the quantity.
func (s *CartService) Add(email string, productID domain.ProductID, qty int) error {
	qty = validate.Qty(qty)
	if _, err := s.Prods.Get(productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("product not found")
		}
		return apperr.Internal(err)
	}
	if err := s.Carts.UpsertLine(email, productID, qty); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

type CartItemView struct {
	ProductID domain.ProductID `json:"productId"`
	Name      string           `json:"name"`
	Price     string           `json:"price"`
	Qty       int              `json:"qty"`
	Subtotal  money.Cents      `json:"subtotal"`
}

type CartView struct {
	Items []CartItemView `json:"products"`
	Total money.Cents    `json:"totalAmount"`
}

// View returns the resolved cart with a fixed-point total. Lines whose
// product was removed from the catalog are shown without pricing and do not
// contribute to the total; placement is where dangling lines become an error.
func (s *CartService) View(email string) (CartView, error) {
	lines, err := s.Carts.Lines(email)
	if err != nil {
		return CartView{}, apperr.Internal(err)
	}
	if len(lines) == 0 {
		return CartView{}, apperr.NotFound("Cart not found")
	}
	cv := CartView{Items: make([]CartItemView, 0, len(lines))}
	for _, l := range lines {
		item := CartItemView{ProductID: l.ProductID, Qty: l.Qty, Name: l.Name.String, Price: l.Price.String}
		if l.Resolved() {
			unit, perr := money.Parse(l.Price.String)
			if perr == nil {
				item.Subtotal = unit.Mul(l.Qty)
				cv.Total += item.Subtotal
			}
		}
		cv.Items = append(cv.Items, item)
	}
	return cv, nil
}
