package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/russellpeiris/mocked/internal/repos"
	"github.com/russellpeiris/mocked/internal/services"
)

type Deps struct {
	AuthHandler     *AuthHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	FeedbackHandler *FeedbackHandler
	OrderHandler    *OrderHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	fbRepo := repos.NewFeedbackRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	authSvc := services.NewAuthService(userRepo)
	catalogSvc := services.NewCatalogService(prodRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	fbSvc := services.NewFeedbackService(fbRepo)
	orderSvc := services.NewOrderService(cartRepo, orderRepo)

	return &Deps{
		AuthHandler:     &AuthHandler{Auth: authSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		FeedbackHandler: &FeedbackHandler{Feedback: fbSvc},
		OrderHandler:    &OrderHandler{Orders: orderSvc},
	}
}
