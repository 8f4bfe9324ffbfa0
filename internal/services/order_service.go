package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/russellpeiris/mocked/internal/apperr"
	"github.com/russellpeiris/mocked/internal/domain"
	"github.com/russellpeiris/mocked/internal/money"
	"github.com/russellpeiris/mocked/internal/repos"
)

type OrderService struct {
	Carts  *repos.CartRepo
	Orders *repos.OrderRepo

	// placement is serialized per email so two concurrent checkouts cannot
	// both read the same cart before one clears it
	placeMu sync.Map // email -> *sync.Mutex
}

func NewOrderService(carts *repos.CartRepo, orders *repos.OrderRepo) *OrderService {
	return &OrderService{Carts: carts, Orders: orders}
}

func (s *OrderService) lock(email string) *sync.Mutex {
	key := strings.ToLower(email)
	mu, _ := s.placeMu.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

type OrderItemView struct {
	ProductID domain.ProductID `json:"productId"`
	Name      string           `json:"name"`
	Qty       int              `json:"qty"`
	UnitPrice money.Cents      `json:"unitPrice"`
	Subtotal  money.Cents      `json:"subtotal"`
}

type OrderView struct {
	ID           domain.OrderID  `json:"id"`
	DisplayLabel string          `json:"displayLabel"`
	Email        string          `json:"email"`
	Items        []OrderItemView `json:"products"`
	TotalAmount  money.Cents     `json:"totalAmount"`
	Status       string          `json:"status"`
	OrderDate    string          `json:"orderDate"`
}

// PlacedOrder is the result of a successful placement. ClearErr carries a
// cart-clear failure that happened after the order was durably written; the
// order stands regardless and callers must report the failure separately.
type PlacedOrder struct {
	Order    OrderView
	ClearErr error
}

// Place converts the email's cart into an order: every line's product is
// resolved against the current catalog, the total is the half-up-rounded sum
// of unit price times quantity, and the snapshot is written atomically before
// the cart is cleared.
func (s *OrderService) Place(email string) (*PlacedOrder, error) {
	mu := s.lock(email)
	mu.Lock()
	defer mu.Unlock()

	lines, err := s.Carts.Lines(email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(lines) == 0 {
		return nil, apperr.EmptyCart("No items in cart to place order")
	}

	var total money.Cents
	items := make([]repos.ItemSnapshot, 0, len(lines))
	views := make([]OrderItemView, 0, len(lines))
	for _, l := range lines {
		if !l.Resolved() {
			return nil, apperr.DanglingRef("a product in the cart no longer exists")
		}
		unit, perr := money.Parse(l.Price.String)
		if perr != nil {
			return nil, apperr.Wrap(apperr.CodeInternal, "Server error, please try again later.",
				fmt.Errorf("unparseable catalog price for %s: %w", l.ProductID, perr))
		}
		sub := unit.Mul(l.Qty)
		total += sub
		items = append(items, repos.ItemSnapshot{ProductID: l.ProductID, Name: l.Name.String, Qty: l.Qty, UnitCents: unit})
		views = append(views, OrderItemView{ProductID: l.ProductID, Name: l.Name.String, Qty: l.Qty, UnitPrice: unit, Subtotal: sub})
	}

	orderID := domain.OrderID(uuid.NewString())
	createdAt := time.Now().UTC().Format(time.RFC3339)
	if err := s.Orders.Create(orderID, email, total, createdAt, items); err != nil {
		return nil, apperr.Internal(err)
	}

	placed := &PlacedOrder{Order: OrderView{
		ID:           orderID,
		DisplayLabel: DisplayLabel(orderID),
		Email:        email,
		Items:        views,
		TotalAmount:  total,
		Status:       domain.StatusPending,
		OrderDate:    createdAt,
	}}

	// The order is durable at this point. A failed clear must not undo it.
	if _, err := s.Carts.Clear(email); err != nil {
		placed.ClearErr = err
	}
	return placed, nil
}

// RequestCancel flips an order to "Request Cancel" unless it is already
// cancelled.
func (s *OrderService) RequestCancel(orderID domain.OrderID) error {
	o, err := s.Orders.Get(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("Order not found")
	}
	if err != nil {
		return apperr.Internal(err)
	}
	if o.Status == domain.StatusCancelled {
		return apperr.AlreadyCancelled("Order already cancelled")
	}
	changed, err := s.Orders.UpdateStatusIfNot(orderID, domain.StatusRequestCancel, domain.StatusCancelled)
	if err != nil {
		return apperr.Internal(err)
	}
	if !changed {
		// raced with a cancellation between read and update
		return apperr.AlreadyCancelled("Order already cancelled")
	}
	return nil
}

// History lists the email's orders with item snapshots and display labels.
func (s *OrderService) History(email string) ([]OrderView, error) {
	rows, err := s.Orders.ListByEmail(email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	out := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		items, err := s.Orders.Items(row.ID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		views := make([]OrderItemView, 0, len(items))
		for _, it := range items {
			views = append(views, OrderItemView{
				ProductID: it.ProductID,
				Name:      it.Name,
				Qty:       it.Qty,
				UnitPrice: it.UnitCents,
				Subtotal:  it.UnitCents.Mul(it.Qty),
			})
		}
		out = append(out, OrderView{
			ID:           row.ID,
			DisplayLabel: DisplayLabel(row.ID),
			Email:        row.Email,
			Items:        views,
			TotalAmount:  row.TotalCents,
			Status:       row.Status,
			OrderDate:    row.CreatedAt,
		})
	}
	return out, nil
}

// DisplayLabel derives a human-facing order number from the id: the first
// eight hex digits of the id (hyphens stripped) read as a decimal number.
// Presentation only; it is never a lookup key.
func DisplayLabel(id domain.OrderID) string {
	hex := strings.ReplaceAll(string(id), "-", "")
	if len(hex) > 8 {
		hex = hex[:8]
	}
	n, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return "Order " + string(id)
	}
	return fmt.Sprintf("Order %d", n)
}
