package domain

// ProductID and OrderID are opaque identifiers. Aggregates reference each
// other only through these; resolution happens at the repo boundary.
type ProductID string

type OrderID string

// Order statuses as stored. RequestCancel keeps the source system's wording.
const (
	StatusPending       = "Pending"
	StatusRequestCancel = "Request Cancel"
	StatusCancelled     = "Cancelled"
)

type Product struct {
	ID          ProductID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Price       string    `db:"price" json:"price"` // as submitted, e.g. "$19.99"
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	ImageURL    string    `db:"image_url" json:"imageUrl"`
	CreatedAt   string    `db:"created_at" json:"createdAt"`
}

type Feedback struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	ProductID ProductID `db:"product_id" json:"productId"`
	Comment   string    `db:"comment" json:"comment"`
	Rating    int       `db:"rating" json:"rating"`
	CreatedAt string    `db:"created_at" json:"createdAt"`
}
