package shop

import (
	"time"

	"github.com/FidelisKagashe26/godcares/core"
)

// Order statuses reported by the tracking endpoint.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	ImageURL    string  `json:"image_url"`
	Stock       *int    `json:"stock,omitempty"`
}

// InStock is true unless the catalog reports no stock left. A catalog without stock counts is never limited.
func (p Product) InStock() bool { return p.Stock == nil || *p.Stock > 0 }

type OrderLine struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (l OrderLine) Subtotal() float64 { return l.UnitPrice * float64(l.Quantity) }

type Customer struct {
	Name    string `json:"name" validate:"required,notblank,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=9,max=20"`
	Address string `json:"address" validate:"required,notblank,max=300"`
	City    string `json:"city,omitempty" validate:"max=80"`
}

// CartLine is one product picked on the Detail step.
type CartLine struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0,lte=100"`
}

// NewOrder contains information needed to place an order.
type NewOrder struct {
	Customer      Customer   `json:"customer"`
	Items         []CartLine `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string     `json:"payment_method" validate:"required,oneof=mpesa tigopesa airtel card cash"`
	Notes         string     `json:"notes,omitempty" validate:"max=500"`
}

func (no *NewOrder) Validate() error {
	no.Customer.Name = core.CleanString(no.Customer.Name)
	no.Customer.Email = core.CleanString(no.Customer.Email, true /* lower */)
	no.Customer.Phone = core.CleanString(no.Customer.Phone)
	no.Customer.Address = core.CleanString(no.Customer.Address)
	no.Customer.City = core.CleanString(no.Customer.City)
	no.PaymentMethod = core.CleanString(no.PaymentMethod, true /* lower */)
	no.Notes = core.CleanString(no.Notes)
	return core.Validate.Struct(no)
}

// OrderRequest is the body posted to the orders endpoint: priced lines and the total.
type OrderRequest struct {
	Customer      Customer    `json:"customer"`
	Items         []OrderLine `json:"items"`
	Total         float64     `json:"total"`
	Currency      string      `json:"currency"`
	PaymentMethod string      `json:"payment_method"`
	Notes         string      `json:"notes,omitempty"`
}

type Order struct {
	TrackingCode string      `json:"tracking_code"`
	Status       string      `json:"status"`
	Items        []OrderLine `json:"items"`
	Total        float64     `json:"total"`
	Currency     string      `json:"currency"`
	Customer     Customer    `json:"customer"`
	CreatedAt    time.Time   `json:"created_at"`
}

type TrackQuery struct {
	Code string `json:"code" query:"code" validate:"required,trackingcode"`
}

func (q *TrackQuery) Validate() error {
	q.Code = core.CleanString(q.Code)
	return core.Validate.Struct(q)
}

type QueryFilter struct {
	Tab    string `query:"tab"`
	Search string `query:"q"`
}
