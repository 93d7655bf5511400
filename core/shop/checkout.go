package shop

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core/view"
)

// Checkout stages.
const (
	StageDetail   = "Detail"
	StageCheckout = "Checkout"
	StageSuccess  = "Success"
)

var ErrEmptyCart = errors.New("cart is empty")

// Checkout is the three-step purchase wizard. Nothing is kept once it is dropped.
type Checkout struct {
	mu      sync.Mutex
	steps   *view.Stepper
	product Product
	qty     int
	order   *Order
	svc     Service
}

func NewCheckout(svc Service, product Product) *Checkout {
	return &Checkout{
		steps:   view.NewStepper(StageDetail, StageCheckout, StageSuccess),
		product: product,
		qty:     1,
		svc:     svc,
	}
}

func (c *Checkout) Stage() string { return c.steps.Stage() }

// SetQuantity is only allowed on the Detail step.
func (c *Checkout) SetQuantity(qty int) error {
	if !c.steps.Is(StageDetail) {
		return errors.Wrap(view.ErrBackward, "quantity is fixed after the detail step")
	}
	if qty <= 0 {
		return ErrEmptyCart
	}
	c.mu.Lock()
	c.qty = qty
	c.mu.Unlock()
	return nil
}

// Proceed moves from Detail to Checkout.
func (c *Checkout) Proceed() error {
	return c.steps.AdvanceTo(StageCheckout)
}

// Confirm places the order and moves to Success. A failed order stays on Checkout.
func (c *Checkout) Confirm(ctx context.Context, customer Customer, paymentMethod, notes string) (Order, error) {
	if !c.steps.Is(StageCheckout) {
		return Order{}, errors.Wrapf(view.ErrUnknownStage, "confirm from %s", c.steps.Stage())
	}

	c.mu.Lock()
	no := NewOrder{
		Customer:      customer,
		Items:         []CartLine{{ProductID: c.product.ID, Quantity: c.qty}},
		PaymentMethod: paymentMethod,
		Notes:         notes,
	}
	c.mu.Unlock()

	order, err := c.svc.PlaceOrder(ctx, no)
	if err != nil {
		return Order{}, err
	}

	c.mu.Lock()
	c.order = &order
	c.mu.Unlock()
	if err = c.steps.AdvanceTo(StageSuccess); err != nil {
		return order, err
	}
	return order, nil
}

func (c *Checkout) Order() (Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.order == nil {
		return Order{}, false
	}
	return *c.order, true
}

func (c *Checkout) Trail() []string { return c.steps.Trail() }
