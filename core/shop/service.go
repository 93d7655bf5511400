package shop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/mail"

	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/view"
)

const defaultCurrency = "TZS"

type (
	Repository interface {
		QueryProducts(ctx context.Context) ([]Product, error)
		CreateOrder(ctx context.Context, req OrderRequest) (Order, error)
		Track(ctx context.Context, code string) (Order, error)
	}

	Service interface {
		Products(ctx context.Context, filter QueryFilter) ([]Product, error)
		Product(ctx context.Context, id int) (Product, error)
		PlaceOrder(ctx context.Context, no NewOrder) (Order, error)
		Track(ctx context.Context, q TrackQuery) (Order, error)
	}

	service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, mailSvc core.EmailService) Service {
	return &service{repo: repo, mailSvc: mailSvc}
}

func (svc *service) Products(ctx context.Context, filter QueryFilter) ([]Product, error) {
	products, err := svc.repo.QueryProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying products")
	}
	return view.Filter(products, func(p Product) bool {
		return view.MatchesTab(filter.Tab, p.Category) && core.MatchAny(filter.Search, p.Name, p.Category)
	}), nil
}

func (svc *service) Product(ctx context.Context, id int) (Product, error) {
	products, err := svc.repo.QueryProducts(ctx)
	if err != nil {
		return Product{}, errors.Wrap(err, "querying products")
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, core.ErrNotFound
}

// PlaceOrder prices the cart against the current catalog, posts the order and mails the
// tracking code to the customer.
func (svc *service) PlaceOrder(ctx context.Context, no NewOrder) (Order, error) {
	if err := no.Validate(); err != nil {
		return Order{}, err
	}

	products, err := svc.repo.QueryProducts(ctx)
	if err != nil {
		return Order{}, errors.Wrap(err, "querying products")
	}
	req, err := priceOrder(no, products)
	if err != nil {
		return Order{}, err
	}

	order, err := svc.repo.CreateOrder(ctx, req)
	if err != nil {
		return Order{}, errors.Wrap(err, "creating order")
	}
	if len(order.Items) == 0 {
		order.Items = req.Items
	}
	if order.Total == 0 {
		order.Total, order.Currency = req.Total, req.Currency
	}

	msg := &core.EmailMessage{
		To:           []mail.Address{{Name: no.Customer.Name, Address: no.Customer.Email}},
		Subject:      "Oda yako imepokelewa",
		TemplateName: "order_placed",
		TemplateData: map[string]interface{}{
			"Customer":     no.Customer,
			"TrackingCode": order.TrackingCode,
			"Items":        order.Items,
			"Total":        order.Total,
			"Currency":     order.Currency,
		},
	}
	// the receipt is a convenience: the mail goes out without it if it cannot be built
	if receipt, err := json.MarshalIndent(order, "", "  "); err == nil {
		_ = msg.Attach(bytes.NewReader(receipt), order.TrackingCode+".json", "application/json")
	}
	svc.mailSvc.SendMessages(msg)
	return order, nil
}

// priceOrder turns cart lines into priced order lines. Repeated products are merged.
func priceOrder(no NewOrder, products []Product) (OrderRequest, error) {
	byID := make(map[int]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	req := OrderRequest{
		Customer:      no.Customer,
		Currency:      defaultCurrency,
		PaymentMethod: no.PaymentMethod,
		Notes:         no.Notes,
	}
	index := make(map[int]int, len(no.Items))
	for i, cl := range no.Items {
		p, ok := byID[cl.ProductID]
		if !ok {
			return OrderRequest{}, core.NewValidationError(nil, core.FieldError{
				Field: fmt.Sprintf("items[%d].product_id", i), Error: "unknown product",
			})
		}
		if at, ok := index[cl.ProductID]; ok {
			req.Items[at].Quantity += cl.Quantity
		} else {
			index[cl.ProductID] = len(req.Items)
			req.Items = append(req.Items, OrderLine{ProductID: p.ID, Name: p.Name, Quantity: cl.Quantity, UnitPrice: p.Price})
		}
		if p.Stock != nil && req.Items[index[cl.ProductID]].Quantity > *p.Stock {
			return OrderRequest{}, core.NewValidationError(nil, core.FieldError{
				Field: fmt.Sprintf("items[%d].quantity", i), Error: "not enough stock",
			})
		}
		if p.Currency != "" {
			req.Currency = p.Currency
		}
	}

	var total float64
	for _, l := range req.Items {
		total += l.Subtotal()
	}
	req.Total = math.Round(total*100) / 100
	return req, nil
}

func (svc *service) Track(ctx context.Context, q TrackQuery) (Order, error) {
	if err := q.Validate(); err != nil {
		return Order{}, err
	}
	order, err := svc.repo.Track(ctx, q.Code)
	if err != nil {
		return Order{}, errors.Wrapf(err, "tracking order %s", q.Code)
	}
	return order, nil
}
