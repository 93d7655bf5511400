package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/shop"
)

func (s *server) registerShopAPI(g *echo.Group) {
	sg := g.Group("/shop")
	sg.GET("/products", s.queryProducts)
	sg.GET("/products/:id", s.retrieveProduct)
	sg.POST("/checkout", s.checkout)
	sg.GET("/track", s.trackOrder)
}

func (s *server) queryProducts(ctx echo.Context) error {
	var filter shop.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	products, err := s.ShopSvc.Products(ctx.Request().Context(), filter)
	return list(s, ctx, "products", products, err)
}

func (s *server) retrieveProduct(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	p, err := s.ShopSvc.Product(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "getting product")
	}
	return ctx.JSON(http.StatusOK, p)
}

type CheckoutRequest struct {
	ProductID     int           `json:"product_id"`
	Quantity      int           `json:"quantity"`
	Customer      shop.Customer `json:"customer"`
	PaymentMethod string        `json:"payment_method"`
	Notes         string        `json:"notes,omitempty"`
}

type checkoutResult struct {
	Order shop.Order `json:"order"`
	Stage string     `json:"stage"`
	Trail []string   `json:"trail"`
}

// checkout runs the Detail -> Checkout -> Success wizard for one product in one request.
func (s *server) checkout(ctx echo.Context) error {
	var data CheckoutRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CheckoutRequest")
	}

	return s.submit(ctx, func(c context.Context) (interface{}, error) {
		product, err := s.ShopSvc.Product(c, data.ProductID)
		if err != nil {
			if errors.Cause(err) == core.ErrNotFound {
				return nil, core.NewValidationError(nil, core.FieldError{Field: "product_id", Error: "unknown product"})
			}
			return nil, err
		}

		wizard := shop.NewCheckout(s.ShopSvc, product)
		if data.Quantity != 0 {
			if err = wizard.SetQuantity(data.Quantity); err != nil {
				return nil, core.NewValidationError(err, core.FieldError{Field: "quantity", Error: "quantity must be greater than 0"})
			}
		}
		if err = wizard.Proceed(); err != nil {
			return nil, err
		}
		order, err := wizard.Confirm(c, data.Customer, data.PaymentMethod, data.Notes)
		if err != nil {
			return nil, err
		}
		return checkoutResult{Order: order, Stage: wizard.Stage(), Trail: wizard.Trail()}, nil
	})
}

func (s *server) trackOrder(ctx echo.Context) error {
	var q shop.TrackQuery
	if err := bindQuery(ctx, &q); err != nil {
		return err
	}
	order, err := s.ShopSvc.Track(ctx.Request().Context(), q)
	if err != nil {
		return errors.Wrap(err, "tracking order")
	}
	return ctx.JSON(http.StatusOK, order)
}
