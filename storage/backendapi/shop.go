package backendapi

import (
	"context"

	"github.com/FidelisKagashe26/godcares/core/shop"
)

type shopRepository struct{ c *Client }

func NewShopRepository(c *Client) shop.Repository { return &shopRepository{c: c} }

func (repo *shopRepository) QueryProducts(ctx context.Context) ([]shop.Product, error) {
	var products []shop.Product
	if err := repo.c.getList(ctx, "/api/shop/products/", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (repo *shopRepository) CreateOrder(ctx context.Context, req shop.OrderRequest) (shop.Order, error) {
	var order shop.Order
	if err := repo.c.post(ctx, "/api/shop/orders/", req, &order); err != nil {
		return shop.Order{}, err
	}
	return order, nil
}

func (repo *shopRepository) Track(ctx context.Context, code string) (shop.Order, error) {
	var order shop.Order
	if err := repo.c.get(ctx, "/api/shop/track/", map[string]string{"code": code}, &order); err != nil {
		return shop.Order{}, err
	}
	return order, nil
}
