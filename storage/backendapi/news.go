package backendapi

import (
	"context"
	"fmt"

	"github.com/FidelisKagashe26/godcares/core/news"
)

type newsRepository struct{ c *Client }

func NewNewsRepository(c *Client) news.Repository { return &newsRepository{c: c} }

func (repo *newsRepository) QueryItems(ctx context.Context) ([]news.Item, error) {
	var items []news.Item
	if err := repo.c.getList(ctx, "/api/news/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *newsRepository) RecordView(ctx context.Context, id int) (int, error) {
	var res struct {
		Views     *int `json:"views"`
		ViewCount *int `json:"view_count"`
	}
	if err := repo.c.post(ctx, fmt.Sprintf("/api/news/%d/view/", id), nil, &res); err != nil {
		return 0, err
	}
	switch {
	case res.Views != nil:
		return *res.Views, nil
	case res.ViewCount != nil:
		return *res.ViewCount, nil
	}
	return 0, nil
}

func (repo *newsRepository) Subscribe(ctx context.Context, s news.Subscription) error {
	return repo.c.post(ctx, "/api/newsletter/", s, nil)
}
