package backendapi

import (
	"context"

	"github.com/FidelisKagashe26/godcares/core/prayer"
)

type prayerRepository struct{ c *Client }

func NewPrayerRepository(c *Client) prayer.Repository { return &prayerRepository{c: c} }

func (repo *prayerRepository) Create(ctx context.Context, nr prayer.NewRequest) (prayer.Request, error) {
	var req prayer.Request
	if err := repo.c.post(ctx, "/api/prayers/", nr, &req); err != nil {
		return prayer.Request{}, err
	}
	return req, nil
}

func (repo *prayerRepository) QueryPublic(ctx context.Context) ([]prayer.Request, error) {
	var reqs []prayer.Request
	if err := repo.c.getList(ctx, "/api/prayers/public/", &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (repo *prayerRepository) QueryAnswered(ctx context.Context) ([]prayer.Request, error) {
	var reqs []prayer.Request
	if err := repo.c.getList(ctx, "/api/prayers/answered/", &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}
