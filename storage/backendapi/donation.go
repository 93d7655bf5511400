package backendapi

import (
	"context"

	"github.com/FidelisKagashe26/godcares/core/donation"
)

type donationRepository struct{ c *Client }

func NewDonationRepository(c *Client) donation.Repository { return &donationRepository{c: c} }

func (repo *donationRepository) QueryProjects(ctx context.Context) ([]donation.Project, error) {
	var projects []donation.Project
	if err := repo.c.getList(ctx, "/api/donations/projects/", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (repo *donationRepository) CreateDonation(ctx context.Context, nd donation.NewDonation) (donation.Donation, error) {
	var d donation.Donation
	if err := repo.c.post(ctx, "/api/donations/", nd, &d); err != nil {
		return donation.Donation{}, err
	}
	return d, nil
}
