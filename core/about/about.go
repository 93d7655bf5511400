// Package about serves the "About us" page: the ministry team.
package about

import (
	"context"

	"github.com/pkg/errors"
)

type TeamMember struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photo_url"`
	Email    string `json:"email,omitempty"`
	Order    int    `json:"order"`
}

type (
	Repository interface {
		QueryTeam(ctx context.Context) ([]TeamMember, error)
	}

	Service interface {
		Team(ctx context.Context) ([]TeamMember, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Team(ctx context.Context) ([]TeamMember, error) {
	team, err := svc.repo.QueryTeam(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying team")
	}
	return team, nil
}
