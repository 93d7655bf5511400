// Package faith serves the "Faith heroes" gallery.
package faith

import (
	"context"

	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/view"
)

type Hero struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Era       string   `json:"era"`
	Country   string   `json:"country"`
	Summary   string   `json:"summary"`
	Story     string   `json:"story"`
	ImageURL  string   `json:"image_url"`
	Scripture string   `json:"scripture,omitempty"`
	Lessons   []string `json:"lessons,omitempty"`
}

type QueryFilter struct {
	Tab    string `query:"tab"` // era
	Search string `query:"q"`
}

type (
	Repository interface {
		QueryHeroes(ctx context.Context) ([]Hero, error)
	}

	Service interface {
		Heroes(ctx context.Context, filter QueryFilter) ([]Hero, error)
		Hero(ctx context.Context, id int) (Hero, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Heroes(ctx context.Context, filter QueryFilter) ([]Hero, error) {
	heroes, err := svc.repo.QueryHeroes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying faith heroes")
	}
	return view.Filter(heroes, func(h Hero) bool {
		return view.MatchesTab(filter.Tab, h.Era) && core.MatchAny(filter.Search, h.Name, h.Title, h.Era)
	}), nil
}

// Hero picks one profile out of the fetched list; there is no detail endpoint.
func (svc *service) Hero(ctx context.Context, id int) (Hero, error) {
	heroes, err := svc.repo.QueryHeroes(ctx)
	if err != nil {
		return Hero{}, errors.Wrap(err, "querying faith heroes")
	}
	for _, h := range heroes {
		if h.ID == id {
			return h, nil
		}
	}
	return Hero{}, core.ErrNotFound
}
