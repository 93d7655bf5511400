// Package news serves the news feed, its view counters and the newsletter sign-up.
package news

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/view"
)

type Item struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url"`
	Author      string    `json:"author"`
	Views       int       `json:"views"`
	PublishedAt time.Time `json:"published_at"`
}

type QueryFilter struct {
	Tab    string `query:"tab"`
	Search string `query:"q"`
}

// Subscription contains information needed to join the newsletter.
type Subscription struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty" validate:"max=120"`
}

func (s *Subscription) Validate() error {
	s.Email = core.CleanString(s.Email, true /* lower */)
	s.Name = core.CleanString(s.Name)
	return core.Validate.Struct(s)
}

type (
	Repository interface {
		QueryItems(ctx context.Context) ([]Item, error)
		// RecordView increments the view counter of item id and returns the new count.
		RecordView(ctx context.Context, id int) (int, error)
		Subscribe(ctx context.Context, s Subscription) error
	}

	Service interface {
		Items(ctx context.Context, filter QueryFilter) ([]Item, error)
		RecordView(ctx context.Context, id int) (int, error)
		Subscribe(ctx context.Context, s Subscription) error
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Items(ctx context.Context, filter QueryFilter) ([]Item, error) {
	items, err := svc.repo.QueryItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying news")
	}
	return view.Filter(items, func(it Item) bool {
		return view.MatchesTab(filter.Tab, it.Category) && core.MatchAny(filter.Search, it.Title, it.Category)
	}), nil
}

func (svc *service) RecordView(ctx context.Context, id int) (int, error) {
	views, err := svc.repo.RecordView(ctx, id)
	if err != nil {
		return 0, errors.Wrapf(err, "recording view of news item %d", id)
	}
	return views, nil
}

func (svc *service) Subscribe(ctx context.Context, s Subscription) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := svc.repo.Subscribe(ctx, s); err != nil {
		return errors.Wrap(err, "subscribing to newsletter")
	}
	return nil
}

// ApplyViewCount returns a copy of items where only the item with the given id carries
// the new view count. Items are never re-fetched for this.
func ApplyViewCount(items []Item, id, views int) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Views = views
		}
	}
	return out
}
