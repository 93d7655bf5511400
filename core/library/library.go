// Package library serves the media library and the video playlists.
package library

import (
	"context"

	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/view"
)

// Library item types, used as tabs.
const (
	TypeBook  = "book"
	TypeAudio = "audio"
	TypeVideo = "video"
	TypePDF   = "pdf"
)

type Item struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	Description string `json:"description"`
	URL         string `json:"url"`
	CoverURL    string `json:"cover_url"`
	Language    string `json:"language,omitempty"`
}

type Video struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Duration  string `json:"duration,omitempty"`
}

type Playlist struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Thumbnail   string  `json:"thumbnail"`
	Videos      []Video `json:"videos"`
}

type QueryFilter struct {
	Tab    string `query:"tab"`
	Search string `query:"q"`
}

type (
	Repository interface {
		QueryItems(ctx context.Context) ([]Item, error)
		QueryPlaylists(ctx context.Context) ([]Playlist, error)
	}

	Service interface {
		Items(ctx context.Context, filter QueryFilter) ([]Item, error)
		Playlists(ctx context.Context, filter QueryFilter) ([]Playlist, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Items filters by type tab, then by title/category/author search.
func (svc *service) Items(ctx context.Context, filter QueryFilter) ([]Item, error) {
	items, err := svc.repo.QueryItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying library")
	}
	return view.Filter(items, func(it Item) bool {
		return view.MatchesTab(filter.Tab, it.Type) && core.MatchAny(filter.Search, it.Title, it.Category, it.Author)
	}), nil
}

func (svc *service) Playlists(ctx context.Context, filter QueryFilter) ([]Playlist, error) {
	playlists, err := svc.repo.QueryPlaylists(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying playlists")
	}
	return view.Filter(playlists, func(p Playlist) bool {
		return view.MatchesTab(filter.Tab, p.Category) && core.MatchAny(filter.Search, p.Title, p.Category)
	}), nil
}
