package backendapi

import (
	"context"

	"github.com/FidelisKagashe26/godcares/core/about"
	"github.com/FidelisKagashe26/godcares/core/faith"
	"github.com/FidelisKagashe26/godcares/core/library"
)

type aboutRepository struct{ c *Client }

func NewAboutRepository(c *Client) about.Repository { return &aboutRepository{c: c} }

func (repo *aboutRepository) QueryTeam(ctx context.Context) ([]about.TeamMember, error) {
	var team []about.TeamMember
	if err := repo.c.getList(ctx, "/api/about/team/", &team); err != nil {
		return nil, err
	}
	return team, nil
}

type faithRepository struct{ c *Client }

func NewFaithRepository(c *Client) faith.Repository { return &faithRepository{c: c} }

func (repo *faithRepository) QueryHeroes(ctx context.Context) ([]faith.Hero, error) {
	var heroes []faith.Hero
	if err := repo.c.getList(ctx, "/api/faith/heroes/", &heroes); err != nil {
		return nil, err
	}
	return heroes, nil
}

type libraryRepository struct{ c *Client }

func NewLibraryRepository(c *Client) library.Repository { return &libraryRepository{c: c} }

func (repo *libraryRepository) QueryItems(ctx context.Context) ([]library.Item, error) {
	var items []library.Item
	if err := repo.c.getList(ctx, "/api/library/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *libraryRepository) QueryPlaylists(ctx context.Context) ([]library.Playlist, error) {
	var playlists []library.Playlist
	if err := repo.c.getList(ctx, "/api/media/playlists/", &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}
