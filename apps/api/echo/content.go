package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core/faith"
	"github.com/FidelisKagashe26/godcares/core/library"
)

func (s *server) registerContentAPI(g *echo.Group) {
	g.GET("/team", s.queryTeam)
	g.GET("/faith/heroes", s.queryHeroes)
	g.GET("/faith/heroes/:id", s.retrieveHero)
	g.GET("/library", s.queryLibrary)
	g.GET("/library/playlists", s.queryPlaylists)
}

func (s *server) queryTeam(ctx echo.Context) error {
	team, err := s.AboutSvc.Team(ctx.Request().Context())
	return list(s, ctx, "team", team, err)
}

func (s *server) queryHeroes(ctx echo.Context) error {
	var filter faith.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	heroes, err := s.FaithSvc.Heroes(ctx.Request().Context(), filter)
	return list(s, ctx, "faith heroes", heroes, err)
}

func (s *server) retrieveHero(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	hero, err := s.FaithSvc.Hero(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "getting faith hero")
	}
	return ctx.JSON(http.StatusOK, hero)
}

func (s *server) queryLibrary(ctx echo.Context) error {
	var filter library.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	items, err := s.LibrarySvc.Items(ctx.Request().Context(), filter)
	return list(s, ctx, "library", items, err)
}

func (s *server) queryPlaylists(ctx echo.Context) error {
	var filter library.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	playlists, err := s.LibrarySvc.Playlists(ctx.Request().Context(), filter)
	return list(s, ctx, "playlists", playlists, err)
}
