package echoapi

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core/prayer"
)

func (s *server) registerPrayerAPI(g *echo.Group) {
	pg := g.Group("/prayers")
	pg.POST("", s.createPrayer)
	pg.GET("/public", s.queryPublicPrayers)
	pg.GET("/answered", s.queryAnsweredPrayers)
}

func (s *server) createPrayer(ctx echo.Context) error {
	var data prayer.NewRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRequest")
	}
	return s.submit(ctx, func(c context.Context) (interface{}, error) {
		return s.PrayerSvc.Create(c, data)
	})
}

func (s *server) queryPublicPrayers(ctx echo.Context) error {
	var filter prayer.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	reqs, err := s.PrayerSvc.Public(ctx.Request().Context(), filter)
	return list(s, ctx, "public prayers", reqs, err)
}

func (s *server) queryAnsweredPrayers(ctx echo.Context) error {
	var filter prayer.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	reqs, err := s.PrayerSvc.Answered(ctx.Request().Context(), filter)
	return list(s, ctx, "answered prayers", reqs, err)
}
