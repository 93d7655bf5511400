package echoapi

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core/donation"
)

func (s *server) registerDonationAPI(g *echo.Group) {
	g.GET("/donations/projects", s.queryProjects)
	g.POST("/donations", s.donate)
}

func (s *server) queryProjects(ctx echo.Context) error {
	var filter donation.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	projects, err := s.DonationSvc.Projects(ctx.Request().Context(), filter)
	return list(s, ctx, "donation projects", projects, err)
}

func (s *server) donate(ctx echo.Context) error {
	var data donation.NewDonation
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDonation")
	}
	return s.submit(ctx, func(c context.Context) (interface{}, error) {
		return s.DonationSvc.Donate(c, data)
	})
}
