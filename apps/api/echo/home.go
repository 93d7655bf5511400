package echoapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/FidelisKagashe26/godcares/core/donation"
	"github.com/FidelisKagashe26/godcares/core/faith"
	"github.com/FidelisKagashe26/godcares/core/news"
	"github.com/FidelisKagashe26/godcares/core/testimony"
	"github.com/FidelisKagashe26/godcares/core/view"
)

const homeSectionSize = 3

func (s *server) registerHomeAPI(g *echo.Group, optionalJWT echo.MiddlewareFunc) {
	g.GET("/home", s.homePage, optionalJWT)
}

type homeResponse struct {
	News        *view.ListState[news.Item]            `json:"news"`
	Testimonies *view.ListState[testimony.Testimony]  `json:"testimonies"`
	Projects    *view.ListState[donation.ProjectView] `json:"projects"`
	Heroes      *view.ListState[faith.Hero]           `json:"heroes"`
	ShowWelcome *bool                                 `json:"show_welcome,omitempty"`
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// homePage loads its sections side by side; a failing section never fails its siblings.
func (s *server) homePage(ctx echo.Context) error {
	page := view.NewPage(ctx.Request().Context())
	res := homeResponse{
		News: view.Section(page, func(c context.Context) ([]news.Item, error) {
			items, err := s.NewsSvc.Items(c, news.QueryFilter{})
			return firstN(items, homeSectionSize), err
		}),
		Testimonies: view.Section(page, func(c context.Context) ([]testimony.Testimony, error) {
			items, err := s.TestimonySvc.Testimonies(c, testimony.QueryFilter{})
			return firstN(items, homeSectionSize), err
		}),
		Projects: view.Section(page, func(c context.Context) ([]donation.ProjectView, error) {
			items, err := s.DonationSvc.Projects(c, donation.QueryFilter{})
			return firstN(items, homeSectionSize), err
		}),
		Heroes: view.Section(page, func(c context.Context) ([]faith.Hero, error) {
			items, err := s.FaithSvc.Heroes(c, faith.QueryFilter{})
			return firstN(items, homeSectionSize), err
		}),
	}
	page.Wait()

	if vid := contextVisitorID(ctx); vid != "" {
		seen, err := s.VisitorSvc.WelcomeSeen(ctx.Request().Context(), vid)
		if err != nil {
			s.Logger.Warn(fmt.Sprintf("reading welcome flag of %s: %v", vid, err))
		} else {
			show := !seen
			res.ShowWelcome = &show
		}
	}
	return ctx.JSON(http.StatusOK, res)
}
