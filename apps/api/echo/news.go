package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core/news"
	"github.com/FidelisKagashe26/godcares/core/view"
)

func (s *server) registerNewsAPI(g *echo.Group) {
	g.GET("/news", s.queryNews)
	g.POST("/news/:id/view", s.recordNewsView)
	g.POST("/newsletter", s.subscribe)
}

func (s *server) queryNews(ctx echo.Context) error {
	var filter news.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	items, err := s.NewsSvc.Items(ctx.Request().Context(), filter)
	return list(s, ctx, "news", items, err)
}

type newsViewResponse struct {
	ID    int                       `json:"id"`
	Views int                       `json:"views"`
	List  view.ListState[news.Item] `json:"list"`
}

// recordNewsView bumps the counter of one item and returns the displayed list
// where only that item carries the new count.
func (s *server) recordNewsView(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	tab, q := tabAndSearch(ctx)
	reqCtx := ctx.Request().Context()

	loader := new(view.Loader[news.Item])
	loader.Mount(reqCtx, func(c context.Context) ([]news.Item, error) {
		return s.NewsSvc.Items(c, news.QueryFilter{Tab: tab, Search: q})
	})
	defer loader.Unmount()

	views, err := s.NewsSvc.RecordView(reqCtx, id)
	if err != nil {
		return errors.Wrap(err, "recording news view")
	}

	displayed := loader.Wait(reqCtx)
	if displayed.Error == "" && !displayed.Loading {
		displayed = view.Loaded(news.ApplyViewCount(displayed.Items, id, views))
	}
	return ctx.JSON(http.StatusOK, newsViewResponse{ID: id, Views: views, List: displayed})
}

func (s *server) subscribe(ctx echo.Context) error {
	var data news.Subscription
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Subscription")
	}
	return s.submit(ctx, func(c context.Context) (interface{}, error) {
		return nil, s.NewsSvc.Subscribe(c, data)
	})
}
