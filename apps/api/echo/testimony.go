package echoapi

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/testimony"
	"github.com/FidelisKagashe26/godcares/core/view"
)

func (s *server) registerTestimonyAPI(g *echo.Group) {
	tg := g.Group("/testimonies")
	tg.GET("", s.queryTestimonies)
	tg.POST("", s.createTestimony)
	tg.POST("/:id/react", s.react)
}

func (s *server) queryTestimonies(ctx echo.Context) error {
	var filter testimony.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	items, err := s.TestimonySvc.Testimonies(ctx.Request().Context(), filter)
	return list(s, ctx, "testimonies", items, err)
}

// createTestimony accepts JSON, or multipart/form-data with an optional "video" file.
func (s *server) createTestimony(ctx echo.Context) error {
	var data testimony.NewTestimony
	if strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		if err := bindTestimonyForm(ctx, &data); err != nil {
			return err
		}
	} else if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTestimony")
	}

	return s.submit(ctx, func(c context.Context) (interface{}, error) {
		return s.TestimonySvc.Create(c, data)
	})
}

func bindTestimonyForm(ctx echo.Context, data *testimony.NewTestimony) error {
	data.Name = ctx.FormValue("name")
	data.Email = ctx.FormValue("email")
	data.Location = ctx.FormValue("location")
	data.Title = ctx.FormValue("title")
	data.Story = ctx.FormValue("story")
	data.Category = ctx.FormValue("category")
	data.VideoURL = ctx.FormValue("video_url")

	fh, err := ctx.FormFile("video")
	if err == http.ErrMissingFile {
		return nil
	} else if err != nil {
		return errors.Wrap(err, "reading video file")
	}
	if fh.Size > testimony.MaxVideoSize {
		return core.NewValidationError(nil, core.FieldError{Field: "video", Error: "video is too large"})
	}
	f, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening video file")
	}
	defer f.Close()
	buf, err := io.ReadAll(io.LimitReader(f, testimony.MaxVideoSize+1))
	if err != nil {
		return errors.Wrap(err, "reading video file")
	}
	data.Video = &core.Upload{
		Field:       "video",
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        buf,
	}
	return nil
}

type reactResponse struct {
	ID        int                                 `json:"id"`
	Reactions map[string]int                      `json:"reactions"`
	List      view.ListState[testimony.Testimony] `json:"list"`
}

// react posts one reaction and returns the displayed list where only testimony :id
// takes the counts answered by the backend.
func (s *server) react(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	var data testimony.Reaction
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Reaction")
	}
	tab, q := tabAndSearch(ctx)
	reqCtx := ctx.Request().Context()

	loader := new(view.Loader[testimony.Testimony])
	loader.Mount(reqCtx, func(c context.Context) ([]testimony.Testimony, error) {
		return s.TestimonySvc.Testimonies(c, testimony.QueryFilter{Tab: tab, Search: q})
	})
	defer loader.Unmount()

	// the displayed copy is the one loaded before the reaction
	displayed := loader.Wait(reqCtx)

	counts, err := s.TestimonySvc.React(reqCtx, id, data)
	if err != nil {
		return errors.Wrap(err, "reacting to testimony")
	}
	if displayed.Error == "" && !displayed.Loading {
		displayed = view.Loaded(testimony.ApplyReaction(displayed.Items, id, counts))
	}
	return ctx.JSON(http.StatusOK, reactResponse{ID: id, Reactions: counts, List: displayed})
}
