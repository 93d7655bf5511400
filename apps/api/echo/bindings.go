package echoapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/view"
)

// submitResponse is the body of every form endpoint: the form state plus the backend's answer.
type submitResponse struct {
	view.SubmissionState
	Data interface{} `json:"data,omitempty"`
}

// bindQuery binds the query string (tab, q, ...) of a GET list request.
func bindQuery(ctx echo.Context, dst interface{}) error {
	if err := ctx.Bind(dst); err != nil {
		return errors.Wrap(err, "binding query params")
	}
	return nil
}

// tabAndSearch reads the list filter of a non-GET request, which echo does not bind.
func tabAndSearch(ctx echo.Context) (string, string) {
	return ctx.QueryParam("tab"), ctx.QueryParam("q")
}

func paramID(ctx echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		return 0, errHttpNotFound
	}
	return id, nil
}

// list renders a list view. A failed fetch is part of the view: it is answered with 200,
// an inline error message and no items.
func list[T any](s *server, ctx echo.Context, what string, items []T, err error) error {
	if err != nil {
		s.Logger.Warn(fmt.Sprintf("loading %s: %v", what, err))
	}
	return ctx.JSON(http.StatusOK, view.FromResult(items, err))
}

// submit runs one form submission. Field errors answer 400, backend errors 502,
// anything else goes to the error handler.
func (s *server) submit(ctx echo.Context, send func(context.Context) (interface{}, error)) error {
	sub := view.NewSubmission(s.Conf.UI.SuccessResetDelay, nil)
	defer sub.Close()

	var data interface{}
	err := sub.Submit(ctx.Request().Context(), func(c context.Context) error {
		var err error
		data, err = send(c)
		return err
	})

	state := sub.State()
	if err == nil {
		return ctx.JSON(http.StatusCreated, submitResponse{SubmissionState: state, Data: data})
	}
	if len(state.Fields) > 0 {
		return ctx.JSON(http.StatusBadRequest, submitResponse{SubmissionState: state})
	}
	if _, ok := core.AsAPIError(err); ok {
		s.Logger.Warn(fmt.Sprintf("submitting to %s: %v", ctx.Path(), err))
		return ctx.JSON(http.StatusBadGateway, submitResponse{SubmissionState: state})
	}
	return err
}
