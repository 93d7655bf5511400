package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (s *server) registerVisitorAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	vg := g.Group("/visitor")
	vg.POST("", s.newVisitor)

	wg := vg.Group("/welcome", jwt)
	wg.GET("", s.welcomeSeen)
	wg.POST("", s.dismissWelcome)
}

type visitorResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	WelcomeSeen bool   `json:"welcome_seen"`
}

type welcomeResponse struct {
	WelcomeSeen bool `json:"welcome_seen"`
}

// newVisitor mints an anonymous visitor identity.
func (s *server) newVisitor(ctx echo.Context) error {
	v, err := s.VisitorSvc.New(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "creating visitor")
	}
	token, err := GenerateToken(s.Conf, NewVisitorClaims(s.Conf, v.ID))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusCreated, visitorResponse{ID: v.ID, Token: token, WelcomeSeen: v.WelcomeSeen})
}

func (s *server) welcomeSeen(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	seen, err := s.VisitorSvc.WelcomeSeen(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "reading welcome flag")
	}
	return ctx.JSON(http.StatusOK, welcomeResponse{WelcomeSeen: seen})
}

func (s *server) dismissWelcome(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	v, err := s.VisitorSvc.DismissWelcome(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "dismissing welcome")
	}
	return ctx.JSON(http.StatusOK, welcomeResponse{WelcomeSeen: v.WelcomeSeen})
}
