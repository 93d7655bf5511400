package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core/vault"
)

func (s *server) registerVaultAPI(g *echo.Group) {
	vg := g.Group("/vault")
	vg.GET("/evidence", s.queryEvidence)
	vg.GET("/evidence/:id", s.openDocument)
	vg.POST("/evidence/:id/verify", s.verifyDocument)
	vg.GET("/deception-cases", s.queryDeceptionCases)
	vg.GET("/questions", s.queryQuestions)
	vg.POST("/questions", s.submitQuestion)
}

func (s *server) queryEvidence(ctx echo.Context) error {
	var filter vault.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	items, err := s.VaultSvc.Evidence(ctx.Request().Context(), filter)
	return list(s, ctx, "evidence", items, err)
}

type documentResponse struct {
	Item  vault.EvidenceItem `json:"item"`
	Stage string             `json:"stage"`
	Trail []string           `json:"trail"`
}

func (s *server) loadDocument(ctx echo.Context) (*vault.DocumentViewer, error) {
	id, err := paramID(ctx, "id")
	if err != nil {
		return nil, err
	}
	item, err := s.VaultSvc.EvidenceItem(ctx.Request().Context(), id, ctx.QueryParam("lang"))
	if err != nil {
		return nil, errors.Wrap(err, "getting evidence item")
	}
	return vault.NewDocumentViewer(item, s.Conf.UI.VerifyDelay), nil
}

// openDocument shows the provenance card of an evidence item.
func (s *server) openDocument(ctx echo.Context) error {
	viewer, err := s.loadDocument(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, documentResponse{Item: viewer.Item, Stage: viewer.Stage(), Trail: viewer.Trail()})
}

// verifyDocument walks the viewer to "verified", through the verification delay.
func (s *server) verifyDocument(ctx echo.Context) error {
	viewer, err := s.loadDocument(ctx)
	if err != nil {
		return err
	}
	if err = viewer.Verify(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "verifying document")
	}
	return ctx.JSON(http.StatusOK, documentResponse{Item: viewer.Item, Stage: viewer.Stage(), Trail: viewer.Trail()})
}

func (s *server) queryDeceptionCases(ctx echo.Context) error {
	var filter vault.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	cases, err := s.VaultSvc.DeceptionCases(ctx.Request().Context(), filter)
	return list(s, ctx, "deception cases", cases, err)
}

func (s *server) queryQuestions(ctx echo.Context) error {
	var filter vault.QueryFilter
	if err := bindQuery(ctx, &filter); err != nil {
		return err
	}
	qs, err := s.VaultSvc.Questions(ctx.Request().Context(), filter)
	return list(s, ctx, "question vault", qs, err)
}

func (s *server) submitQuestion(ctx echo.Context) error {
	var data vault.NewQuestion
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewQuestion")
	}
	return s.submit(ctx, func(c context.Context) (interface{}, error) {
		return s.VaultSvc.SubmitQuestion(c, data)
	})
}
