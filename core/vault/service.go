// Package vault serves the evidence vault, the deception cases and the question vault.
package vault

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/view"
)

type (
	Repository interface {
		QueryEvidence(ctx context.Context) ([]EvidenceItem, error)
		QueryDeceptionCases(ctx context.Context) ([]DeceptionCase, error)
		QueryQuestions(ctx context.Context) ([]QuestionVaultItem, error)
		SubmitQuestion(ctx context.Context, nq NewQuestion) (SubmittedQuestion, error)
	}

	Service interface {
		Evidence(ctx context.Context, filter QueryFilter) ([]EvidenceItem, error)
		EvidenceItem(ctx context.Context, id int, lang string) (EvidenceItem, error)
		DeceptionCases(ctx context.Context, filter QueryFilter) ([]DeceptionCase, error)
		Questions(ctx context.Context, filter QueryFilter) ([]QuestionVaultItem, error)
		SubmitQuestion(ctx context.Context, nq NewQuestion) (SubmitResult, error)
	}

	service struct {
		repo   Repository
		logger core.Logger
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, logger core.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (svc *service) loadEvidence(ctx context.Context) ([]EvidenceItem, error) {
	items, err := svc.repo.QueryEvidence(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying evidence vault")
	}
	for i := range items {
		valid, dropped := items[i].ValidAnnotations()
		if dropped > 0 {
			svc.logger.Warn(fmt.Sprintf("evidence %d: dropped %d annotation(s) outside the frame", items[i].ID, dropped))
		}
		items[i].Annotations = valid
	}
	return items, nil
}

func (svc *service) Evidence(ctx context.Context, filter QueryFilter) ([]EvidenceItem, error) {
	items, err := svc.loadEvidence(ctx)
	if err != nil {
		return nil, err
	}
	items = view.Filter(items, func(e EvidenceItem) bool {
		return view.MatchesTab(filter.Tab, e.Category) && core.MatchAny(filter.Search, e.Title, e.Category)
	})
	if filter.Lang != "" {
		for i := range items {
			items[i] = items[i].Localized(filter.Lang)
		}
	}
	return items, nil
}

func (svc *service) EvidenceItem(ctx context.Context, id int, lang string) (EvidenceItem, error) {
	items, err := svc.loadEvidence(ctx)
	if err != nil {
		return EvidenceItem{}, err
	}
	for _, e := range items {
		if e.ID == id {
			return e.Localized(lang), nil
		}
	}
	return EvidenceItem{}, core.ErrNotFound
}

func (svc *service) DeceptionCases(ctx context.Context, filter QueryFilter) ([]DeceptionCase, error) {
	cases, err := svc.repo.QueryDeceptionCases(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying deception cases")
	}
	return view.Filter(cases, func(c DeceptionCase) bool {
		return view.MatchesTab(filter.Tab, c.Category) && core.MatchAny(filter.Search, c.Title, c.Category)
	}), nil
}

func (svc *service) Questions(ctx context.Context, filter QueryFilter) ([]QuestionVaultItem, error) {
	qs, err := svc.repo.QueryQuestions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying question vault")
	}
	return view.Filter(qs, func(q QuestionVaultItem) bool {
		return view.MatchesTab(filter.Tab, q.Category) && core.MatchAny(filter.Search, q.Question, q.Category)
	}), nil
}

// SubmitQuestion always posts the question. Look-alike answered questions are returned
// alongside so the visitor can read them while waiting; a failing vault fetch only skips them.
func (svc *service) SubmitQuestion(ctx context.Context, nq NewQuestion) (SubmitResult, error) {
	if err := nq.Validate(); err != nil {
		return SubmitResult{}, err
	}

	similar := []QuestionVaultItem{}
	if qs, err := svc.repo.QueryQuestions(ctx); err != nil {
		svc.logger.Warn(fmt.Sprintf("question vault unavailable for similarity check: %v", err))
	} else {
		similar = FindSimilar(nq.Question, qs)
	}

	ack, err := svc.repo.SubmitQuestion(ctx, nq)
	if err != nil {
		return SubmitResult{}, errors.Wrap(err, "submitting question")
	}
	return SubmitResult{SubmittedQuestion: ack, Similar: similar}, nil
}
