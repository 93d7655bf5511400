package backendapi

import (
	"context"

	"github.com/FidelisKagashe26/godcares/core/vault"
)

type vaultRepository struct{ c *Client }

func NewVaultRepository(c *Client) vault.Repository { return &vaultRepository{c: c} }

func (repo *vaultRepository) QueryEvidence(ctx context.Context) ([]vault.EvidenceItem, error) {
	var items []vault.EvidenceItem
	if err := repo.c.getList(ctx, "/api/evidence-vault/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *vaultRepository) QueryDeceptionCases(ctx context.Context) ([]vault.DeceptionCase, error) {
	var cases []vault.DeceptionCase
	if err := repo.c.getList(ctx, "/api/deception-cases/", &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func (repo *vaultRepository) QueryQuestions(ctx context.Context) ([]vault.QuestionVaultItem, error) {
	var qs []vault.QuestionVaultItem
	if err := repo.c.getList(ctx, "/api/question-vault/", &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

func (repo *vaultRepository) SubmitQuestion(ctx context.Context, nq vault.NewQuestion) (vault.SubmittedQuestion, error) {
	var ack vault.SubmittedQuestion
	if err := repo.c.post(ctx, "/api/question-vault/submit/", nq, &ack); err != nil {
		return vault.SubmittedQuestion{}, err
	}
	return ack, nil
}
