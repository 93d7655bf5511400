// Package inmemdb keeps the visitor store in memory, for tests and database-less runs.
package inmemdb

import (
	"context"
	"sync"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/visitor"
)

type visitorRepository struct {
	mu    sync.RWMutex
	table map[string]visitor.Visitor
}

func NewVisitorRepository() visitor.Repository {
	return &visitorRepository{table: make(map[string]visitor.Visitor)}
}

func (repo *visitorRepository) CreateVisitor(_ context.Context, v visitor.Visitor) (visitor.Visitor, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if existing, ok := repo.table[v.ID]; ok {
		return existing, nil
	}
	repo.table[v.ID] = v
	return v, nil
}

func (repo *visitorRepository) GetVisitor(_ context.Context, id string) (visitor.Visitor, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	v, ok := repo.table[id]
	if !ok {
		return visitor.Visitor{}, core.ErrNotFound
	}
	return v, nil
}

func (repo *visitorRepository) UpdateVisitor(_ context.Context, v visitor.Visitor) (visitor.Visitor, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.table[v.ID]; !ok {
		return visitor.Visitor{}, core.ErrNotFound
	}
	repo.table[v.ID] = v
	return v, nil
}
