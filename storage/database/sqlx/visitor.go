// Package sqlxrepos implements the repositories on postgres through sqlx.
package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/visitor"
)

// visitorRow mirrors the visitor table.
type visitorRow struct {
	ID          string    `db:"id"`
	WelcomeSeen bool      `db:"welcome_seen"`
	SeenAt      null.Time `db:"seen_at"`
	CreatedAt   time.Time `db:"created_at"`
	LastSeenAt  time.Time `db:"last_seen_at"`
}

func toRow(v visitor.Visitor) visitorRow {
	return visitorRow{
		ID:          v.ID,
		WelcomeSeen: v.WelcomeSeen,
		SeenAt:      null.TimeFromPtr(v.SeenAt),
		CreatedAt:   v.CreatedAt,
		LastSeenAt:  v.LastSeenAt,
	}
}

func (r visitorRow) toVisitor() visitor.Visitor {
	return visitor.Visitor{
		ID:          r.ID,
		WelcomeSeen: r.WelcomeSeen,
		SeenAt:      r.SeenAt.Ptr(),
		CreatedAt:   r.CreatedAt.UTC(),
		LastSeenAt:  r.LastSeenAt.UTC(),
	}
}

type visitorRepository struct {
	db core.DBExecutor
}

func NewVisitorRepository(db core.DBExecutor) visitor.Repository {
	return &visitorRepository{db: db}
}

const (
	insertVisitor = `
		INSERT INTO visitor (id, welcome_seen, seen_at, created_at, last_seen_at)
		VALUES (:id, :welcome_seen, :seen_at, :created_at, :last_seen_at)
		ON CONFLICT (id) DO NOTHING`
	selectVisitor = `
		SELECT id, welcome_seen, seen_at, created_at, last_seen_at FROM visitor WHERE id = $1`
	updateVisitor = `
		UPDATE visitor SET welcome_seen = :welcome_seen, seen_at = :seen_at, last_seen_at = :last_seen_at
		WHERE id = :id`
)

func (repo *visitorRepository) CreateVisitor(ctx context.Context, v visitor.Visitor) (visitor.Visitor, error) {
	if _, err := sqlxNamedExec(ctx, repo.db, insertVisitor, toRow(v)); err != nil {
		return visitor.Visitor{}, errors.Wrap(err, "inserting visitor")
	}
	return repo.GetVisitor(ctx, v.ID)
}

func (repo *visitorRepository) GetVisitor(ctx context.Context, id string) (visitor.Visitor, error) {
	var row visitorRow
	if err := sqlxGet(ctx, repo.db, &row, selectVisitor, id); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return visitor.Visitor{}, core.ErrNotFound
		}
		return visitor.Visitor{}, errors.Wrap(err, "selecting visitor")
	}
	return row.toVisitor(), nil
}

func (repo *visitorRepository) UpdateVisitor(ctx context.Context, v visitor.Visitor) (visitor.Visitor, error) {
	res, err := sqlxNamedExec(ctx, repo.db, updateVisitor, toRow(v))
	if err != nil {
		return visitor.Visitor{}, errors.Wrap(err, "updating visitor")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return visitor.Visitor{}, core.ErrNotFound
	}
	return v, nil
}
