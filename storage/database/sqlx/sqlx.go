package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/FidelisKagashe26/godcares/core"
)

func sqlxNamedExec(ctx context.Context, db core.DBExecutor, query string, arg interface{}) (sql.Result, error) {
	return sqlx.NamedExecContext(ctx, db, query, arg)
}

func sqlxGet(ctx context.Context, db core.DBExecutor, dst interface{}, query string, args ...interface{}) error {
	return sqlx.GetContext(ctx, db, dst, query, args...)
}
