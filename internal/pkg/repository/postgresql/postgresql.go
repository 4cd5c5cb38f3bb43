package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"crm/backend/foundation/web"
	"crm/backend/internal/auth"
	"crm/backend/internal/pkg/config"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

// Database is the shared persistence handle embedded by every
// repository. It wraps bun with request scoped helpers.
type Database struct {
	*bun.DB
}

func New(cfg *config.Config) *Database {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		cfg.DBUsername,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithInsecure(cfg.DisableTLS),
	))

	db := bun.NewDB(sqldb, pgdialect.New())
	if cfg.DBDebug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	return &Database{DB: db}
}

// CheckClaims retrieves the authenticated claims from ctx, optionally
// enforcing a role allow-set on top of whatever the route middleware
// already checked.
func (d Database) CheckClaims(ctx context.Context, roles ...string) (auth.Claims, error) {
	return auth.GetClaims(ctx, roles...)
}

// ValidateStruct checks that the named request fields are set. See
// web.RequireFields for the rules.
func (d Database) ValidateStruct(data interface{}, required ...string) error {
	return web.RequireFields(data, required...)
}

// DeleteRow hard-deletes a row by id and reports not-found when nothing
// matched.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	result, err := d.NewDelete().Table(table).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusInternalServerError)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "reading rows affected"), http.StatusInternalServerError)
	}
	if affected == 0 {
		return web.NewRequestError(errors.Errorf("%s row not found", table), http.StatusNotFound)
	}

	return nil
}
