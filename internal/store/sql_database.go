package store

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/migrations"
)

type DB struct {
	*sql.DB
	driver             string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator reports whether a failed database operation is worth
// retrying. Drivers without transient-failure semantics may leave it nil.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// builderFor returns a statement builder with the placeholder format the
// driver expects: $1-style for pgx, ?-style for sqlite3.
func builderFor(driver string) squirrel.StatementBuilderType {
	if driver == "pgx" {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}
