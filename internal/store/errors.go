package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when a generated document lookup by
	// filename produces an empty result set.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrDocumentNotSaved is returned when an INSERT of a generated document
	// completes without error but the number of affected rows is zero,
	// indicating that nothing was actually persisted.
	ErrDocumentNotSaved = errors.New("document was not saved")

	// ErrHistoryNotSaved is returned when an INSERT of a reference history
	// document affects zero rows.
	ErrHistoryNotSaved = errors.New("history document was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// result-set iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
