package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrObjectNotFound is returned when a query targets a catalog object
	// (identified by type and remote id) that does not exist locally.
	ErrObjectNotFound = errors.New("catalog object was not found")

	// ErrUnknownObjectType is returned when an operation names an object
	// type this engine does not synchronise.
	ErrUnknownObjectType = errors.New("unknown catalog object type")

	// ErrImageNotCached is returned when the image file cache holds no media
	// for the requested object id.
	ErrImageNotCached = errors.New("image is not cached")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
