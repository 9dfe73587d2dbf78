package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTeamAlreadyExists is returned when an INSERT or UPDATE on the
	// "teams" table trips the unique constraint on name or slug.
	ErrTeamAlreadyExists = errors.New("team already exists")

	// ErrTeamNotFound is returned when a lookup, update or delete targets a
	// team slug or id that has no row.
	ErrTeamNotFound = errors.New("team not found")

	// ErrGameNotFound is returned when a lookup, update or delete targets a
	// game id that has no row.
	ErrGameNotFound = errors.New("game not found")

	// ErrReferencedTeamMissing is returned when a game INSERT or UPDATE
	// trips a foreign key on home or away. The service resolves both sides
	// before writing, so this only fires if a referenced team is deleted
	// between resolution and write.
	ErrReferencedTeamMissing = errors.New("referenced team does not exist")

	// ErrNoFieldsToUpdate is returned by the conditional update builder when
	// every candidate field turned out to be absent. Not a failure: the
	// caller decides whether an empty update is an error or a no-op.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrFieldsValuesMismatch is returned when the surviving field and value
	// lists of a conditional update disagree in length. The two lists are
	// built positionally from the same payload, so a mismatch is a
	// programming error, never caller input.
	ErrFieldsValuesMismatch = errors.New("update fields and values count mismatch")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
