package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when an INSERT into the users
	// table is rejected by the unique constraint on email or username.
	// The constraint is the authoritative duplicate guard: service-level
	// existence pre-checks are advisory only.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoResetWasFound is returned when no password-reset ticket exists
	// for the given email. Every reset step re-derives flow state from the
	// ticket row, so its absence aborts the step.
	ErrNoResetWasFound = errors.New("no password reset was found")

	// ErrNoPostWasFound is returned when a query targets a post that does
	// not exist in the database.
	ErrNoPostWasFound = errors.New("no post was found")

	// ErrNotPostOwner is returned when an update or delete targets a post
	// owned by a different account.
	ErrNotPostOwner = errors.New("post belongs to another user")

	// ErrAlreadyFollowing is returned when a follow edge being inserted
	// already exists.
	ErrAlreadyFollowing = errors.New("already following this user")

	// ErrStoreUnavailable wraps driver-level failures (connection loss,
	// timeouts, unexpected database errors). Handlers surface it as a
	// generic 500 without leaking internals.
	ErrStoreUnavailable = errors.New("store unavailable")
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
