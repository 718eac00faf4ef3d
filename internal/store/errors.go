package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrEmailAlreadyRegistered is returned when an attempt to add a new
	// account fails because an account with the same email already exists.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrAccountNotFound is returned when a lookup by email or id matches
	// no registered account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSessionTokenNotFound is returned when no session token is
	// currently stored.
	ErrSessionTokenNotFound = errors.New("session token not found")

	// ErrKeyNotFound is returned by the key-value medium when the
	// requested key holds no value.
	ErrKeyNotFound = errors.New("key not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the key-value medium when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
