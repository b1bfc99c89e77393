// Package sqlerr handles database driver errors.
//
// It classifies Postgres SQLSTATE codes and converts them into the API error
// kinds from package errs (a unique violation becomes a duplicate-key error,
// anything unrecognised becomes an internal error).
package sqlerr
