// Package repository is the data access layer. Each repository wraps the
// shared *sql.DB; methods that must participate in a dispatch transaction
// take a Queryer so they run against either the handle or an open *sql.Tx.
package repository

import "database/sql"

// Queryer is the subset of database/sql shared by *sql.DB and *sql.Tx.
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
