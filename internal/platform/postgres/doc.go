// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces, built on database/sql with the pgx driver.
package postgres
