// Package postgres provides the gorm-backed implementation of the data
// storage interfaces defined in the internal/store package. It handles
// connection setup, query construction, and the mapping between ORM and
// driver errors and the store error taxonomy.
package postgres
