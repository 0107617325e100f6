// Package store defines the persistence interface and error taxonomy
// shared by all entities. It keeps driver and ORM types out of the
// handler layer; the gorm-backed implementation lives in
// internal/platform/postgres.
package store
