// Package domain contains the record types exposed by the API and the
// identifier type they share. It is independent of any specific storage
// or delivery mechanism; the gorm struct tags only describe the schema.
package domain
